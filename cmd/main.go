package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	"github.com/RoyceAzure/lab/storefront/internal/api/router"
	"github.com/RoyceAzure/lab/storefront/internal/config"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	cf := config.GetConfig()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cf.RedisAddr,
		Password: cf.RedisPassword,
		DB:       cf.RedisDB,
	})
	defer rdb.Close()

	catalogRepo := catalog.NewRepo()
	cartRepo := redis_repo.NewCartRepo(rdb)
	flowRepo := redis_repo.NewFlowRepo(rdb)

	// postgres為選配，沒設定時訂單不落地
	var orderRepo db.IOrderRepository
	if cf.DbHost != "" {
		conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect postgres")
		}
		dao := db.NewDbDao(conn)
		if err := dao.InitMigrate(); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate db schema")
		}
		orderRepo = db.NewOrderRepo(dao)
	}

	// kafka為選配
	var orderEvents producer.IOrderEventProducer
	if brokers := cf.Brokers(); brokers != nil {
		p := producer.NewOrderEventProducer(brokers, cf.KafkaTopic)
		defer p.Close()
		orderEvents = p
	}

	productService := service.NewProductService(catalogRepo)
	cartService := service.NewCartService(cartRepo, catalogRepo)
	checkoutService := service.NewCheckoutService(flowRepo, cartService)
	orderService := service.NewOrderService(orderRepo, orderEvents)

	server := api.NewServer(
		handler.NewProductHandler(productService),
		handler.NewCartHandler(cartService),
		handler.NewCheckoutHandler(checkoutService),
		handler.NewOrderHandler(orderService, cartService),
	)

	r := router.SetupRouter(server, cf.Origins(), &logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}

		shutDownCompleted <- struct{}{}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("API server starting")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
	<-shutDownCompleted
	logger.Info().Msg("closed completed")
}
