package router

import (
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

func SetupRouter(server *api.Server, allowedOrigins []string, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	}))

	// API 路由
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthCheck)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.ListProducts)
			r.Get("/{id}", server.ProductHandler.GetProduct)
			r.Get("/{id}/stock", server.ProductHandler.CheckStock)
		})
		r.Get("/categories", server.ProductHandler.Categories)
		r.Get("/price-range", server.ProductHandler.PriceRange)

		r.Route("/carts/{userID}", func(r chi.Router) {
			r.Get("/", server.CartHandler.GetCart)
			r.Delete("/", server.CartHandler.ClearCart)
			r.Post("/items", server.CartHandler.AddItem)
			r.Put("/items/{productID}", server.CartHandler.UpdateItem)
			r.Delete("/items/{productID}", server.CartHandler.RemoveItem)
		})

		r.Route("/checkout/{userID}", func(r chi.Router) {
			r.Post("/start", server.CheckoutHandler.Start)
			r.Post("/customer-info", server.CheckoutHandler.SubmitCustomerInfo)
			r.Post("/shipping-info", server.CheckoutHandler.SubmitShippingInfo)
			r.Post("/payment-info", server.CheckoutHandler.SubmitPaymentInfo)
			r.Post("/back", server.CheckoutHandler.GoBack)
			r.Get("/order-details", server.CheckoutHandler.OrderDetails)
			r.Delete("/", server.CheckoutHandler.Abandon)
		})

		r.Post("/orders", server.OrderHandler.SubmitOrder)
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
