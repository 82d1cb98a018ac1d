package redis_repo

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// 需要本機redis，連不上時整個suite skip
type RedisRepoTestSuite struct {
	suite.Suite
	client   *redis.Client
	cartRepo *CartRepo
	flowRepo *FlowRepo
	ctx      context.Context
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.client = redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	pingCtx, cancel := context.WithTimeout(s.ctx, 2*time.Second)
	defer cancel()
	if err := s.client.Ping(pingCtx).Err(); err != nil {
		s.T().Skipf("redis not available: %v", err)
	}

	s.cartRepo = NewCartRepo(s.client)
	s.flowRepo = NewFlowRepo(s.client)
}

func (s *RedisRepoTestSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.Require().NoError(s.client.FlushDB(s.ctx).Err())
}

func (s *RedisRepoTestSuite) TestCartSaveAndLoad() {
	userID := 1
	items := []CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 1},
	}

	s.Require().NoError(s.cartRepo.Save(s.ctx, userID, items))

	loaded, err := s.cartRepo.Load(s.ctx, userID)
	s.Require().NoError(err)
	s.ElementsMatch(items, loaded)
}

func (s *RedisRepoTestSuite) TestCartSaveOverwrites() {
	userID := 1
	s.Require().NoError(s.cartRepo.Save(s.ctx, userID, []CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 5},
	}))

	// 覆寫後舊明細要消失
	s.Require().NoError(s.cartRepo.Save(s.ctx, userID, []CartItem{
		{ProductID: 3, Quantity: 1},
	}))

	loaded, err := s.cartRepo.Load(s.ctx, userID)
	s.Require().NoError(err)
	s.ElementsMatch([]CartItem{{ProductID: 3, Quantity: 1}}, loaded)
}

func (s *RedisRepoTestSuite) TestCartLoadOrderedByProductID() {
	userID := 1
	s.Require().NoError(s.cartRepo.Save(s.ctx, userID, []CartItem{
		{ProductID: 5, Quantity: 1},
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 4},
	}))

	// hash欄位順序不固定，Load要回傳穩定順序
	for i := 0; i < 5; i++ {
		loaded, err := s.cartRepo.Load(s.ctx, userID)
		s.Require().NoError(err)
		s.Equal([]CartItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 4},
			{ProductID: 5, Quantity: 1},
		}, loaded)
	}
}

func (s *RedisRepoTestSuite) TestCartLoadMissingReturnsEmpty() {
	loaded, err := s.cartRepo.Load(s.ctx, 999)
	s.Require().NoError(err)
	s.Empty(loaded)
}

func (s *RedisRepoTestSuite) TestCartClear() {
	userID := 1
	s.Require().NoError(s.cartRepo.Save(s.ctx, userID, []CartItem{{ProductID: 1, Quantity: 2}}))
	s.Require().NoError(s.cartRepo.Clear(s.ctx, userID))

	loaded, err := s.cartRepo.Load(s.ctx, userID)
	s.Require().NoError(err)
	s.Empty(loaded)
}

func (s *RedisRepoTestSuite) TestFlowSaveAndLoad() {
	userID := 1
	snap := model.FlowSnapshot{
		Step: model.StepShippingInfo,
		Items: []model.LineItem{
			{
				Product: model.Product{
					ProductID: 1,
					Name:      "Wireless Headphones",
					Price:     decimal.NewFromFloat(199.99),
					Stock:     10,
					Category:  model.CategoryAudio,
				},
				Quantity: 2,
			},
		},
		CustomerInfo: &model.CustomerInfo{FirstName: "Paulo", LastName: "Souza", Email: "paulo@email.com"},
	}

	s.Require().NoError(s.flowRepo.Save(s.ctx, userID, snap))

	loaded, err := s.flowRepo.Load(s.ctx, userID)
	s.Require().NoError(err)
	s.Equal(snap.Step, loaded.Step)
	s.Require().Len(loaded.Items, 1)
	s.Equal(1, loaded.Items[0].Product.ProductID)
	s.True(loaded.Items[0].Product.Price.Equal(decimal.NewFromFloat(199.99)))
	s.Require().NotNil(loaded.CustomerInfo)
	s.Equal("paulo@email.com", loaded.CustomerInfo.Email)
	s.Nil(loaded.ShippingInfo)
	s.Nil(loaded.PaymentInfo)
}

func (s *RedisRepoTestSuite) TestFlowLoadMissing() {
	_, err := s.flowRepo.Load(s.ctx, 999)
	s.ErrorIs(err, ErrFlowNotFound)
}

func (s *RedisRepoTestSuite) TestFlowDelete() {
	userID := 1
	snap := model.FlowSnapshot{
		Step:  model.StepCustomerInfo,
		Items: []model.LineItem{{Product: model.Product{ProductID: 1, Stock: 5}, Quantity: 1}},
	}
	s.Require().NoError(s.flowRepo.Save(s.ctx, userID, snap))
	s.Require().NoError(s.flowRepo.Delete(s.ctx, userID))

	_, err := s.flowRepo.Load(s.ctx, userID)
	s.ErrorIs(err, ErrFlowNotFound)
}

func (s *RedisRepoTestSuite) TestFlowSaveSetsTTL() {
	userID := 1
	snap := model.FlowSnapshot{
		Step:  model.StepCustomerInfo,
		Items: []model.LineItem{{Product: model.Product{ProductID: 1, Stock: 5}, Quantity: 1}},
	}
	s.Require().NoError(s.flowRepo.Save(s.ctx, userID, snap))

	ttl, err := s.client.TTL(s.ctx, checkoutFlowKey(userID)).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, DefaultFlowTTL)
}
