package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	db_model "github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	created []*db_model.Order
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, order *db_model.Order) error {
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, id string) (*db_model.Order, error) {
	for _, o := range f.created {
		if o.OrderID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) GetOrdersByUserID(ctx context.Context, userID int) ([]db_model.Order, error) {
	orders := []db_model.Order{}
	for _, o := range f.created {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

type fakeOrderEventProducer struct {
	published []model.OrderConfirmation
}

func (f *fakeOrderEventProducer) PublishOrderConfirmed(ctx context.Context, userID int, confirmation model.OrderConfirmation, details model.OrderDetails) error {
	f.published = append(f.published, confirmation)
	return nil
}

func (f *fakeOrderEventProducer) Close() error {
	return nil
}

var orderIDPattern = regexp.MustCompile(`^ORD-\d+-[0-9A-F]{9}$`)

func validOrderDetails() model.OrderDetails {
	return model.OrderDetails{
		CustomerInfo: model.CustomerInfo{FirstName: "Paulo", LastName: "Souza", Email: "paulo@email.com"},
		ShippingInfo: model.ShippingInfo{Address: "X", City: "Y", ZipCode: "33134"},
		PaymentInfo:  model.PaymentInfo{CardNumber: "4242424242424242", Expiry: "11/30", CVV: "123"},
		Items: []model.LineItem{
			{
				Product: model.Product{
					ProductID: 1,
					Name:      "Wireless Headphones",
					Price:     decimal.NewFromFloat(199.99),
					Stock:     10,
				},
				Quantity: 1,
			},
		},
		Totals: model.Totals{
			Subtotal: decimal.NewFromFloat(199.99),
			Tax:      decimal.NewFromFloat(15.9992),
			Shipping: decimal.Zero,
			Total:    decimal.NewFromFloat(215.9892),
		},
	}
}

func TestSubmitOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(nil, nil)
	fixedNow := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixedNow }

	confirmation, err := svc.SubmitOrder(ctx, 1, validOrderDetails())
	require.NoError(t, err)

	assert.Regexp(t, orderIDPattern, confirmation.OrderID)
	assert.Equal(t, model.OrderStatusConfirmed, confirmation.Status)
	assert.Equal(t, fixedNow.Add(7*24*time.Hour), confirmation.EstimatedDelivery)
	assert.Equal(t, 1, confirmation.ItemCount)
	assert.True(t, confirmation.Total.Equal(decimal.NewFromFloat(215.9892)))
}

func TestSubmitOrderValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(nil, nil)

	t.Run("空訂單", func(t *testing.T) {
		details := validOrderDetails()
		details.Items = nil
		_, err := svc.SubmitOrder(ctx, 1, details)
		assert.ErrorIs(t, err, ErrEmptyOrder)
	})

	t.Run("缺顧客資訊", func(t *testing.T) {
		details := validOrderDetails()
		details.CustomerInfo = model.CustomerInfo{}
		_, err := svc.SubmitOrder(ctx, 1, details)
		assert.ErrorIs(t, err, ErrMissingOrderInfo)
	})

	t.Run("缺收件資訊", func(t *testing.T) {
		details := validOrderDetails()
		details.ShippingInfo = model.ShippingInfo{}
		_, err := svc.SubmitOrder(ctx, 1, details)
		assert.ErrorIs(t, err, ErrMissingOrderInfo)
	})

	t.Run("缺付款資訊", func(t *testing.T) {
		details := validOrderDetails()
		details.PaymentInfo = model.PaymentInfo{}
		_, err := svc.SubmitOrder(ctx, 1, details)
		assert.ErrorIs(t, err, ErrMissingOrderInfo)
	})
}

func TestSubmitOrderOrderIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	svc := NewOrderService(nil, nil)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		confirmation, err := svc.SubmitOrder(ctx, 1, validOrderDetails())
		require.NoError(t, err)
		_, dup := seen[confirmation.OrderID]
		require.False(t, dup, "duplicate order id %s", confirmation.OrderID)
		seen[confirmation.OrderID] = struct{}{}
	}
}

func TestSubmitOrderPersistsAndPublishes(t *testing.T) {
	ctx := context.Background()
	orderRepo := &fakeOrderRepo{}
	eventProducer := &fakeOrderEventProducer{}
	svc := NewOrderService(orderRepo, eventProducer)

	confirmation, err := svc.SubmitOrder(ctx, 7, validOrderDetails())
	require.NoError(t, err)

	require.Len(t, orderRepo.created, 1)
	record := orderRepo.created[0]
	assert.Equal(t, confirmation.OrderID, record.OrderID)
	assert.Equal(t, 7, record.UserID)
	assert.Equal(t, "paulo@email.com", record.CustomerEmail)
	assert.Equal(t, "X, Y 33134", record.ShippingAddress)
	require.Len(t, record.OrderItems, 1)
	assert.Equal(t, 1, record.OrderItems[0].ProductID)
	assert.True(t, record.Amount.Equal(decimal.NewFromFloat(215.9892)))

	require.Len(t, eventProducer.published, 1)
	assert.Equal(t, confirmation.OrderID, eventProducer.published[0].OrderID)
}
