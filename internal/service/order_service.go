package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	db_model "github.com/RoyceAzure/lab/storefront/internal/infra/repository/db/model"
	"github.com/google/uuid"
)

type OrderServiceError error

var (
	ErrEmptyOrder       OrderServiceError = errors.New("order must contain at least one item")
	ErrMissingOrderInfo OrderServiceError = errors.New("missing required order information")
)

// 預設出貨日: 下單後7天
const deliveryLeadTime = 7 * 24 * time.Hour

type IOrderService interface {
	SubmitOrder(ctx context.Context, userID int, details model.OrderDetails) (model.OrderConfirmation, error)
}

// OrderService 訂單提交端
// orderRepo與eventProducer為選配，沒設定時只回確認結果(跟mock server行為一致)
type OrderService struct {
	orderRepo     db.IOrderRepository
	eventProducer producer.IOrderEventProducer
	now           func() time.Time
}

func NewOrderService(orderRepo db.IOrderRepository, eventProducer producer.IOrderEventProducer) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		eventProducer: eventProducer,
		now:           time.Now,
	}
}

// SubmitOrder 提交訂單
// 錯誤:
//   - ErrEmptyOrder: 沒有任何明細
//   - ErrMissingOrderInfo: 顧客/收件/付款資訊缺漏
func (s *OrderService) SubmitOrder(ctx context.Context, userID int, details model.OrderDetails) (model.OrderConfirmation, error) {
	if len(details.Items) == 0 {
		return model.OrderConfirmation{}, ErrEmptyOrder
	}
	if details.CustomerInfo == (model.CustomerInfo{}) ||
		details.ShippingInfo == (model.ShippingInfo{}) ||
		details.PaymentInfo == (model.PaymentInfo{}) {
		return model.OrderConfirmation{}, ErrMissingOrderInfo
	}

	now := s.now()
	confirmation := model.OrderConfirmation{
		OrderID:           generateOrderID(now),
		Status:            model.OrderStatusConfirmed,
		EstimatedDelivery: now.Add(deliveryLeadTime),
		ItemCount:         len(details.Items),
		Total:             details.Totals.Total,
	}

	if s.orderRepo != nil {
		if err := s.orderRepo.CreateOrder(ctx, toOrderRecord(userID, now, confirmation, details)); err != nil {
			return model.OrderConfirmation{}, fmt.Errorf("failed to persist order: %w", err)
		}
	}

	if s.eventProducer != nil {
		if err := s.eventProducer.PublishOrderConfirmed(ctx, userID, confirmation, details); err != nil {
			return model.OrderConfirmation{}, fmt.Errorf("failed to publish order event: %w", err)
		}
	}

	return confirmation, nil
}

// generateOrderID 格式: ORD-<unix毫秒>-<隨機9碼>
func generateOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

func toOrderRecord(userID int, now time.Time, confirmation model.OrderConfirmation, details model.OrderDetails) *db_model.Order {
	items := make([]db_model.OrderItem, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, db_model.OrderItem{
			OrderID:     confirmation.OrderID,
			ProductID:   item.Product.ProductID,
			ProductName: item.Product.Name,
			UnitPrice:   item.Product.DisplayPrice(),
			Quantity:    item.Quantity,
		})
	}

	shippingAddress := fmt.Sprintf("%s, %s %s",
		details.ShippingInfo.Address, details.ShippingInfo.City, details.ShippingInfo.ZipCode)

	return &db_model.Order{
		OrderID:           confirmation.OrderID,
		UserID:            userID,
		OrderItems:        items,
		Status:            confirmation.Status,
		CustomerEmail:     details.CustomerInfo.Email,
		ShippingAddress:   shippingAddress,
		Subtotal:          details.Totals.Subtotal,
		Tax:               details.Totals.Tax,
		Shipping:          details.Totals.Shipping,
		Amount:            details.Totals.Total,
		OrderDate:         now,
		EstimatedDelivery: confirmation.EstimatedDelivery,
	}
}
