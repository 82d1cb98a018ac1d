package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/segmentio/kafka-go"
)

const EventTypeOrderConfirmed = "order_confirmed"

type IOrderEventProducer interface {
	PublishOrderConfirmed(ctx context.Context, userID int, confirmation model.OrderConfirmation, details model.OrderDetails) error
	Close() error
}

// OrderConfirmedEvent 發佈到kafka的訂單確認事件
// 不帶付款資訊
type OrderConfirmedEvent struct {
	OrderID           string           `json:"orderId"`
	UserID            int              `json:"userId"`
	Status            string           `json:"status"`
	EstimatedDelivery time.Time        `json:"estimatedDelivery"`
	Items             []model.LineItem `json:"items"`
	Totals            model.Totals     `json:"totals"`
	OccurredAt        time.Time        `json:"occurredAt"`
}

// OrderEventProducer 訂單事件producer
// key使用userID，同一用戶的事件會進同一partition保持順序
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
	return &OrderEventProducer{writer: writer}
}

func (p *OrderEventProducer) PublishOrderConfirmed(ctx context.Context, userID int, confirmation model.OrderConfirmation, details model.OrderDetails) error {
	event := OrderConfirmedEvent{
		OrderID:           confirmation.OrderID,
		UserID:            userID,
		Status:            confirmation.Status,
		EstimatedDelivery: confirmation.EstimatedDelivery,
		Items:             details.Items,
		Totals:            details.Totals,
		OccurredAt:        time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.Itoa(userID)),
		Value: payload,
		Headers: []kafka.Header{
			{
				Key:   "event_type",
				Value: []byte(EventTypeOrderConfirmed),
			},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}

func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
