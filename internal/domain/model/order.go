package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusConfirmed = "confirmed"
)

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}

// OrderDetails 結帳完成後交給訂單提交端的最終payload
// 於ORDER_REVIEW產生一次，之後不再變動
type OrderDetails struct {
	CustomerInfo CustomerInfo `json:"customerInfo"`
	ShippingInfo ShippingInfo `json:"shippingInfo"`
	PaymentInfo  PaymentInfo  `json:"paymentInfo"`
	Items        []LineItem   `json:"items"`
	Totals       Totals       `json:"totals"`
}

// OrderConfirmation 訂單提交端的回覆
type OrderConfirmation struct {
	OrderID           string          `json:"orderId"`
	Status            string          `json:"status"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
	ItemCount         int             `json:"items"`
	Total             decimal.Decimal `json:"total"`
}
