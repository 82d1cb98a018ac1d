package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BaseModel struct {
	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Order 已確認訂單的持久化紀錄
// 付款資訊不落地，只保留確認結果與金額
type Order struct {
	OrderID           string          `gorm:"primaryKey;type:varchar(255)" json:"order_id"`
	UserID            int             `gorm:"not null" json:"user_id"`
	OrderItems        []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"` // 一對多，級聯刪除
	Status            string          `gorm:"not null;type:varchar(50)" json:"status"`
	CustomerEmail     string          `gorm:"not null;type:varchar(255)" json:"customer_email"`
	ShippingAddress   string          `gorm:"not null;type:text" json:"shipping_address"`
	Subtotal          decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"subtotal"`
	Tax               decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"tax"`
	Shipping          decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"shipping"`
	Amount            decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	OrderDate         time.Time       `gorm:"not null" json:"order_date"`
	EstimatedDelivery time.Time       `gorm:"not null" json:"estimated_delivery"`
	BaseModel
}

type OrderItem struct {
	OrderID     string          `gorm:"primaryKey;type:varchar(255)" json:"order_id"` // 外鍵，關聯到 Order
	ProductID   int             `gorm:"primaryKey" json:"product_id"`
	ProductName string          `gorm:"not null;type:varchar(100)" json:"product_name"`
	UnitPrice   decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"unit_price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	BaseModel
}
