package model

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryAudio       Category = "audio"
	CategoryWearables   Category = "wearables"
	CategoryAccessories Category = "accessories"
)

type StockStatus string

const (
	StockStatusOutOfStock StockStatus = "OutOfStock"
	StockStatusLowStock   StockStatus = "LowStock"
	StockStatusInStock    StockStatus = "InStock"
)

// LowStockThreshold 以下(含)視為低庫存
const LowStockThreshold = 30

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	Type     DiscountType    `json:"type"`
	Value    decimal.Decimal `json:"value"`
	IsActive bool            `json:"isActive"`
}

// Product 由catalog提供，核心只讀不寫
type Product struct {
	ProductID   int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	Category    Category        `json:"category"`
	Discount    *Discount       `json:"discount,omitempty"`
}

// DisplayPrice 回傳套用有效折扣後的價格
// fixed折扣大於原價時以0為下限
func (p Product) DisplayPrice() decimal.Decimal {
	if p.Discount == nil || !p.Discount.IsActive {
		return p.Price
	}

	var price decimal.Decimal
	switch p.Discount.Type {
	case DiscountPercentage:
		factor := decimal.NewFromInt(1).Sub(p.Discount.Value.Div(decimal.NewFromInt(100)))
		price = p.Price.Mul(factor)
	case DiscountFixed:
		price = p.Price.Sub(p.Discount.Value)
	default:
		return p.Price
	}

	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

func (p Product) StockStatus() StockStatus {
	if p.Stock == 0 {
		return StockStatusOutOfStock
	}
	if p.Stock <= LowStockThreshold {
		return StockStatusLowStock
	}
	return StockStatusInStock
}

func (p Product) IsOnSale() bool {
	return p.DisplayPrice().LessThan(p.Price)
}
