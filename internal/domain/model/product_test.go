package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStockStatus(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		expected StockStatus
	}{
		{"無庫存", 0, StockStatusOutOfStock},
		{"庫存1", 1, StockStatusLowStock},
		{"低庫存上界", LowStockThreshold, StockStatusLowStock},
		{"超過低庫存門檻", LowStockThreshold + 1, StockStatusInStock},
		{"充足庫存", 150, StockStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{ProductID: 1, Stock: tt.stock}
			assert.Equal(t, tt.expected, p.StockStatus())
		})
	}
}

func TestDisplayPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount *Discount
		expected string
	}{
		{"無折扣", 199.99, nil, "199.99"},
		{
			"百分比折扣",
			200,
			&Discount{Type: DiscountPercentage, Value: decimal.NewFromInt(10), IsActive: true},
			"180",
		},
		{
			"固定金額折扣",
			199.99,
			&Discount{Type: DiscountFixed, Value: decimal.NewFromInt(50), IsActive: true},
			"149.99",
		},
		{
			"固定金額超過原價時以0為下限",
			30,
			&Discount{Type: DiscountFixed, Value: decimal.NewFromInt(50), IsActive: true},
			"0",
		},
		{
			"未啟用的折扣不生效",
			199.99,
			&Discount{Type: DiscountPercentage, Value: decimal.NewFromInt(10), IsActive: false},
			"199.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{ProductID: 1, Price: decimal.NewFromFloat(tt.price), Discount: tt.discount}
			assert.True(t, p.DisplayPrice().Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, p.DisplayPrice())
		})
	}
}

func TestIsOnSale(t *testing.T) {
	noDiscount := Product{ProductID: 1, Price: decimal.NewFromInt(100)}
	assert.False(t, noDiscount.IsOnSale())

	inactive := Product{
		ProductID: 2,
		Price:     decimal.NewFromInt(100),
		Discount:  &Discount{Type: DiscountPercentage, Value: decimal.NewFromInt(10), IsActive: false},
	}
	assert.False(t, inactive.IsOnSale())

	active := Product{
		ProductID: 3,
		Price:     decimal.NewFromInt(100),
		Discount:  &Discount{Type: DiscountPercentage, Value: decimal.NewFromInt(10), IsActive: true},
	}
	assert.True(t, active.IsOnSale())
}
