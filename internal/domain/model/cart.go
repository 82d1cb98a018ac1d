package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

type CartError error

var (
	ErrNonPositiveQuantity  CartError = errors.New("quantity must be positive")
	ErrProductOutOfStock    CartError = errors.New("product is out of stock")
	ErrQuantityExceedsStock CartError = errors.New("quantity exceeds available stock")
	ErrLineItemNotFound     CartError = errors.New("line item not found")
)

var (
	taxRate               = decimal.NewFromFloat(0.08)
	freeShippingThreshold = decimal.NewFromInt(100)
	defaultShippingValue  = decimal.NewFromFloat(9.99)
)

type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart 不可變值物件
// 所有修改操作都回傳新的Cart，舊值保持不變
// checkout持有的快照不會被後續操作影響，因此不需要鎖
type Cart struct {
	lineItems []LineItem
}

func NewCart() Cart {
	return Cart{}
}

// LineItems 回傳明細的複本
func (c Cart) LineItems() []LineItem {
	items := make([]LineItem, len(c.lineItems))
	copy(items, c.lineItems)
	return items
}

func (c Cart) IsEmpty() bool {
	return len(c.lineItems) == 0
}

func (c Cart) LineItemQuantity(productID int) (int, bool) {
	if idx := c.findLineItem(productID); idx >= 0 {
		return c.lineItems[idx].Quantity, true
	}
	return 0, false
}

// AddProduct 加入商品
// 同商品重複加入時累加數量
// 錯誤:
//   - ErrNonPositiveQuantity: quantity <= 0
//   - ErrProductOutOfStock: 商品無庫存
//   - ErrQuantityExceedsStock: 累加後數量超過庫存
func (c Cart) AddProduct(product Product, quantity int) (Cart, error) {
	if quantity <= 0 {
		return Cart{}, ErrNonPositiveQuantity
	}
	if product.StockStatus() == StockStatusOutOfStock {
		return Cart{}, ErrProductOutOfStock
	}

	existing := 0
	if idx := c.findLineItem(product.ProductID); idx >= 0 {
		existing = c.lineItems[idx].Quantity
	}
	if existing+quantity > product.Stock {
		return Cart{}, ErrQuantityExceedsStock
	}

	items := c.LineItems()
	if idx := c.findLineItem(product.ProductID); idx >= 0 {
		items[idx].Quantity = existing + quantity
	} else {
		items = append(items, LineItem{Product: product, Quantity: quantity})
	}
	return Cart{lineItems: items}, nil
}

// RemoveProduct 移除商品
// 商品不在購物車內時不視為錯誤，回傳原值
func (c Cart) RemoveProduct(productID int) Cart {
	idx := c.findLineItem(productID)
	if idx < 0 {
		return c
	}

	items := c.LineItems()
	items = append(items[:idx], items[idx+1:]...)
	return Cart{lineItems: items}
}

// SetLineItemQuantity 覆寫數量(非累加)
// 錯誤:
//   - ErrNonPositiveQuantity: quantity <= 0
//   - ErrLineItemNotFound: 商品不在購物車內
//   - ErrQuantityExceedsStock: 數量超過庫存
func (c Cart) SetLineItemQuantity(productID, quantity int) (Cart, error) {
	if quantity <= 0 {
		return Cart{}, ErrNonPositiveQuantity
	}

	idx := c.findLineItem(productID)
	if idx < 0 {
		return Cart{}, ErrLineItemNotFound
	}
	if quantity > c.lineItems[idx].Product.Stock {
		return Cart{}, ErrQuantityExceedsStock
	}

	items := c.LineItems()
	items[idx].Quantity = quantity
	return Cart{lineItems: items}, nil
}

// Subtotal 以折扣後價格計算
func (c Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.lineItems {
		subtotal = subtotal.Add(item.Product.DisplayPrice().Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

func (c Cart) Tax() decimal.Decimal {
	return c.Subtotal().Mul(taxRate)
}

// Shipping 滿額免運
func (c Cart) Shipping() decimal.Decimal {
	if c.Subtotal().GreaterThanOrEqual(freeShippingThreshold) {
		return decimal.Zero
	}
	return defaultShippingValue
}

func (c Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.Tax()).Add(c.Shipping())
}

func (c Cart) findLineItem(productID int) int {
	for i := range c.lineItems {
		if c.lineItems[i].Product.ProductID == productID {
			return i
		}
	}
	return -1
}
