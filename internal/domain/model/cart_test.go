package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id int, price float64, stock int) Product {
	return Product{
		ProductID: id,
		Name:      "test product",
		Price:     decimal.NewFromFloat(price),
		Stock:     stock,
	}
}

func TestCartAddProduct(t *testing.T) {
	t.Run("加入新商品", func(t *testing.T) {
		cart, err := NewCart().AddProduct(testProduct(1, 199.99, 50), 2)
		require.NoError(t, err)

		qty, ok := cart.LineItemQuantity(1)
		assert.True(t, ok)
		assert.Equal(t, 2, qty)
	})

	t.Run("同商品重複加入時累加", func(t *testing.T) {
		p := testProduct(1, 199.99, 50)
		cart, err := NewCart().AddProduct(p, 2)
		require.NoError(t, err)
		cart, err = cart.AddProduct(p, 3)
		require.NoError(t, err)

		qty, _ := cart.LineItemQuantity(1)
		assert.Equal(t, 5, qty)
		assert.Len(t, cart.LineItems(), 1)
	})

	t.Run("數量必須為正", func(t *testing.T) {
		_, err := NewCart().AddProduct(testProduct(1, 199.99, 50), 0)
		assert.ErrorIs(t, err, ErrNonPositiveQuantity)

		_, err = NewCart().AddProduct(testProduct(1, 199.99, 50), -1)
		assert.ErrorIs(t, err, ErrNonPositiveQuantity)
	})

	t.Run("無庫存商品不可加入", func(t *testing.T) {
		_, err := NewCart().AddProduct(testProduct(1, 199.99, 0), 1)
		assert.ErrorIs(t, err, ErrProductOutOfStock)
	})

	t.Run("累加後超過庫存", func(t *testing.T) {
		p := testProduct(1, 199.99, 5)
		cart, err := NewCart().AddProduct(p, 3)
		require.NoError(t, err)

		_, err = cart.AddProduct(p, 3)
		assert.ErrorIs(t, err, ErrQuantityExceedsStock)

		// 剛好等於庫存可以
		cart, err = cart.AddProduct(p, 2)
		require.NoError(t, err)
		qty, _ := cart.LineItemQuantity(1)
		assert.Equal(t, 5, qty)
	})

	t.Run("原始購物車不受影響", func(t *testing.T) {
		original := NewCart()
		_, err := original.AddProduct(testProduct(1, 199.99, 50), 2)
		require.NoError(t, err)
		assert.True(t, original.IsEmpty())
	})
}

func TestCartSetLineItemQuantity(t *testing.T) {
	p := testProduct(1, 199.99, 10)

	t.Run("覆寫而非累加", func(t *testing.T) {
		cart, err := NewCart().AddProduct(p, 2)
		require.NoError(t, err)
		cart, err = cart.SetLineItemQuantity(1, 7)
		require.NoError(t, err)

		qty, _ := cart.LineItemQuantity(1)
		assert.Equal(t, 7, qty)
	})

	t.Run("商品不在購物車內", func(t *testing.T) {
		_, err := NewCart().SetLineItemQuantity(99, 1)
		assert.ErrorIs(t, err, ErrLineItemNotFound)
	})

	t.Run("超過庫存", func(t *testing.T) {
		cart, err := NewCart().AddProduct(p, 2)
		require.NoError(t, err)
		_, err = cart.SetLineItemQuantity(1, 11)
		assert.ErrorIs(t, err, ErrQuantityExceedsStock)
	})

	t.Run("數量必須為正", func(t *testing.T) {
		cart, err := NewCart().AddProduct(p, 2)
		require.NoError(t, err)
		_, err = cart.SetLineItemQuantity(1, 0)
		assert.ErrorIs(t, err, ErrNonPositiveQuantity)
	})
}

func TestCartRemoveProduct(t *testing.T) {
	cart, err := NewCart().AddProduct(testProduct(1, 199.99, 50), 2)
	require.NoError(t, err)

	removed := cart.RemoveProduct(1)
	assert.True(t, removed.IsEmpty())

	// 不存在的商品不視為錯誤
	same := cart.RemoveProduct(99)
	assert.Len(t, same.LineItems(), 1)
}

func TestCartTotals(t *testing.T) {
	t.Run("滿額免運", func(t *testing.T) {
		cart, err := NewCart().AddProduct(testProduct(1, 199.99, 50), 1)
		require.NoError(t, err)

		assert.True(t, cart.Subtotal().Equal(decimal.NewFromFloat(199.99)))
		assert.True(t, cart.Tax().Equal(decimal.NewFromFloat(15.9992)), "tax = %s", cart.Tax())
		assert.True(t, cart.Shipping().IsZero())
		assert.True(t, cart.Total().Equal(decimal.NewFromFloat(215.9892)), "total = %s", cart.Total())
	})

	t.Run("未滿額收運費", func(t *testing.T) {
		cart, err := NewCart().AddProduct(testProduct(1, 49.99, 50), 1)
		require.NoError(t, err)

		assert.True(t, cart.Subtotal().Equal(decimal.NewFromFloat(49.99)))
		assert.True(t, cart.Tax().Equal(decimal.NewFromFloat(3.9992)), "tax = %s", cart.Tax())
		assert.True(t, cart.Shipping().Equal(decimal.NewFromFloat(9.99)))
		assert.True(t, cart.Total().Equal(decimal.NewFromFloat(63.9692)), "total = %s", cart.Total())
	})

	t.Run("小計剛好100免運", func(t *testing.T) {
		cart, err := NewCart().AddProduct(testProduct(1, 50, 50), 2)
		require.NoError(t, err)
		assert.True(t, cart.Shipping().IsZero())
	})

	t.Run("小計99.99收運費", func(t *testing.T) {
		cart, err := NewCart().AddProduct(testProduct(1, 99.99, 50), 1)
		require.NoError(t, err)
		assert.True(t, cart.Shipping().Equal(decimal.NewFromFloat(9.99)))
	})

	t.Run("小計以折扣後價格計算", func(t *testing.T) {
		p := testProduct(1, 200, 50)
		p.Discount = &Discount{Type: DiscountPercentage, Value: decimal.NewFromInt(10), IsActive: true}

		cart, err := NewCart().AddProduct(p, 1)
		require.NoError(t, err)
		assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(180)), "subtotal = %s", cart.Subtotal())
	})

	t.Run("空購物車", func(t *testing.T) {
		cart := NewCart()
		assert.True(t, cart.Subtotal().IsZero())
		assert.True(t, cart.Tax().IsZero())
		// 空車小於免運門檻，仍套用預設運費
		assert.True(t, cart.Shipping().Equal(decimal.NewFromFloat(9.99)))
	})
}
