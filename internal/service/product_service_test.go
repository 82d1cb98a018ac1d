package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckProductStockEnough(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(catalogRepo())

	// 商品2庫存5
	t.Run("庫存足夠", func(t *testing.T) {
		available, stock, err := svc.CheckProductStockEnough(ctx, 2, 5)
		require.NoError(t, err)
		assert.True(t, available)
		assert.Equal(t, 5, stock)
	})

	t.Run("庫存不足", func(t *testing.T) {
		available, stock, err := svc.CheckProductStockEnough(ctx, 2, 6)
		require.NoError(t, err)
		assert.False(t, available)
		assert.Equal(t, 5, stock)
	})

	t.Run("商品不存在", func(t *testing.T) {
		_, _, err := svc.CheckProductStockEnough(ctx, 999, 1)
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})
}
