package service

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/catalog"
	"github.com/shopspring/decimal"
)

type IProductService interface {
	ListProducts(ctx context.Context, filter catalog.Filter) ([]model.Product, error)
	GetProduct(ctx context.Context, productID int) (model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	PriceRange(ctx context.Context) (min, max decimal.Decimal, err error)
	CheckProductStockEnough(ctx context.Context, productID, quantity int) (bool, int, error)
}

type ProductService struct {
	productRepo catalog.IProductRepository
}

func NewProductService(productRepo catalog.IProductRepository) *ProductService {
	if productRepo == nil {
		panic("ProductService dependency productRepo is nil")
	}
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) ListProducts(ctx context.Context, filter catalog.Filter) ([]model.Product, error) {
	return s.productRepo.ListProducts(ctx, filter)
}

func (s *ProductService) GetProduct(ctx context.Context, productID int) (model.Product, error) {
	return s.productRepo.GetProduct(ctx, productID)
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}

func (s *ProductService) PriceRange(ctx context.Context) (min, max decimal.Decimal, err error) {
	return s.productRepo.PriceRange(ctx)
}

// CheckProductStockEnough 檢查庫存是否足夠
// 回傳是否足夠與目前庫存量
// 錯誤:
//   - catalog.ErrProductNotFound: 商品不存在
func (s *ProductService) CheckProductStockEnough(ctx context.Context, productID, quantity int) (bool, int, error) {
	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return false, 0, err
	}
	return product.Stock >= quantity, product.Stock, nil
}
