// Package catalog 提供唯讀的商品目錄
// mock資料存在記憶體內，不做持久化
package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

type CatalogRepoError error

var ErrProductNotFound CatalogRepoError = errors.New("product not found")

type Filter struct {
	Category string
	Search   string
}

type IProductRepository interface {
	ListProducts(ctx context.Context, filter Filter) ([]model.Product, error)
	GetProduct(ctx context.Context, productID int) (model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	PriceRange(ctx context.Context) (min, max decimal.Decimal, err error)
}

type Repo struct {
	products []model.Product
}

func NewRepo() *Repo {
	return &Repo{products: seedProducts()}
}

// ListProducts 依分類與關鍵字過濾
// search比對name與description，不分大小寫
func (r *Repo) ListProducts(ctx context.Context, filter Filter) ([]model.Product, error) {
	result := make([]model.Product, 0, len(r.products))
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	for _, p := range r.products {
		if filter.Category != "" && filter.Category != "all" && string(p.Category) != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (r *Repo) GetProduct(ctx context.Context, productID int) (model.Product, error) {
	for _, p := range r.products {
		if p.ProductID == productID {
			return p, nil
		}
	}
	return model.Product{}, ErrProductNotFound
}

func (r *Repo) Categories(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range r.products {
		if _, ok := seen[string(p.Category)]; ok {
			continue
		}
		seen[string(p.Category)] = struct{}{}
		categories = append(categories, string(p.Category))
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *Repo) PriceRange(ctx context.Context) (min, max decimal.Decimal, err error) {
	if len(r.products) == 0 {
		return decimal.Zero, decimal.Zero, nil
	}

	min = r.products[0].Price
	max = r.products[0].Price
	for _, p := range r.products[1:] {
		if p.Price.LessThan(min) {
			min = p.Price
		}
		if p.Price.GreaterThan(max) {
			max = p.Price
		}
	}
	return min, max, nil
}

func tenPercentOff() *model.Discount {
	return &model.Discount{
		Type:     model.DiscountPercentage,
		Value:    decimal.NewFromInt(10),
		IsActive: true,
	}
}

func seedProducts() []model.Product {
	return []model.Product{
		{
			ProductID:   1,
			Name:        "Wireless Headphones",
			Price:       decimal.NewFromFloat(199.99),
			Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop",
			Description: "High-quality wireless headphones with noise cancellation",
			Stock:       10,
			Category:    model.CategoryAudio,
		},
		{
			ProductID:   2,
			Name:        "Smart Watch",
			Price:       decimal.NewFromFloat(299.99),
			Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop",
			Description: "Advanced smartwatch with health monitoring",
			Stock:       5,
			Category:    model.CategoryWearables,
			Discount:    tenPercentOff(),
		},
		{
			ProductID:   3,
			Name:        "Laptop Stand",
			Price:       decimal.NewFromFloat(49.99),
			Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=300&h=300&fit=crop",
			Description: "Adjustable aluminum laptop stand",
			Stock:       20,
			Category:    model.CategoryAccessories,
		},
		{
			ProductID:   4,
			Name:        "Wireless Mouse",
			Price:       decimal.NewFromFloat(79.99),
			Image:       "https://images.unsplash.com/photo-1527814050087-3793815479db?w=300&h=300&fit=crop",
			Description: "Ergonomic wireless mouse with precision tracking",
			Stock:       15,
			Category:    model.CategoryAccessories,
		},
		{
			ProductID:   5,
			Name:        "USB-C Hub",
			Price:       decimal.NewFromFloat(129.99),
			Image:       "https://images.unsplash.com/photo-1625842268584-8f3296236761?w=300&h=300&fit=crop",
			Description: "Multi-port USB-C hub with 4K HDMI output",
			Stock:       8,
			Category:    model.CategoryAccessories,
			Discount:    tenPercentOff(),
		},
		{
			ProductID:   6,
			Name:        "Bluetooth Speaker",
			Price:       decimal.NewFromFloat(159.99),
			Image:       "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=300&h=300&fit=crop",
			Description: "Portable waterproof Bluetooth speaker",
			Stock:       12,
			Category:    model.CategoryAudio,
		},
	}
}
