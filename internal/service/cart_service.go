package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
)

type ICartService interface {
	GetCart(ctx context.Context, userID int) (model.Cart, error)
	AddProduct(ctx context.Context, userID, productID, quantity int) (model.Cart, error)
	SetQuantity(ctx context.Context, userID, productID, quantity int) (model.Cart, error)
	RemoveProduct(ctx context.Context, userID, productID int) (model.Cart, error)
	ClearCart(ctx context.Context, userID int) error
}

// CartService 負責load-mutate-save
// 購物車只存在redis，商品資訊每次由catalog還原
// 購物車規則(庫存/數量不變量)都在domain層，這裡只做編排
type CartService struct {
	cartRepo    redis_repo.ICartRepository
	productRepo catalog.IProductRepository
}

func NewCartService(cartRepo redis_repo.ICartRepository, productRepo catalog.IProductRepository) *CartService {
	if cartRepo == nil {
		panic("CartService dependency cartRepo is nil")
	}
	if productRepo == nil {
		panic("CartService dependency productRepo is nil")
	}
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart 還原購物車
// redis內容與目前目錄對帳:
//   - 商品已下架: 移除
//   - 商品已無庫存: 移除
//   - 數量超過目前庫存: 以庫存為上限
func (s *CartService) GetCart(ctx context.Context, userID int) (model.Cart, error) {
	records, err := s.cartRepo.Load(ctx, userID)
	if err != nil {
		return model.Cart{}, err
	}

	cart := model.NewCart()
	for _, record := range records {
		product, err := s.productRepo.GetProduct(ctx, record.ProductID)
		if errors.Is(err, catalog.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return model.Cart{}, fmt.Errorf("failed to resolve cart product %d: %w", record.ProductID, err)
		}

		quantity := record.Quantity
		if quantity > product.Stock {
			quantity = product.Stock
		}
		if quantity <= 0 {
			continue
		}

		cart, err = cart.AddProduct(product, quantity)
		if err != nil {
			return model.Cart{}, fmt.Errorf("failed to rebuild cart: %w", err)
		}
	}
	return cart, nil
}

func (s *CartService) AddProduct(ctx context.Context, userID, productID, quantity int) (model.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return model.Cart{}, err
	}

	product, err := s.productRepo.GetProduct(ctx, productID)
	if err != nil {
		return model.Cart{}, err
	}

	cart, err = cart.AddProduct(product, quantity)
	if err != nil {
		return model.Cart{}, err
	}

	if err := s.save(ctx, userID, cart); err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

func (s *CartService) SetQuantity(ctx context.Context, userID, productID, quantity int) (model.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return model.Cart{}, err
	}

	cart, err = cart.SetLineItemQuantity(productID, quantity)
	if err != nil {
		return model.Cart{}, err
	}

	if err := s.save(ctx, userID, cart); err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

func (s *CartService) RemoveProduct(ctx context.Context, userID, productID int) (model.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return model.Cart{}, err
	}

	cart = cart.RemoveProduct(productID)

	if err := s.save(ctx, userID, cart); err != nil {
		return model.Cart{}, err
	}
	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, userID int) error {
	return s.cartRepo.Clear(ctx, userID)
}

func (s *CartService) save(ctx context.Context, userID int, cart model.Cart) error {
	lineItems := cart.LineItems()
	records := make([]redis_repo.CartItem, 0, len(lineItems))
	for _, item := range lineItems {
		records = append(records, redis_repo.CartItem{
			ProductID: item.Product.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return s.cartRepo.Save(ctx, userID, records)
}
