package redis_repo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type CartRepoError error

var ErrCartNotFound CartRepoError = errors.New("cart not found")

// CartItem redis內只存productID與數量，商品資訊由catalog還原
type CartItem struct {
	ProductID int
	Quantity  int
}

type ICartRepository interface {
	Save(ctx context.Context, userID int, items []CartItem) error
	Load(ctx context.Context, userID int) ([]CartItem, error)
	Clear(ctx context.Context, userID int) error
}

type CartRepo struct {
	client *redis.Client
}

func NewCartRepo(client *redis.Client) *CartRepo {
	return &CartRepo{client: client}
}

func cartItemsKey(userID int) string {
	return fmt.Sprintf("cart:%d:items", userID)
}

// Save 覆寫整個購物車
// 使用Lua腳本確保DEL+HSET原子性
func (r *CartRepo) Save(ctx context.Context, userID int, items []CartItem) error {
	itemsKey := cartItemsKey(userID)

	luaScript := `
		redis.call('DEL', KEYS[1])
		for i = 1, #ARGV, 2 do
			redis.call('HSET', KEYS[1], ARGV[i], ARGV[i+1])
		end
		return 1
	`
	args := make([]interface{}, 0, len(items)*2)
	for _, item := range items {
		args = append(args, item.ProductID, item.Quantity)
	}

	_, err := r.client.Eval(ctx, luaScript, []string{itemsKey}, args...).Result()
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Load 取出購物車，不存在時回傳空清單
// HGetAll的欄位順序不固定，回傳前依productID排序
func (r *CartRepo) Load(ctx context.Context, userID int) ([]CartItem, error) {
	itemsKey := cartItemsKey(userID)

	fields, err := r.client.HGetAll(ctx, itemsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}

	items := make([]CartItem, 0, len(fields))
	for productIDStr, quantityStr := range fields {
		productID, err := strconv.Atoi(productIDStr)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %s: %w", productIDStr, err)
		}
		quantity, err := strconv.Atoi(quantityStr)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity for product %s: %w", productIDStr, err)
		}
		if quantity > 0 {
			items = append(items, CartItem{ProductID: productID, Quantity: quantity})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID < items[j].ProductID
	})
	return items, nil
}

// Clear 清空購物車
func (r *CartRepo) Clear(ctx context.Context, userID int) error {
	err := r.client.Del(ctx, cartItemsKey(userID)).Err()
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
