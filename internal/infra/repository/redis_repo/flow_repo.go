package redis_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

type FlowRepoError error

var ErrFlowNotFound FlowRepoError = errors.New("checkout flow not found")

// DefaultFlowTTL 結帳session閒置多久後失效
const DefaultFlowTTL = 30 * time.Minute

type IFlowRepository interface {
	Save(ctx context.Context, userID int, snap model.FlowSnapshot) error
	Load(ctx context.Context, userID int) (model.FlowSnapshot, error)
	Delete(ctx context.Context, userID int) error
}

// FlowRepo 結帳流程session儲存
// 整個FlowSnapshot以JSON存成單一key，每次寫入刷新TTL
type FlowRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFlowRepo(client *redis.Client) *FlowRepo {
	return &FlowRepo{client: client, ttl: DefaultFlowTTL}
}

func checkoutFlowKey(userID int) string {
	return fmt.Sprintf("checkout:%d:flow", userID)
}

func (r *FlowRepo) Save(ctx context.Context, userID int, snap model.FlowSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout flow: %w", err)
	}

	if err := r.client.Set(ctx, checkoutFlowKey(userID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save checkout flow: %w", err)
	}
	return nil
}

func (r *FlowRepo) Load(ctx context.Context, userID int) (model.FlowSnapshot, error) {
	payload, err := r.client.Get(ctx, checkoutFlowKey(userID)).Bytes()
	if err == redis.Nil {
		return model.FlowSnapshot{}, ErrFlowNotFound
	}
	if err != nil {
		return model.FlowSnapshot{}, fmt.Errorf("failed to load checkout flow: %w", err)
	}

	var snap model.FlowSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return model.FlowSnapshot{}, fmt.Errorf("failed to unmarshal checkout flow: %w", err)
	}
	return snap, nil
}

func (r *FlowRepo) Delete(ctx context.Context, userID int) error {
	if err := r.client.Del(ctx, checkoutFlowKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete checkout flow: %w", err)
	}
	return nil
}
