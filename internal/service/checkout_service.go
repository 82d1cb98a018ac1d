package service

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo"
)

type CheckoutServiceError error

var ErrNoActiveFlow CheckoutServiceError = errors.New("no active checkout flow")

type ICheckoutService interface {
	Start(ctx context.Context, userID int) (model.Flow, error)
	SubmitCustomerInfo(ctx context.Context, userID int, info model.CustomerInfo) (model.Flow, error)
	SubmitShippingInfo(ctx context.Context, userID int, info model.ShippingInfo) (model.Flow, error)
	SubmitPaymentInfo(ctx context.Context, userID int, info model.PaymentInfo) (model.Flow, error)
	GoBack(ctx context.Context, userID int) (model.Flow, error)
	OrderDetails(ctx context.Context, userID int) (model.OrderDetails, error)
	Abandon(ctx context.Context, userID int) error
}

// CheckoutService server端的結帳session
// 狀態機本體在domain層，這裡只做load -> transition -> save
// session存redis，閒置超過TTL自動消失
type CheckoutService struct {
	flowRepo    redis_repo.IFlowRepository
	cartService ICartService
}

func NewCheckoutService(flowRepo redis_repo.IFlowRepository, cartService ICartService) *CheckoutService {
	if flowRepo == nil {
		panic("CheckoutService dependency flowRepo is nil")
	}
	if cartService == nil {
		panic("CheckoutService dependency cartService is nil")
	}
	return &CheckoutService{flowRepo: flowRepo, cartService: cartService}
}

// Start 以目前購物車開始新的結帳流程
// 會覆蓋既有的session
// 錯誤:
//   - model.ErrEmptyCart: 購物車為空
func (s *CheckoutService) Start(ctx context.Context, userID int) (model.Flow, error) {
	cart, err := s.cartService.GetCart(ctx, userID)
	if err != nil {
		return model.Flow{}, err
	}

	flow, err := model.StartCheckout(cart)
	if err != nil {
		return model.Flow{}, err
	}

	if err := s.flowRepo.Save(ctx, userID, flow.Snapshot()); err != nil {
		return model.Flow{}, err
	}
	return flow, nil
}

func (s *CheckoutService) SubmitCustomerInfo(ctx context.Context, userID int, info model.CustomerInfo) (model.Flow, error) {
	return s.transition(ctx, userID, func(flow model.Flow) (model.Flow, error) {
		return flow.GoToShippingInfo(info)
	})
}

func (s *CheckoutService) SubmitShippingInfo(ctx context.Context, userID int, info model.ShippingInfo) (model.Flow, error) {
	return s.transition(ctx, userID, func(flow model.Flow) (model.Flow, error) {
		return flow.GoToPaymentInfo(info)
	})
}

func (s *CheckoutService) SubmitPaymentInfo(ctx context.Context, userID int, info model.PaymentInfo) (model.Flow, error) {
	return s.transition(ctx, userID, func(flow model.Flow) (model.Flow, error) {
		return flow.GoToOrderReview(info)
	})
}

func (s *CheckoutService) GoBack(ctx context.Context, userID int) (model.Flow, error) {
	return s.transition(ctx, userID, func(flow model.Flow) (model.Flow, error) {
		return flow.GoBack(), nil
	})
}

func (s *CheckoutService) OrderDetails(ctx context.Context, userID int) (model.OrderDetails, error) {
	flow, err := s.load(ctx, userID)
	if err != nil {
		return model.OrderDetails{}, err
	}
	return flow.OrderDetails()
}

// Abandon 放棄結帳，session直接丟棄
func (s *CheckoutService) Abandon(ctx context.Context, userID int) error {
	return s.flowRepo.Delete(ctx, userID)
}

func (s *CheckoutService) transition(ctx context.Context, userID int, fn func(model.Flow) (model.Flow, error)) (model.Flow, error) {
	flow, err := s.load(ctx, userID)
	if err != nil {
		return model.Flow{}, err
	}

	next, err := fn(flow)
	if err != nil {
		return model.Flow{}, err
	}

	if err := s.flowRepo.Save(ctx, userID, next.Snapshot()); err != nil {
		return model.Flow{}, err
	}
	return next, nil
}

func (s *CheckoutService) load(ctx context.Context, userID int) (model.Flow, error) {
	snap, err := s.flowRepo.Load(ctx, userID)
	if errors.Is(err, redis_repo.ErrFlowNotFound) {
		return model.Flow{}, ErrNoActiveFlow
	}
	if err != nil {
		return model.Flow{}, err
	}
	return model.RestoreFlow(snap)
}
