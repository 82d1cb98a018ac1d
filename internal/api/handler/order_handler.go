package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type OrderHandler struct {
	orderService service.IOrderService
	cartService  service.ICartService
}

func NewOrderHandler(orderService service.IOrderService, cartService service.ICartService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{orderService: orderService, cartService: cartService}
}

// @Summary submit order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body dto.SubmitOrderRequest true "finalized order details"
// @Success 200 {object} dto.Response{data=dto.OrderConfirmationResponse} "success"
// @Failure 400 {object} dto.Response "empty order or missing info"
// @Router /api/orders [post]
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	confirmation, err := h.orderService.SubmitOrder(r.Context(), req.UserID, req.ToOrderDetails())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// 提交成功後清空購物車，結帳流程由session TTL自然收尾
	if h.cartService != nil && req.UserID > 0 {
		if err := h.cartService.ClearCart(r.Context(), req.UserID); err != nil {
			writeServiceError(w, err)
			return
		}
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToOrderConfirmationResponse(confirmation))
}
