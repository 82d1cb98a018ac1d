package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.ICheckoutService
}

func NewCheckoutHandler(checkoutService service.ICheckoutService) *CheckoutHandler {
	if checkoutService == nil {
		panic("checkoutService cannot be nil")
	}
	return &CheckoutHandler{checkoutService: checkoutService}
}

// @Summary start checkout from current cart
// @Tags checkout
// @Produce json
// @Param userID path int true "user id"
// @Success 200 {object} dto.Response{data=dto.FlowResponse} "success"
// @Failure 400 {object} dto.Response "cart is empty"
// @Router /api/checkout/{userID}/start [post]
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	flow, err := h.checkoutService.Start(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToFlowResponse(flow))
}

// @Summary submit customer info
// @Tags checkout
// @Accept json
// @Produce json
// @Param userID path int true "user id"
// @Param request body dto.CustomerInfoRequest true "customer info"
// @Success 200 {object} dto.Response{data=dto.FlowResponse} "success"
// @Failure 400 {object} dto.Response "validation failure"
// @Failure 409 {object} dto.Response "wrong step"
// @Router /api/checkout/{userID}/customer-info [post]
func (h *CheckoutHandler) SubmitCustomerInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req dto.CustomerInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	flow, err := h.checkoutService.SubmitCustomerInfo(r.Context(), userID, model.CustomerInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToFlowResponse(flow))
}

// @Summary submit shipping info
// @Tags checkout
// @Accept json
// @Produce json
// @Param userID path int true "user id"
// @Param request body dto.ShippingInfoRequest true "shipping info"
// @Success 200 {object} dto.Response{data=dto.FlowResponse} "success"
// @Router /api/checkout/{userID}/shipping-info [post]
func (h *CheckoutHandler) SubmitShippingInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req dto.ShippingInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	flow, err := h.checkoutService.SubmitShippingInfo(r.Context(), userID, model.ShippingInfo{
		Address: req.Address,
		City:    req.City,
		ZipCode: req.ZipCode,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToFlowResponse(flow))
}

// @Summary submit payment info
// @Tags checkout
// @Accept json
// @Produce json
// @Param userID path int true "user id"
// @Param request body dto.PaymentInfoRequest true "payment info"
// @Success 200 {object} dto.Response{data=dto.FlowResponse} "success"
// @Router /api/checkout/{userID}/payment-info [post]
func (h *CheckoutHandler) SubmitPaymentInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req dto.PaymentInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	flow, err := h.checkoutService.SubmitPaymentInfo(r.Context(), userID, model.PaymentInfo{
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToFlowResponse(flow))
}

// @Summary go back one step
// @Tags checkout
// @Produce json
// @Param userID path int true "user id"
// @Success 200 {object} dto.Response{data=dto.FlowResponse} "success"
// @Router /api/checkout/{userID}/back [post]
func (h *CheckoutHandler) GoBack(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	flow, err := h.checkoutService.GoBack(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToFlowResponse(flow))
}

// @Summary get order details for review
// @Tags checkout
// @Produce json
// @Param userID path int true "user id"
// @Success 200 {object} dto.Response{data=dto.OrderDetailsResponse} "success"
// @Failure 409 {object} dto.Response "not at order review"
// @Router /api/checkout/{userID}/order-details [get]
func (h *CheckoutHandler) OrderDetails(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	details, err := h.checkoutService.OrderDetails(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToOrderDetailsResponse(details))
}

// @Summary abandon checkout
// @Tags checkout
// @Produce json
// @Param userID path int true "user id"
// @Success 200 {object} dto.Response "success"
// @Router /api/checkout/{userID} [delete]
func (h *CheckoutHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.checkoutService.Abandon(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, nil)
}
