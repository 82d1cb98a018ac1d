package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{cartService: cartService}
}

func userIDParam(r *http.Request) (int, bool) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	return userID, err == nil
}

// @Summary get cart
// @Tags carts
// @Produce json
// @Param userID path int true "user id"
// @Success 200 {object} dto.Response{data=dto.CartResponse} "success"
// @Router /api/carts/{userID} [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	cart, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToCartResponse(cart))
}

// @Summary add product to cart
// @Tags carts
// @Accept json
// @Produce json
// @Param userID path int true "user id"
// @Param request body dto.AddCartItemRequest true "product id and quantity"
// @Success 200 {object} dto.Response{data=dto.CartResponse} "success"
// @Failure 400 {object} dto.Response "quantity or stock violation"
// @Router /api/carts/{userID}/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req dto.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartService.AddProduct(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToCartResponse(cart))
}

// @Summary set line item quantity
// @Tags carts
// @Accept json
// @Produce json
// @Param userID path int true "user id"
// @Param productID path int true "product id"
// @Param request body dto.UpdateCartItemRequest true "absolute quantity"
// @Success 200 {object} dto.Response{data=dto.CartResponse} "success"
// @Router /api/carts/{userID}/items/{productID} [put]
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		dto.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req dto.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		dto.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := h.cartService.SetQuantity(r.Context(), userID, productID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToCartResponse(cart))
}

// @Summary remove product from cart
// @Tags carts
// @Produce json
// @Param userID path int true "user id"
// @Param productID path int true "product id"
// @Success 200 {object} dto.Response{data=dto.CartResponse} "success"
// @Router /api/carts/{userID}/items/{productID} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		dto.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	cart, err := h.cartService.RemoveProduct(r.Context(), userID, productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToCartResponse(cart))
}

// @Summary clear cart
// @Tags carts
// @Produce json
// @Param userID path int true "user id"
// @Success 200 {object} dto.Response "success"
// @Router /api/carts/{userID} [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(r)
	if !ok {
		dto.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.cartService.ClearCart(r.Context(), userID); err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, nil)
}
