package handler

import (
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	return &ProductHandler{productService: productService}
}

// @Summary list products
// @Tags products
// @Produce json
// @Param category query string false "category filter"
// @Param search query string false "search in name and description"
// @Success 200 {object} dto.Response{data=[]dto.ProductResponse} "success"
// @Router /api/products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := catalog.Filter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}

	products, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	responses := dto.ToProductResponses(products)
	dto.WriteJSONWithCount(w, http.StatusOK, responses, len(responses))
}

// @Summary get product by id
// @Tags products
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} dto.Response{data=dto.ProductResponse} "success"
// @Failure 404 {object} dto.Response "product not found"
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.productService.GetProduct(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.ToProductResponse(product))
}

// @Summary check product stock availability
// @Tags products
// @Produce json
// @Param id path int true "product id"
// @Param quantity query int false "requested quantity" default(1)
// @Success 200 {object} dto.Response{data=dto.StockCheckResponse} "success"
// @Router /api/products/{id}/stock [get]
func (h *ProductHandler) CheckStock(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	quantity := 1
	if q := r.URL.Query().Get("quantity"); q != "" {
		quantity, err = strconv.Atoi(q)
		if err != nil {
			dto.WriteError(w, http.StatusBadRequest, "invalid quantity")
			return
		}
	}

	available, stock, err := h.productService.CheckProductStockEnough(r.Context(), productID, quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.StockCheckResponse{
		Available: available,
		Stock:     stock,
	})
}

// @Summary list categories
// @Tags products
// @Produce json
// @Success 200 {object} dto.Response{data=[]string} "success"
// @Router /api/categories [get]
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.productService.Categories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, categories)
}

// @Summary get catalog price range
// @Tags products
// @Produce json
// @Success 200 {object} dto.Response{data=dto.PriceRangeResponse} "success"
// @Router /api/price-range [get]
func (h *ProductHandler) PriceRange(w http.ResponseWriter, r *http.Request) {
	min, max, err := h.productService.PriceRange(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto.WriteJSON(w, http.StatusOK, dto.PriceRangeResponse{
		Min: min.InexactFloat64(),
		Max: max.InexactFloat64(),
	})
}
