package handler

import (
	"errors"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/catalog"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

// writeServiceError domain/service錯誤對應HTTP狀態碼
// 驗證類錯誤400、找不到404、流程誤用409，其餘500
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		dto.WriteError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, model.ErrLineItemNotFound):
		dto.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoActiveFlow):
		dto.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidCheckoutFlowTransition):
		dto.WriteError(w, http.StatusConflict, err.Error())
	case isValidationError(err):
		dto.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		dto.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func isValidationError(err error) bool {
	validationErrors := []error{
		model.ErrNonPositiveQuantity,
		model.ErrProductOutOfStock,
		model.ErrQuantityExceedsStock,
		model.ErrEmptyCart,
		model.ErrMissingFirstName,
		model.ErrMissingLastName,
		model.ErrMissingEmail,
		model.ErrInvalidEmail,
		model.ErrMissingAddress,
		model.ErrMissingCity,
		model.ErrMissingZipCode,
		model.ErrMissingCardNumber,
		model.ErrInvalidCardNumber,
		model.ErrMissingCardExpiry,
		model.ErrInvalidCardExpiry,
		model.ErrMissingCardCvv,
		model.ErrInvalidCardCvv,
		service.ErrEmptyOrder,
		service.ErrMissingOrderInfo,
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
