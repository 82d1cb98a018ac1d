package dto

import (
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

type AddCartItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Shipping float64            `json:"shipping"`
	Total    float64            `json:"total"`
}

func ToCartResponse(cart model.Cart) CartResponse {
	lineItems := cart.LineItems()
	items := make([]CartItemResponse, 0, len(lineItems))
	for _, item := range lineItems {
		items = append(items, CartItemResponse{
			Product:  ToProductResponse(item.Product),
			Quantity: item.Quantity,
		})
	}
	return CartResponse{
		Items:    items,
		Subtotal: cart.Subtotal().InexactFloat64(),
		Tax:      cart.Tax().InexactFloat64(),
		Shipping: cart.Shipping().InexactFloat64(),
		Total:    cart.Total().InexactFloat64(),
	}
}
