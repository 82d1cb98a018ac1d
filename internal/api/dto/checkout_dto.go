package dto

import (
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

type CustomerInfoRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ShippingInfoRequest struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

type PaymentInfoRequest struct {
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

type FlowResponse struct {
	Step         string              `json:"step"`
	Cart         CartResponse        `json:"cart"`
	CustomerInfo *model.CustomerInfo `json:"customerInfo,omitempty"`
	ShippingInfo *model.ShippingInfo `json:"shippingInfo,omitempty"`
	PaymentInfo  *model.PaymentInfo  `json:"paymentInfo,omitempty"`
}

type TotalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

type OrderDetailsResponse struct {
	CustomerInfo model.CustomerInfo `json:"customerInfo"`
	ShippingInfo model.ShippingInfo `json:"shippingInfo"`
	PaymentInfo  model.PaymentInfo  `json:"paymentInfo"`
	Items        []CartItemResponse `json:"items"`
	Totals       TotalsResponse     `json:"totals"`
}

func ToFlowResponse(flow model.Flow) FlowResponse {
	resp := FlowResponse{
		Step: string(flow.Step()),
		Cart: ToCartResponse(flow.Cart()),
	}
	if info, ok := flow.CustomerInfo(); ok {
		resp.CustomerInfo = &info
	}
	if info, ok := flow.ShippingInfo(); ok {
		resp.ShippingInfo = &info
	}
	if info, ok := flow.PaymentInfo(); ok {
		resp.PaymentInfo = &info
	}
	return resp
}

func ToTotalsResponse(totals model.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal: totals.Subtotal.InexactFloat64(),
		Tax:      totals.Tax.InexactFloat64(),
		Shipping: totals.Shipping.InexactFloat64(),
		Total:    totals.Total.InexactFloat64(),
	}
}

func ToOrderDetailsResponse(details model.OrderDetails) OrderDetailsResponse {
	items := make([]CartItemResponse, 0, len(details.Items))
	for _, item := range details.Items {
		items = append(items, CartItemResponse{
			Product:  ToProductResponse(item.Product),
			Quantity: item.Quantity,
		})
	}
	return OrderDetailsResponse{
		CustomerInfo: details.CustomerInfo,
		ShippingInfo: details.ShippingInfo,
		PaymentInfo:  details.PaymentInfo,
		Items:        items,
		Totals:       ToTotalsResponse(details.Totals),
	}
}
