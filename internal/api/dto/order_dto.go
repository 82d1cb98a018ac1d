package dto

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

type DiscountRequest struct {
	Type     string  `json:"type"`
	Value    float64 `json:"value"`
	IsActive bool    `json:"isActive"`
}

type ProductRequest struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Image       string           `json:"image"`
	Description string           `json:"description"`
	Stock       int              `json:"stock"`
	Category    string           `json:"category"`
	Discount    *DiscountRequest `json:"discount,omitempty"`
}

type OrderItemRequest struct {
	Product  ProductRequest `json:"product"`
	Quantity int            `json:"quantity"`
}

type TotalsRequest struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// SubmitOrderRequest POST /api/orders的body
// 結帳完成的OrderDetails原樣提交
type SubmitOrderRequest struct {
	UserID       int                 `json:"userId"`
	Items        []OrderItemRequest  `json:"items"`
	CustomerInfo CustomerInfoRequest `json:"customerInfo"`
	ShippingInfo ShippingInfoRequest `json:"shippingInfo"`
	PaymentInfo  PaymentInfoRequest  `json:"paymentInfo"`
	Totals       TotalsRequest       `json:"totals"`
}

type OrderConfirmationResponse struct {
	OrderID           string  `json:"orderId"`
	Status            string  `json:"status"`
	EstimatedDelivery string  `json:"estimatedDelivery"`
	Items             int     `json:"items"`
	Total             float64 `json:"total"`
}

func (r SubmitOrderRequest) ToOrderDetails() model.OrderDetails {
	items := make([]model.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, model.LineItem{
			Product:  item.Product.toModel(),
			Quantity: item.Quantity,
		})
	}

	return model.OrderDetails{
		CustomerInfo: model.CustomerInfo{
			FirstName: r.CustomerInfo.FirstName,
			LastName:  r.CustomerInfo.LastName,
			Email:     r.CustomerInfo.Email,
		},
		ShippingInfo: model.ShippingInfo{
			Address: r.ShippingInfo.Address,
			City:    r.ShippingInfo.City,
			ZipCode: r.ShippingInfo.ZipCode,
		},
		PaymentInfo: model.PaymentInfo{
			CardNumber: r.PaymentInfo.CardNumber,
			Expiry:     r.PaymentInfo.Expiry,
			CVV:        r.PaymentInfo.CVV,
		},
		Items: items,
		Totals: model.Totals{
			Subtotal: decimal.NewFromFloat(r.Totals.Subtotal),
			Tax:      decimal.NewFromFloat(r.Totals.Tax),
			Shipping: decimal.NewFromFloat(r.Totals.Shipping),
			Total:    decimal.NewFromFloat(r.Totals.Total),
		},
	}
}

func (r ProductRequest) toModel() model.Product {
	product := model.Product{
		ProductID:   r.ID,
		Name:        r.Name,
		Price:       decimal.NewFromFloat(r.Price),
		Image:       r.Image,
		Description: r.Description,
		Stock:       r.Stock,
		Category:    model.Category(r.Category),
	}
	if r.Discount != nil {
		product.Discount = &model.Discount{
			Type:     model.DiscountType(r.Discount.Type),
			Value:    decimal.NewFromFloat(r.Discount.Value),
			IsActive: r.Discount.IsActive,
		}
	}
	return product
}

func ToOrderConfirmationResponse(confirmation model.OrderConfirmation) OrderConfirmationResponse {
	return OrderConfirmationResponse{
		OrderID:           confirmation.OrderID,
		Status:            confirmation.Status,
		EstimatedDelivery: confirmation.EstimatedDelivery.UTC().Format(time.RFC3339),
		Items:             confirmation.ItemCount,
		Total:             confirmation.Total.InexactFloat64(),
	}
}
