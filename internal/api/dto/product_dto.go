package dto

import (
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

// wire格式沿用mock server: 金額一律輸出number
type DiscountResponse struct {
	Type     string  `json:"type"`
	Value    float64 `json:"value"`
	IsActive bool    `json:"isActive"`
}

type ProductResponse struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	Price        float64           `json:"price"`
	Image        string            `json:"image"`
	Description  string            `json:"description"`
	Stock        int               `json:"stock"`
	Category     string            `json:"category"`
	Discount     *DiscountResponse `json:"discount,omitempty"`
	DisplayPrice float64           `json:"displayPrice"`
	StockStatus  string            `json:"stockStatus"`
}

type StockCheckResponse struct {
	Available bool `json:"available"`
	Stock     int  `json:"stock"`
}

type PriceRangeResponse struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func ToProductResponse(p model.Product) ProductResponse {
	resp := ProductResponse{
		ID:           p.ProductID,
		Name:         p.Name,
		Price:        p.Price.InexactFloat64(),
		Image:        p.Image,
		Description:  p.Description,
		Stock:        p.Stock,
		Category:     string(p.Category),
		DisplayPrice: p.DisplayPrice().InexactFloat64(),
		StockStatus:  string(p.StockStatus()),
	}
	if p.Discount != nil {
		resp.Discount = &DiscountResponse{
			Type:     string(p.Discount.Type),
			Value:    p.Discount.Value.InexactFloat64(),
			IsActive: p.Discount.IsActive,
		}
	}
	return resp
}

func ToProductResponses(products []model.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, ToProductResponse(p))
	}
	return responses
}
