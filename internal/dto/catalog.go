package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"candela/internal/domain"
)

type CreateProductRequest struct {
	SKU            string                `json:"sku"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Category       string                `json:"category"`
	Subcategory    string                `json:"subcategory"`
	BasePrice      float64               `json:"basePrice"`
	UnitsPerCase   int                   `json:"unitsPerCase"`
	CasePrice      float64               `json:"casePrice"`
	SpecAttributes domain.SpecAttributes `json:"specAttributes"`
	ImageURL       string                `json:"imageUrl"`
}

type UpdateProductRequest struct {
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Category       string                `json:"category"`
	Subcategory    string                `json:"subcategory"`
	BasePrice      float64               `json:"basePrice"`
	UnitsPerCase   int                   `json:"unitsPerCase"`
	CasePrice      float64               `json:"casePrice"`
	SpecAttributes domain.SpecAttributes `json:"specAttributes"`
	ImageURL       string                `json:"imageUrl"`
	Status         string                `json:"status"`
}

type SearchProductsRequest struct {
	ClientID   int   `json:"clientId"`
	ProductIDs []int `json:"productIds"`
}

type SearchProductsResponse struct {
	Products []ClientProductDTO `json:"products"`
	NotFound []int              `json:"notFound"`
}

type ClientProductsResponse struct {
	Products []ClientProductDTO `json:"products"`
}

// ClientProductDTO is a catalog product as one client sees it: the effective
// price already has any client-specific override applied.
type ClientProductDTO struct {
	ID             int                   `json:"id"`
	SKU            string                `json:"sku"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Category       string                `json:"category"`
	Subcategory    string                `json:"subcategory"`
	BasePrice      decimal.Decimal       `json:"basePrice"`
	EffectivePrice decimal.Decimal       `json:"effectivePrice"`
	HasOverride    bool                  `json:"hasOverride"`
	UnitsPerCase   int                   `json:"unitsPerCase"`
	CasePrice      decimal.Decimal       `json:"casePrice"`
	SpecAttributes domain.SpecAttributes `json:"specAttributes"`
	ImageURL       string                `json:"imageUrl"`
}

type ProductResponse struct {
	ID             int                   `json:"id"`
	SKU            string                `json:"sku"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Category       string                `json:"category"`
	Subcategory    string                `json:"subcategory"`
	BasePrice      decimal.Decimal       `json:"basePrice"`
	UnitsPerCase   int                   `json:"unitsPerCase"`
	CasePrice      decimal.Decimal       `json:"casePrice"`
	SpecAttributes domain.SpecAttributes `json:"specAttributes"`
	ImageURL       string                `json:"imageUrl"`
	Status         string                `json:"status"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

type AssignProductRequest struct {
	ProductID     int      `json:"productId"`
	PriceOverride *float64 `json:"priceOverride"`
}
