package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             int
	SKU            string
	Name           string
	Description    string
	Category       string
	Subcategory    string
	BasePrice      decimal.Decimal
	UnitsPerCase   int
	CasePrice      decimal.Decimal
	SpecAttributes SpecAttributes
	ImageURL       string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

const (
	ProductStatusAvailable = "AVAILABLE"
	ProductStatusDisabled  = "DISABLED"
)

func (p Product) IsAvailable() bool {
	return p.Status == ProductStatusAvailable
}
