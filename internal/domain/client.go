package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is an organizational tenant. It owns users, product assignments,
// and the orders placed on its behalf.
type Client struct {
	ID           int
	Name         string
	ContactEmail string
	Phone        *string
	Address      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductAssignment grants a client visibility of a product, optionally at a
// client-specific price.
type ProductAssignment struct {
	ID            int
	ClientID      int
	ProductID     int
	PriceOverride *decimal.Decimal
	CreatedAt     time.Time
}

// EffectivePrice resolves the price a client pays for a product: the
// client-specific override when present, else the base price.
func (a ProductAssignment) EffectivePrice(basePrice decimal.Decimal) decimal.Decimal {
	if a.PriceOverride != nil {
		return *a.PriceOverride
	}
	return basePrice
}

// ClientProduct is a catalog product as assigned to one client, carrying the
// optional client-specific price.
type ClientProduct struct {
	Product       Product
	PriceOverride *decimal.Decimal
}

func (cp ClientProduct) EffectivePrice() decimal.Decimal {
	if cp.PriceOverride != nil {
		return *cp.PriceOverride
	}
	return cp.Product.BasePrice
}

func (cp ClientProduct) HasOverride() bool {
	return cp.PriceOverride != nil
}
