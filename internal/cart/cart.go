// Package cart holds the transient, session-local cart a client user builds
// before submitting an order. Nothing here touches persistence; a cart lives
// only in its session store until it is submitted or abandoned.
package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"candela/internal/domain"
	"candela/internal/errors"
	"candela/internal/pricing"
)

type Line struct {
	ProductID   int
	ItemCode    string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
}

type Cart struct {
	ID        string
	ClientID  int
	Lines     []Line
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
	TaxRate   decimal.Decimal
	UpdatedAt time.Time
}

func New(id string, clientID int, taxRate decimal.Decimal) *Cart {
	return &Cart{
		ID:        id,
		ClientID:  clientID,
		TaxRate:   taxRate,
		Subtotal:  decimal.Zero,
		TaxAmount: decimal.Zero,
		Total:     decimal.Zero,
	}
}

// Add puts a product in the cart at the given effective price. Adding a
// product already present increments its quantity by one; the price captured
// on first add wins.
func (c *Cart) Add(product domain.Product, effectivePrice decimal.Decimal) error {
	if effectivePrice.IsNegative() {
		return errors.NewValidationError("invalid price", errors.ValidationDetail{
			Field:   "unitPrice",
			Message: "unit price must be non-negative",
		})
	}

	for i := range c.Lines {
		if c.Lines[i].ProductID == product.ID {
			c.Lines[i].Quantity++
			return c.recompute()
		}
	}

	c.Lines = append(c.Lines, Line{
		ProductID:   product.ID,
		ItemCode:    product.SKU,
		Description: product.Name,
		UnitPrice:   effectivePrice,
		Quantity:    1,
	})
	return c.recompute()
}

// Increment raises a line's quantity by one.
func (c *Cart) Increment(productID int) error {
	line := c.find(productID)
	if line == nil {
		return errors.NewNotFoundError("product not in cart")
	}
	line.Quantity++
	return c.recompute()
}

// Decrement lowers a line's quantity by one, with a floor of 1. Decrementing
// a quantity-1 line is a no-op; removal is a separate operation.
func (c *Cart) Decrement(productID int) error {
	line := c.find(productID)
	if line == nil {
		return errors.NewNotFoundError("product not in cart")
	}
	if line.Quantity > 1 {
		line.Quantity--
	}
	return c.recompute()
}

// Remove deletes a line entirely regardless of quantity.
func (c *Cart) Remove(productID int) error {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return c.recompute()
		}
	}
	return errors.NewNotFoundError("product not in cart")
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) find(productID int) *Line {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

// recompute refreshes every line subtotal and the cart totals. Runs after
// each mutation so the cart is always internally consistent.
func (c *Cart) recompute() error {
	lines := make([]pricing.Line, len(c.Lines))
	for i := range c.Lines {
		c.Lines[i].Subtotal = pricing.LineSubtotal(c.Lines[i].UnitPrice, c.Lines[i].Quantity)
		lines[i] = pricing.Line{UnitPrice: c.Lines[i].UnitPrice, Quantity: c.Lines[i].Quantity}
	}

	totals, err := pricing.Calculate(lines, c.TaxRate)
	if err != nil {
		return err
	}

	c.Subtotal = totals.Subtotal
	c.TaxAmount = totals.TaxAmount
	c.Total = totals.Total
	c.UpdatedAt = time.Now().UTC()
	return nil
}
