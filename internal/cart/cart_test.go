package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"candela/internal/domain"
	"candela/internal/errors"
)

var taxRate = decimal.NewFromFloat(0.085)

func ledPanel() domain.Product {
	return domain.Product{
		ID:        5,
		SKU:       "LED-40W",
		Name:      "LED panel 40W",
		BasePrice: decimal.NewFromFloat(10.00),
		Status:    domain.ProductStatusAvailable,
	}
}

func downlight() domain.Product {
	return domain.Product{
		ID:        6,
		SKU:       "DL-6IN",
		Name:      "Recessed downlight 6in",
		BasePrice: decimal.NewFromFloat(5.50),
		Status:    domain.ProductStatusAvailable,
	}
}

func TestCart_AddNewProduct(t *testing.T) {
	c := New("cart-1", 1, taxRate)

	err := c.Add(ledPanel(), decimal.NewFromFloat(10.00))
	assert.NoError(t, err)

	assert.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.Equal(t, "LED-40W", c.Lines[0].ItemCode)
	assert.Equal(t, "10.00", c.Lines[0].Subtotal.StringFixed(2))
	assert.Equal(t, "10.00", c.Subtotal.StringFixed(2))
}

func TestCart_AddExistingProductIncrementsQuantity(t *testing.T) {
	c := New("cart-1", 1, taxRate)

	assert.NoError(t, c.Add(ledPanel(), decimal.NewFromFloat(10.00)))
	assert.NoError(t, c.Add(ledPanel(), decimal.NewFromFloat(10.00)))

	assert.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, "20.00", c.Lines[0].Subtotal.StringFixed(2))
}

func TestCart_AddUsesEffectivePrice(t *testing.T) {
	c := New("cart-1", 1, taxRate)

	// client-specific override, not the base price
	assert.NoError(t, c.Add(ledPanel(), decimal.NewFromFloat(8.75)))

	assert.Equal(t, "8.75", c.Lines[0].UnitPrice.StringFixed(2))
}

func TestCart_AddNegativePriceRejected(t *testing.T) {
	c := New("cart-1", 1, taxRate)

	err := c.Add(ledPanel(), decimal.NewFromFloat(-0.01))

	_, ok := errors.IsValidationError(err)
	assert.True(t, ok)
	assert.Empty(t, c.Lines)
}

func TestCart_TotalsMatchSpecExample(t *testing.T) {
	c := New("cart-1", 1, taxRate)

	assert.NoError(t, c.Add(ledPanel(), decimal.NewFromFloat(10.00)))
	assert.NoError(t, c.Increment(5))
	assert.NoError(t, c.Add(downlight(), decimal.NewFromFloat(5.50)))

	assert.Equal(t, "25.50", c.Subtotal.StringFixed(2))
	assert.Equal(t, "2.17", c.TaxAmount.StringFixed(2))
	assert.Equal(t, "27.67", c.Total.StringFixed(2))
}

func TestCart_DecrementFloorsAtOne(t *testing.T) {
	c := New("cart-1", 1, taxRate)

	assert.NoError(t, c.Add(ledPanel(), decimal.NewFromFloat(10.00)))
	assert.NoError(t, c.Decrement(5))
	assert.NoError(t, c.Decrement(5))

	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.Equal(t, "10.00", c.Subtotal.StringFixed(2))
}

func TestCart_DecrementAboveOne(t *testing.T) {
	c := New("cart-1", 1, taxRate)

	assert.NoError(t, c.Add(ledPanel(), decimal.NewFromFloat(10.00)))
	assert.NoError(t, c.Increment(5))
	assert.NoError(t, c.Increment(5))
	assert.NoError(t, c.Decrement(5))

	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestCart_RemoveDeletesLineRegardlessOfQuantity(t *testing.T) {
	c := New("cart-1", 1, taxRate)

	assert.NoError(t, c.Add(ledPanel(), decimal.NewFromFloat(10.00)))
	assert.NoError(t, c.Increment(5))
	assert.NoError(t, c.Increment(5))

	assert.NoError(t, c.Remove(5))

	assert.Empty(t, c.Lines)
	assert.True(t, c.IsEmpty())
}

func TestCart_RemoveLastItemZeroesTotals(t *testing.T) {
	c := New("cart-1", 1, taxRate)

	assert.NoError(t, c.Add(ledPanel(), decimal.NewFromFloat(10.00)))
	assert.NoError(t, c.Remove(5))

	assert.True(t, c.Subtotal.IsZero())
	assert.True(t, c.TaxAmount.IsZero())
	assert.True(t, c.Total.IsZero())
}

func TestCart_OperationsOnMissingProduct(t *testing.T) {
	c := New("cart-1", 1, taxRate)

	_, ok := errors.IsNotFoundError(c.Increment(99))
	assert.True(t, ok)
	_, ok = errors.IsNotFoundError(c.Decrement(99))
	assert.True(t, ok)
	_, ok = errors.IsNotFoundError(c.Remove(99))
	assert.True(t, ok)
}

func TestStore_GetCreatesOnFirstUse(t *testing.T) {
	store := NewStore(taxRate)

	c := store.Get("cart-a", 3)
	assert.NotNil(t, c)
	assert.Equal(t, 3, c.ClientID)

	again := store.Get("cart-a", 3)
	assert.Same(t, c, again)
}

func TestStore_DestroyRemovesCart(t *testing.T) {
	store := NewStore(taxRate)

	store.Get("cart-a", 3)
	store.Destroy("cart-a")

	_, ok := store.Find("cart-a")
	assert.False(t, ok)
}
