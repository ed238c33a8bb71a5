package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderItem_ComputedSubtotal(t *testing.T) {
	item := OrderItem{
		UnitPrice: decimal.NewFromFloat(29.99),
		Quantity:  3,
	}

	assert.True(t, item.ComputedSubtotal().Equal(decimal.NewFromFloat(89.97)))
}

func TestOrderItem_ComputedSubtotal_RoundsToCents(t *testing.T) {
	item := OrderItem{
		UnitPrice: decimal.NewFromFloat(0.333),
		Quantity:  3,
	}

	assert.Equal(t, "1.00", item.ComputedSubtotal().StringFixed(2))
}

func TestOrderItem_ComputedSubtotal_ZeroQuantity(t *testing.T) {
	item := OrderItem{
		UnitPrice: decimal.NewFromFloat(10.00),
		Quantity:  0,
	}

	assert.True(t, item.ComputedSubtotal().IsZero())
}
