package domain

import "github.com/shopspring/decimal"

// OrderItem is a denormalized snapshot taken at submission time. Later
// catalog changes never touch it.
type OrderItem struct {
	ID          uint
	OrderID     uint
	Location    string
	ProductID   int
	ItemCode    string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
}

// ComputedSubtotal is unitPrice × quantity rounded to cents. Stored Subtotal
// must always equal it.
func (i OrderItem) ComputedSubtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}
