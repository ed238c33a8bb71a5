// Package pricing computes order and cart totals. All arithmetic is decimal;
// tax is rounded to cents before being added to the subtotal, so
// Total == Subtotal + TaxAmount holds exactly.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"candela/internal/errors"
)

// DefaultTaxRate is applied when no rate is configured.
var DefaultTaxRate = decimal.NewFromFloat(0.085)

type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// Calculate computes subtotal, tax, and grand total for a set of lines.
// The subtotal is the literal sum of unitPrice × quantity per line, so it is
// independent of line order. An empty line set yields zero totals. Negative
// prices or quantities are rejected before anything is accumulated.
func Calculate(lines []Line, taxRate decimal.Decimal) (Totals, error) {
	if err := validate(lines, taxRate); err != nil {
		return Totals{}, err
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(LineSubtotal(line.UnitPrice, line.Quantity))
	}

	taxAmount := subtotal.Mul(taxRate).Round(2)

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}, nil
}

// LineSubtotal is unitPrice × quantity rounded to cents.
func LineSubtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

func validate(lines []Line, taxRate decimal.Decimal) error {
	var details []errors.ValidationDetail

	if taxRate.IsNegative() {
		details = append(details, errors.ValidationDetail{
			Field:   "taxRate",
			Message: "tax rate must be non-negative",
		})
	}

	for idx, line := range lines {
		if line.UnitPrice.IsNegative() {
			details = append(details, errors.ValidationDetail{
				Field:   fmt.Sprintf("lines[%d].unitPrice", idx),
				Message: "unit price must be non-negative",
			})
		}
		if line.Quantity < 0 {
			details = append(details, errors.ValidationDetail{
				Field:   fmt.Sprintf("lines[%d].quantity", idx),
				Message: "quantity must be non-negative",
			})
		}
	}

	if len(details) > 0 {
		return errors.NewValidationError("invalid line items", details...)
	}

	return nil
}
