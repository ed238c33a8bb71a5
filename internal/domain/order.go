package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint
	OrderNumber string
	ClientID    int
	UserID      string
	Location    string
	Status      string
	TaxRate     decimal.Decimal
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	Total       decimal.Decimal
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	OrderStatusPending    = "PENDING"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusCompleted  = "COMPLETED"
	OrderStatusCancelled  = "CANCELLED"
)

var knownStatuses = map[string]struct{}{
	OrderStatusPending:    {},
	OrderStatusProcessing: {},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

func IsKnownStatus(status string) bool {
	_, ok := knownStatuses[status]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
// Every pair of known statuses is permitted, including moving a COMPLETED
// order back to PENDING; only unknown codes are rejected.
func CanTransition(from, to string) bool {
	return IsKnownStatus(from) && IsKnownStatus(to)
}

// Display labels kept exactly as the billing side expects them.
var statusLabels = map[string]string{
	OrderStatusPending:    "In Arrears",
	OrderStatusProcessing: "In Process",
	OrderStatusCompleted:  "Invoiced",
	OrderStatusCancelled:  "Cancelled",
}

// StatusLabel returns the display label for a status code. Unknown codes
// fall back to the raw code.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// Duplicate builds a fresh PENDING order from this one. Item snapshots are
// deep-copied as-is; prices and descriptions are not re-resolved from the
// current catalog. A source with zero items yields an empty order.
func (o *Order) Duplicate(orderNumber string, now time.Time) *Order {
	items := make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItem{
			Location:    item.Location,
			ProductID:   item.ProductID,
			ItemCode:    item.ItemCode,
			Description: item.Description,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		}
	}

	return &Order{
		OrderNumber: orderNumber,
		ClientID:    o.ClientID,
		UserID:      o.UserID,
		Location:    o.Location,
		Status:      OrderStatusPending,
		TaxRate:     o.TaxRate,
		Subtotal:    o.Subtotal,
		TaxAmount:   o.TaxAmount,
		Total:       o.Total,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
