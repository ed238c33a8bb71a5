package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubmitOrderRequest struct {
	CartID   string `json:"cartId"`
	Location string `json:"location"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID          uint            `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	ClientID    int             `json:"clientId"`
	UserID      string          `json:"userId"`
	Location    string          `json:"location"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"statusLabel"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Total       decimal.Decimal `json:"total"`
	Items       []OrderItemDTO  `json:"items"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type OrderItemDTO struct {
	ID          uint            `json:"id"`
	Location    string          `json:"location"`
	ProductID   int             `json:"productId"`
	ItemCode    string          `json:"itemCode"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderListResponse struct {
	Orders []OrderSummaryDTO `json:"orders"`
}

type OrderSummaryDTO struct {
	ID          uint            `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	ClientID    int             `json:"clientId"`
	Location    string          `json:"location"`
	Status      string          `json:"status"`
	StatusLabel string          `json:"statusLabel"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"createdAt"`
}
