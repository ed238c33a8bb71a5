package dto

import "github.com/shopspring/decimal"

type AddCartItemRequest struct {
	ProductID int `json:"productId"`
}

type CartResponse struct {
	CartID    string          `json:"cartId"`
	ClientID  int             `json:"clientId"`
	Lines     []CartLineDTO   `json:"lines"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Total     decimal.Decimal `json:"total"`
}

type CartLineDTO struct {
	ProductID   int             `json:"productId"`
	ItemCode    string          `json:"itemCode"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
