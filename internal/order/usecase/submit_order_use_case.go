package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"candela/internal/cart"
	"candela/internal/domain"
	"candela/internal/errors"
)

type CartStore interface {
	Find(id string) (*cart.Cart, bool)
	Destroy(id string)
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// SubmitOrderUseCase turns a session cart into a persisted PENDING order.
// Line prices and descriptions are frozen into item snapshots; the cart is
// destroyed once the order is stored.
type SubmitOrderUseCase struct {
	carts  CartStore
	orders OrderCreator
	logger *zap.Logger
}

func NewSubmitOrderUseCase(carts CartStore, orders OrderCreator, logger *zap.Logger) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{
		carts:  carts,
		orders: orders,
		logger: logger,
	}
}

func (uc *SubmitOrderUseCase) Submit(ctx context.Context, user *domain.User, cartID, location string) (*domain.Order, error) {
	if user == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	c, ok := uc.carts.Find(cartID)
	if !ok {
		return nil, errors.NewNotFoundError("cart not found")
	}

	if !user.CanAccessClient(c.ClientID) {
		return nil, errors.NewForbiddenError("cart belongs to another client")
	}

	if c.IsEmpty() {
		return nil, errors.NewValidationError("cart is empty", errors.ValidationDetail{
			Field:   "cart",
			Message: "cannot submit an empty cart",
		})
	}

	now := time.Now().UTC()
	order := &domain.Order{
		OrderNumber: uuid.New().String(),
		ClientID:    c.ClientID,
		UserID:      user.ID,
		Location:    location,
		Status:      domain.OrderStatusPending,
		TaxRate:     c.TaxRate,
		Subtotal:    c.Subtotal,
		TaxAmount:   c.TaxAmount,
		Total:       c.Total,
		Items:       make([]domain.OrderItem, len(c.Lines)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for i, line := range c.Lines {
		order.Items[i] = domain.OrderItem{
			Location:    location,
			ProductID:   line.ProductID,
			ItemCode:    line.ItemCode,
			Description: line.Description,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal,
		}
	}

	created, err := uc.orders.CreateOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	uc.carts.Destroy(cartID)

	uc.logger.Info("cart submitted",
		zap.String("cartId", cartID),
		zap.Uint("orderId", created.ID),
		zap.String("orderNumber", created.OrderNumber))

	return created, nil
}
