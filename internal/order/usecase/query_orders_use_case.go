package usecase

import (
	"context"

	"candela/internal/domain"
	"candela/internal/errors"
)

type OrderLister interface {
	ListOrders(ctx context.Context, clientID *int, status *string) ([]domain.Order, error)
}

// QueryOrdersUseCase reads orders with tenant scoping: client users only
// ever see their own client's orders, owners see everything.
type QueryOrdersUseCase struct {
	reader OrderReader
	lister OrderLister
}

func NewQueryOrdersUseCase(reader OrderReader, lister OrderLister) *QueryOrdersUseCase {
	return &QueryOrdersUseCase{
		reader: reader,
		lister: lister,
	}
}

func (uc *QueryOrdersUseCase) GetOrder(ctx context.Context, user *domain.User, orderID uint) (*domain.Order, error) {
	if user == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	order, err := uc.reader.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !user.CanAccessClient(order.ClientID) {
		return nil, errors.NewForbiddenError("order belongs to another client")
	}

	return order, nil
}

func (uc *QueryOrdersUseCase) ListOrders(ctx context.Context, user *domain.User, clientID *int, status *string) ([]domain.Order, error) {
	if user == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	if status != nil && !domain.IsKnownStatus(*status) {
		return nil, errors.NewValidationError("invalid status filter", errors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of PENDING, PROCESSING, COMPLETED, CANCELLED",
		})
	}

	// Client users are pinned to their own client regardless of the filter.
	if !user.IsOwner() {
		if user.ClientID == nil {
			return nil, errors.NewForbiddenError("user has no client")
		}
		clientID = user.ClientID
	}

	return uc.lister.ListOrders(ctx, clientID, status)
}
