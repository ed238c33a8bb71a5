package usecase

import (
	"context"

	"go.uber.org/zap"

	"candela/internal/domain"
	"candela/internal/errors"
)

type OrderReader interface {
	GetOrder(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderStatusWriter interface {
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// UpdateStatusUseCase moves an order through the status lifecycle. Only
// owners may change status; any known-status pair is a legal move.
type UpdateStatusUseCase struct {
	reader OrderReader
	writer OrderStatusWriter
	logger *zap.Logger
}

func NewUpdateStatusUseCase(reader OrderReader, writer OrderStatusWriter, logger *zap.Logger) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		reader: reader,
		writer: writer,
		logger: logger,
	}
}

func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, user *domain.User, orderID uint, status string) (*domain.Order, error) {
	if user == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !user.IsOwner() {
		return nil, errors.NewForbiddenError("only owners may change order status")
	}

	if !domain.IsKnownStatus(status) {
		return nil, errors.NewValidationError("invalid status", errors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of PENDING, PROCESSING, COMPLETED, CANCELLED",
		})
	}

	order, err := uc.reader.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(order.Status, status) {
		return nil, errors.NewConflictError("order status cannot be changed from " + order.Status)
	}

	if err := uc.writer.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}

	uc.logger.Info("order status updated",
		zap.Uint("orderId", orderID),
		zap.String("from", order.Status),
		zap.String("to", status),
		zap.String("actor", user.ID))

	order.Status = status
	return order, nil
}
