package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"candela/internal/domain"
	"candela/internal/errors"
)

// DuplicateOrderUseCase copies an existing order into a fresh PENDING one.
// Item snapshots are carried over untouched; nothing is re-fetched from the
// current catalog. A source without items duplicates to an empty order.
type DuplicateOrderUseCase struct {
	reader  OrderReader
	creator OrderCreator
	logger  *zap.Logger
}

func NewDuplicateOrderUseCase(reader OrderReader, creator OrderCreator, logger *zap.Logger) *DuplicateOrderUseCase {
	return &DuplicateOrderUseCase{
		reader:  reader,
		creator: creator,
		logger:  logger,
	}
}

func (uc *DuplicateOrderUseCase) Duplicate(ctx context.Context, user *domain.User, orderID uint) (*domain.Order, error) {
	if user == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !user.IsOwner() {
		return nil, errors.NewForbiddenError("only owners may duplicate orders")
	}

	source, err := uc.reader.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	dup := source.Duplicate(uuid.New().String(), time.Now().UTC())
	dup.UserID = user.ID

	created, err := uc.creator.CreateOrder(ctx, dup)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order duplicated",
		zap.Uint("sourceOrderId", orderID),
		zap.Uint("newOrderId", created.ID),
		zap.String("newOrderNumber", created.OrderNumber))

	return created, nil
}
