package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"candela/internal/domain"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	List(ctx context.Context, clientID *int, status *string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

// OrderService persists orders. The header and its item snapshots go in a
// single transaction: either the whole order lands or none of it does.
type OrderService struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
	txTimeout     time.Duration
}

func NewOrderService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
		txTimeout:     5 * time.Second,
	}
}

// CreateOrder inserts the order header plus all item snapshots and returns
// the stored order with ids filled in.
func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Rollback is a no-op once the transaction committed.
	defer tx.Rollback()

	orderID, err := s.orderRepo.Insert(txCtx, tx, order)
	if err != nil {
		s.logger.Error("failed to insert order", zap.String("orderNumber", order.OrderNumber), zap.Error(err))
		return nil, err
	}
	order.ID = orderID

	for i := range order.Items {
		order.Items[i].OrderID = orderID
		itemID, err := s.orderItemRepo.Insert(txCtx, tx, order.Items[i])
		if err != nil {
			s.logger.Error("failed to insert order item",
				zap.Uint("orderId", orderID),
				zap.Int("productId", order.Items[i].ProductID),
				zap.Error(err))
			return nil, err
		}
		order.Items[i].ID = itemID
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit order transaction", zap.Uint("orderId", orderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint("orderId", orderID),
		zap.String("orderNumber", order.OrderNumber),
		zap.Int("clientId", order.ClientID),
		zap.Int("itemCount", len(order.Items)),
		zap.String("total", order.Total.StringFixed(2)))

	return order, nil
}

// GetOrder loads an order with its items.
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.orderItemRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, clientID *int, status *string) ([]domain.Order, error) {
	return s.orderRepo.List(ctx, clientID, status)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) error {
	return s.orderRepo.UpdateStatus(ctx, id, status)
}
