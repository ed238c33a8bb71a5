package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"candela/internal/domain"
	apperrors "candela/internal/errors"
)

func sourceOrder() *domain.Order {
	return &domain.Order{
		ID:          10,
		OrderNumber: "a1b2",
		ClientID:    7,
		UserID:      "original-user",
		Status:      domain.OrderStatusCompleted,
		TaxRate:     decimal.NewFromFloat(0.085),
		Subtotal:    decimal.NewFromFloat(25.50),
		TaxAmount:   decimal.NewFromFloat(2.17),
		Total:       decimal.NewFromFloat(27.67),
		Items: []domain.OrderItem{
			{
				ID:        101,
				OrderID:   10,
				ProductID: 11,
				ItemCode:  "LED-A19-60",
				UnitPrice: decimal.NewFromFloat(12.75),
				Quantity:  2,
				Subtotal:  decimal.NewFromFloat(25.50),
			},
		},
		CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestDuplicate_OwnerOnly(t *testing.T) {
	uc := NewDuplicateOrderUseCase(&mockOrderReader{}, &mockOrderCreator{}, zap.NewNop())

	_, err := uc.Duplicate(context.Background(), clientUser(7), 10)

	if _, ok := apperrors.IsForbiddenError(err); !ok {
		t.Errorf("expected ForbiddenError, got %T", err)
	}
}

func TestDuplicate_SourceNotFound(t *testing.T) {
	reader := &mockOrderReader{
		GetOrderFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}

	uc := NewDuplicateOrderUseCase(reader, &mockOrderCreator{}, zap.NewNop())

	_, err := uc.Duplicate(context.Background(), ownerUser(), 10)

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestDuplicate_Success(t *testing.T) {
	reader := &mockOrderReader{
		GetOrderFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return sourceOrder(), nil
		},
	}

	var captured *domain.Order
	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			captured = order
			order.ID = 20
			return order, nil
		},
	}

	uc := NewDuplicateOrderUseCase(reader, creator, zap.NewNop())

	created, err := uc.Duplicate(context.Background(), ownerUser(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID != 20 {
		t.Errorf("expected new order id 20, got %d", created.ID)
	}
	if captured.OrderNumber == "a1b2" || captured.OrderNumber == "" {
		t.Errorf("expected a fresh order number, got %q", captured.OrderNumber)
	}
	if captured.Status != domain.OrderStatusPending {
		t.Errorf("expected status PENDING, got %s", captured.Status)
	}
	if captured.UserID != "owner-1" {
		t.Errorf("expected duplicating actor as userId, got %s", captured.UserID)
	}
	if captured.ClientID != 7 {
		t.Errorf("expected clientId carried over, got %d", captured.ClientID)
	}
	if len(captured.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(captured.Items))
	}
	if captured.Items[0].ID != 0 || captured.Items[0].OrderID != 0 {
		t.Errorf("expected item ids reset, got id=%d orderId=%d",
			captured.Items[0].ID, captured.Items[0].OrderID)
	}
	if !captured.Items[0].UnitPrice.Equal(decimal.NewFromFloat(12.75)) {
		t.Errorf("expected snapshot price carried over, got %s", captured.Items[0].UnitPrice)
	}
	if !captured.Total.Equal(decimal.NewFromFloat(27.67)) {
		t.Errorf("expected totals carried over, got %s", captured.Total)
	}
}

func TestDuplicate_EmptySource(t *testing.T) {
	reader := &mockOrderReader{
		GetOrderFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			src := sourceOrder()
			src.Items = nil
			return src, nil
		},
	}

	var captured *domain.Order
	creator := &mockOrderCreator{
		CreateOrderFunc: func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
			captured = order
			return order, nil
		},
	}

	uc := NewDuplicateOrderUseCase(reader, creator, zap.NewNop())

	_, err := uc.Duplicate(context.Background(), ownerUser(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(captured.Items) != 0 {
		t.Errorf("expected empty duplicate, got %d items", len(captured.Items))
	}
}
