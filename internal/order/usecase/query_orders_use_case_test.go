package usecase

import (
	"context"
	"testing"

	"candela/internal/domain"
	apperrors "candela/internal/errors"
)

type mockOrderLister struct {
	ListOrdersFunc func(ctx context.Context, clientID *int, status *string) ([]domain.Order, error)
}

func (m *mockOrderLister) ListOrders(ctx context.Context, clientID *int, status *string) ([]domain.Order, error) {
	return m.ListOrdersFunc(ctx, clientID, status)
}

func TestGetOrder_ScopedToClient(t *testing.T) {
	reader := &mockOrderReader{
		GetOrderFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return &domain.Order{ID: id, ClientID: 99}, nil
		},
	}

	uc := NewQueryOrdersUseCase(reader, &mockOrderLister{})

	_, err := uc.GetOrder(context.Background(), clientUser(7), 10)

	if _, ok := apperrors.IsForbiddenError(err); !ok {
		t.Errorf("expected ForbiddenError, got %T", err)
	}
}

func TestGetOrder_OwnerSeesAnyClient(t *testing.T) {
	reader := &mockOrderReader{
		GetOrderFunc: func(ctx context.Context, id uint) (*domain.Order, error) {
			return &domain.Order{ID: id, ClientID: 99}, nil
		},
	}

	uc := NewQueryOrdersUseCase(reader, &mockOrderLister{})

	order, err := uc.GetOrder(context.Background(), ownerUser(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.ClientID != 99 {
		t.Errorf("expected order for client 99, got %d", order.ClientID)
	}
}

func TestListOrders_ClientPinnedToOwnClient(t *testing.T) {
	var gotClientID *int
	lister := &mockOrderLister{
		ListOrdersFunc: func(ctx context.Context, clientID *int, status *string) ([]domain.Order, error) {
			gotClientID = clientID
			return nil, nil
		},
	}

	uc := NewQueryOrdersUseCase(&mockOrderReader{}, lister)

	otherClient := 99
	_, err := uc.ListOrders(context.Background(), clientUser(7), &otherClient, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotClientID == nil || *gotClientID != 7 {
		t.Errorf("expected filter pinned to client 7, got %v", gotClientID)
	}
}

func TestListOrders_OwnerKeepsFilter(t *testing.T) {
	var gotClientID *int
	lister := &mockOrderLister{
		ListOrdersFunc: func(ctx context.Context, clientID *int, status *string) ([]domain.Order, error) {
			gotClientID = clientID
			return nil, nil
		},
	}

	uc := NewQueryOrdersUseCase(&mockOrderReader{}, lister)

	filter := 99
	_, err := uc.ListOrders(context.Background(), ownerUser(), &filter, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotClientID == nil || *gotClientID != 99 {
		t.Errorf("expected owner filter preserved, got %v", gotClientID)
	}
}

func TestListOrders_InvalidStatusFilter(t *testing.T) {
	uc := NewQueryOrdersUseCase(&mockOrderReader{}, &mockOrderLister{})

	bad := "SHIPPED"
	_, err := uc.ListOrders(context.Background(), ownerUser(), nil, &bad)

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}
