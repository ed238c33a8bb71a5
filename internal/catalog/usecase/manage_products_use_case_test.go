package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"candela/internal/domain"
	"candela/internal/dto"
	apperrors "candela/internal/errors"
)

// Mock implementations

type mockProductsWriter struct {
	InsertFunc   func(ctx context.Context, p *domain.Product) (int, error)
	UpdateFunc   func(ctx context.Context, p *domain.Product) error
	FindByIDFunc func(ctx context.Context, id int) (*domain.Product, error)
}

func (m *mockProductsWriter) Insert(ctx context.Context, p *domain.Product) (int, error) {
	return m.InsertFunc(ctx, p)
}

func (m *mockProductsWriter) Update(ctx context.Context, p *domain.Product) error {
	return m.UpdateFunc(ctx, p)
}

func (m *mockProductsWriter) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockAssignmentsWriter struct {
	UpsertFunc func(ctx context.Context, a domain.ProductAssignment) error
	DeleteFunc func(ctx context.Context, clientID, productID int) error
}

func (m *mockAssignmentsWriter) Upsert(ctx context.Context, a domain.ProductAssignment) error {
	return m.UpsertFunc(ctx, a)
}

func (m *mockAssignmentsWriter) Delete(ctx context.Context, clientID, productID int) error {
	return m.DeleteFunc(ctx, clientID, productID)
}

func ownerUser() *domain.User {
	return &domain.User{ID: "owner-1", Role: domain.RoleOwner}
}

func clientUser(clientID int) *domain.User {
	return &domain.User{ID: "u-1", Role: domain.RoleClient, ClientID: &clientID}
}

func validCreateRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		SKU:          "LED-A19-60",
		Name:         "A19 LED Bulb 60W Equivalent",
		Category:     "Bulbs",
		Subcategory:  "LED",
		BasePrice:    12.75,
		UnitsPerCase: 24,
		CasePrice:    280.00,
	}
}

// Tests

func TestCreateProduct_OwnerOnly(t *testing.T) {
	uc := NewManageProductsUseCase(&mockProductsWriter{}, &mockAssignmentsWriter{}, zap.NewNop())

	_, err := uc.CreateProduct(context.Background(), clientUser(7), validCreateRequest())

	if _, ok := apperrors.IsForbiddenError(err); !ok {
		t.Errorf("expected ForbiddenError, got %T", err)
	}
}

func TestCreateProduct_MissingFields(t *testing.T) {
	uc := NewManageProductsUseCase(&mockProductsWriter{}, &mockAssignmentsWriter{}, zap.NewNop())

	req := validCreateRequest()
	req.SKU = ""
	req.Name = ""

	_, err := uc.CreateProduct(context.Background(), ownerUser(), req)

	verr, ok := apperrors.IsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Details) != 2 {
		t.Errorf("expected 2 validation details, got %d", len(verr.Details))
	}
}

func TestCreateProduct_RejectsNaNPrice(t *testing.T) {
	uc := NewManageProductsUseCase(&mockProductsWriter{}, &mockAssignmentsWriter{}, zap.NewNop())

	req := validCreateRequest()
	req.BasePrice = math.NaN()

	_, err := uc.CreateProduct(context.Background(), ownerUser(), req)

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreateProduct_RejectsNegativePrice(t *testing.T) {
	uc := NewManageProductsUseCase(&mockProductsWriter{}, &mockAssignmentsWriter{}, zap.NewNop())

	req := validCreateRequest()
	req.CasePrice = -1

	_, err := uc.CreateProduct(context.Background(), ownerUser(), req)

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestCreateProduct_Success(t *testing.T) {
	var captured *domain.Product
	products := &mockProductsWriter{
		InsertFunc: func(ctx context.Context, p *domain.Product) (int, error) {
			captured = p
			return 11, nil
		},
	}

	uc := NewManageProductsUseCase(products, &mockAssignmentsWriter{}, zap.NewNop())

	created, err := uc.CreateProduct(context.Background(), ownerUser(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID != 11 {
		t.Errorf("expected product id 11, got %d", created.ID)
	}
	if captured.Status != domain.ProductStatusAvailable {
		t.Errorf("expected new product AVAILABLE, got %s", captured.Status)
	}
	if !captured.BasePrice.Equal(decimal.NewFromFloat(12.75)) {
		t.Errorf("expected base price 12.75, got %s", captured.BasePrice)
	}
}

func TestUpdateProduct_InvalidStatus(t *testing.T) {
	uc := NewManageProductsUseCase(&mockProductsWriter{}, &mockAssignmentsWriter{}, zap.NewNop())

	req := dto.UpdateProductRequest{
		Name:      "A19 LED Bulb",
		BasePrice: 12.75,
		Status:    "ARCHIVED",
	}

	_, err := uc.UpdateProduct(context.Background(), ownerUser(), 11, req)

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestUpdateProduct_NotFound(t *testing.T) {
	products := &mockProductsWriter{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Product, error) {
			return nil, apperrors.NewNotFoundError("product not found")
		},
	}

	uc := NewManageProductsUseCase(products, &mockAssignmentsWriter{}, zap.NewNop())

	req := dto.UpdateProductRequest{
		Name:      "A19 LED Bulb",
		BasePrice: 12.75,
		Status:    domain.ProductStatusDisabled,
	}

	_, err := uc.UpdateProduct(context.Background(), ownerUser(), 11, req)

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestAssignProduct_WithOverride(t *testing.T) {
	products := &mockProductsWriter{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Product, error) {
			return &domain.Product{ID: id, Status: domain.ProductStatusAvailable}, nil
		},
	}

	var captured domain.ProductAssignment
	assignments := &mockAssignmentsWriter{
		UpsertFunc: func(ctx context.Context, a domain.ProductAssignment) error {
			captured = a
			return nil
		},
	}

	uc := NewManageProductsUseCase(products, assignments, zap.NewNop())

	override := 10.99
	err := uc.AssignProduct(context.Background(), ownerUser(), 7, dto.AssignProductRequest{
		ProductID:     11,
		PriceOverride: &override,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.ClientID != 7 || captured.ProductID != 11 {
		t.Errorf("expected assignment (7, 11), got (%d, %d)", captured.ClientID, captured.ProductID)
	}
	if captured.PriceOverride == nil || !captured.PriceOverride.Equal(decimal.NewFromFloat(10.99)) {
		t.Errorf("expected override 10.99, got %v", captured.PriceOverride)
	}
}

func TestAssignProduct_UnknownProduct(t *testing.T) {
	products := &mockProductsWriter{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.Product, error) {
			return nil, apperrors.NewNotFoundError("product not found")
		},
	}

	uc := NewManageProductsUseCase(products, &mockAssignmentsWriter{}, zap.NewNop())

	err := uc.AssignProduct(context.Background(), ownerUser(), 7, dto.AssignProductRequest{ProductID: 11})

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}

func TestAssignProduct_RejectsNaNOverride(t *testing.T) {
	uc := NewManageProductsUseCase(&mockProductsWriter{}, &mockAssignmentsWriter{}, zap.NewNop())

	override := math.NaN()
	err := uc.AssignProduct(context.Background(), ownerUser(), 7, dto.AssignProductRequest{
		ProductID:     11,
		PriceOverride: &override,
	})

	if _, ok := apperrors.IsValidationError(err); !ok {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestUnassignProduct_NotAssigned(t *testing.T) {
	assignments := &mockAssignmentsWriter{
		DeleteFunc: func(ctx context.Context, clientID, productID int) error {
			return apperrors.NewNotFoundError("assignment not found")
		},
	}

	uc := NewManageProductsUseCase(&mockProductsWriter{}, assignments, zap.NewNop())

	err := uc.UnassignProduct(context.Background(), ownerUser(), 7, 11)

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected NotFoundError, got %T", err)
	}
}
