package usecase

import (
	"context"
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"candela/internal/domain"
	"candela/internal/dto"
	"candela/internal/errors"
)

type ProductsWriter interface {
	Insert(ctx context.Context, p *domain.Product) (int, error)
	Update(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

type AssignmentsWriter interface {
	Upsert(ctx context.Context, a domain.ProductAssignment) error
	Delete(ctx context.Context, clientID, productID int) error
}

// ManageProductsUseCase covers the owner-side catalog operations: product
// creation and update, and per-client assignments with price overrides.
type ManageProductsUseCase struct {
	products    ProductsWriter
	assignments AssignmentsWriter
	logger      *zap.Logger
}

func NewManageProductsUseCase(products ProductsWriter, assignments AssignmentsWriter, logger *zap.Logger) *ManageProductsUseCase {
	return &ManageProductsUseCase{
		products:    products,
		assignments: assignments,
		logger:      logger,
	}
}

func (uc *ManageProductsUseCase) CreateProduct(ctx context.Context, user *domain.User, req dto.CreateProductRequest) (*domain.Product, error) {
	if err := requireOwner(user); err != nil {
		return nil, err
	}

	var details []errors.ValidationDetail
	if req.SKU == "" {
		details = append(details, errors.ValidationDetail{Field: "sku", Message: "sku is required"})
	}
	if req.Name == "" {
		details = append(details, errors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	details = append(details, validatePrice("basePrice", req.BasePrice)...)
	details = append(details, validatePrice("casePrice", req.CasePrice)...)
	if req.UnitsPerCase < 0 {
		details = append(details, errors.ValidationDetail{Field: "unitsPerCase", Message: "unitsPerCase must be non-negative"})
	}
	if len(details) > 0 {
		return nil, errors.NewValidationError("validation failed", details...)
	}

	product := &domain.Product{
		SKU:            req.SKU,
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		BasePrice:      decimal.NewFromFloat(req.BasePrice),
		UnitsPerCase:   req.UnitsPerCase,
		CasePrice:      decimal.NewFromFloat(req.CasePrice),
		SpecAttributes: req.SpecAttributes,
		ImageURL:       req.ImageURL,
		Status:         domain.ProductStatusAvailable,
	}

	id, err := uc.products.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	uc.logger.Info("product created", zap.Int("productId", id), zap.String("sku", product.SKU))
	return product, nil
}

func (uc *ManageProductsUseCase) UpdateProduct(ctx context.Context, user *domain.User, productID int, req dto.UpdateProductRequest) (*domain.Product, error) {
	if err := requireOwner(user); err != nil {
		return nil, err
	}

	var details []errors.ValidationDetail
	if req.Name == "" {
		details = append(details, errors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	details = append(details, validatePrice("basePrice", req.BasePrice)...)
	details = append(details, validatePrice("casePrice", req.CasePrice)...)
	if req.Status != domain.ProductStatusAvailable && req.Status != domain.ProductStatusDisabled {
		details = append(details, errors.ValidationDetail{Field: "status", Message: "status must be AVAILABLE or DISABLED"})
	}
	if len(details) > 0 {
		return nil, errors.NewValidationError("validation failed", details...)
	}

	product, err := uc.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Category = req.Category
	product.Subcategory = req.Subcategory
	product.BasePrice = decimal.NewFromFloat(req.BasePrice)
	product.UnitsPerCase = req.UnitsPerCase
	product.CasePrice = decimal.NewFromFloat(req.CasePrice)
	product.SpecAttributes = req.SpecAttributes
	product.ImageURL = req.ImageURL
	product.Status = req.Status

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}

	uc.logger.Info("product updated", zap.Int("productId", productID), zap.String("status", product.Status))
	return product, nil
}

func (uc *ManageProductsUseCase) AssignProduct(ctx context.Context, user *domain.User, clientID int, req dto.AssignProductRequest) error {
	if err := requireOwner(user); err != nil {
		return err
	}

	if req.ProductID <= 0 {
		return errors.NewValidationError("invalid productId", errors.ValidationDetail{
			Field:   "productId",
			Message: "productId must be a positive integer",
		})
	}

	var override *decimal.Decimal
	if req.PriceOverride != nil {
		if details := validatePrice("priceOverride", *req.PriceOverride); len(details) > 0 {
			return errors.NewValidationError("invalid priceOverride", details...)
		}
		v := decimal.NewFromFloat(*req.PriceOverride)
		override = &v
	}

	// product must exist before it can be assigned
	if _, err := uc.products.FindByID(ctx, req.ProductID); err != nil {
		return err
	}

	if err := uc.assignments.Upsert(ctx, domain.ProductAssignment{
		ClientID:      clientID,
		ProductID:     req.ProductID,
		PriceOverride: override,
	}); err != nil {
		return err
	}

	uc.logger.Info("product assigned",
		zap.Int("clientId", clientID),
		zap.Int("productId", req.ProductID),
		zap.Bool("hasOverride", override != nil))
	return nil
}

func (uc *ManageProductsUseCase) UnassignProduct(ctx context.Context, user *domain.User, clientID, productID int) error {
	if err := requireOwner(user); err != nil {
		return err
	}

	if err := uc.assignments.Delete(ctx, clientID, productID); err != nil {
		return err
	}

	uc.logger.Info("product unassigned", zap.Int("clientId", clientID), zap.Int("productId", productID))
	return nil
}

func requireOwner(user *domain.User) error {
	if user == nil {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !user.IsOwner() {
		return errors.NewForbiddenError("owner role required")
	}
	return nil
}

// validatePrice rejects NaN, infinities, and negatives before any float
// reaches decimal conversion.
func validatePrice(field string, value float64) []errors.ValidationDetail {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return []errors.ValidationDetail{{Field: field, Message: field + " must be a finite number"}}
	}
	if value < 0 {
		return []errors.ValidationDetail{{Field: field, Message: field + " must be non-negative"}}
	}
	return nil
}
