package usecase

import (
	"context"

	"candela/internal/domain"
	"candela/internal/dto"
	"candela/internal/errors"
)

type CatalogService interface {
	GetClientProducts(ctx context.Context, clientID int, category, search string) ([]domain.ClientProduct, error)
	GetClientProductsByIDs(ctx context.Context, clientID int, ids []int) ([]domain.ClientProduct, []int, error)
}

// BrowseCatalogUseCase is the client-side read path: the assigned catalog
// with effective prices, scoped so a client user never sees another
// client's pricing.
type BrowseCatalogUseCase struct {
	catalog CatalogService
}

func NewBrowseCatalogUseCase(catalog CatalogService) *BrowseCatalogUseCase {
	return &BrowseCatalogUseCase{catalog: catalog}
}

func (uc *BrowseCatalogUseCase) ListClientProducts(ctx context.Context, user *domain.User, clientID int, category, search string) (*dto.ClientProductsResponse, error) {
	if user == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !user.CanAccessClient(clientID) {
		return nil, errors.NewForbiddenError("catalog belongs to another client")
	}

	products, err := uc.catalog.GetClientProducts(ctx, clientID, category, search)
	if err != nil {
		return nil, err
	}

	resp := &dto.ClientProductsResponse{Products: make([]dto.ClientProductDTO, 0, len(products))}
	for _, cp := range products {
		resp.Products = append(resp.Products, toClientProductDTO(cp))
	}
	return resp, nil
}

func (uc *BrowseCatalogUseCase) SearchProducts(ctx context.Context, user *domain.User, req dto.SearchProductsRequest) (*dto.SearchProductsResponse, error) {
	if user == nil {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if !user.CanAccessClient(req.ClientID) {
		return nil, errors.NewForbiddenError("catalog belongs to another client")
	}

	found, notFoundIDs, err := uc.catalog.GetClientProductsByIDs(ctx, req.ClientID, req.ProductIDs)
	if err != nil {
		return nil, err
	}

	products := make([]dto.ClientProductDTO, 0, len(found))
	for _, cp := range found {
		products = append(products, toClientProductDTO(cp))
	}

	if notFoundIDs == nil {
		notFoundIDs = []int{}
	}

	return &dto.SearchProductsResponse{
		Products: products,
		NotFound: notFoundIDs,
	}, nil
}

func toClientProductDTO(cp domain.ClientProduct) dto.ClientProductDTO {
	return dto.ClientProductDTO{
		ID:             cp.Product.ID,
		SKU:            cp.Product.SKU,
		Name:           cp.Product.Name,
		Description:    cp.Product.Description,
		Category:       cp.Product.Category,
		Subcategory:    cp.Product.Subcategory,
		BasePrice:      cp.Product.BasePrice,
		EffectivePrice: cp.EffectivePrice(),
		HasOverride:    cp.HasOverride(),
		UnitsPerCase:   cp.Product.UnitsPerCase,
		CasePrice:      cp.Product.CasePrice,
		SpecAttributes: cp.Product.SpecAttributes,
		ImageURL:       cp.Product.ImageURL,
	}
}
