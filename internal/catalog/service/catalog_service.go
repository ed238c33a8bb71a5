package service

import (
	"context"

	"candela/internal/domain"
)

type ProductsRepository interface {
	FindAssignedByClient(ctx context.Context, clientID int, category, search string) ([]domain.ClientProduct, error)
	FindAssignedByIDs(ctx context.Context, clientID int, ids []int) ([]domain.ClientProduct, error)
}

type CatalogService struct {
	repo ProductsRepository
}

func NewCatalogService(repo ProductsRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) GetClientProducts(ctx context.Context, clientID int, category, search string) ([]domain.ClientProduct, error) {
	return s.repo.FindAssignedByClient(ctx, clientID, category, search)
}

// GetClientProductsByIDs resolves products for a client and reports which of
// the requested ids were not assigned (or not available).
func (s *CatalogService) GetClientProductsByIDs(ctx context.Context, clientID int, ids []int) ([]domain.ClientProduct, []int, error) {
	found, err := s.repo.FindAssignedByIDs(ctx, clientID, ids)
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[int]struct{}, len(found))
	for _, cp := range found {
		foundSet[cp.Product.ID] = struct{}{}
	}

	var notFoundIDs []int
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			notFoundIDs = append(notFoundIDs, id)
		}
	}

	return found, notFoundIDs, nil
}
