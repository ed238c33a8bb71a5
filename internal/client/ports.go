package client

import (
	"context"

	"candela/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, c *domain.Client) (int, error)
	FindByID(ctx context.Context, id int) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}
