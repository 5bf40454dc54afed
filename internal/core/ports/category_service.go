package ports

import (
	"context"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

type CreateCategoryInput struct {
	Name        string
	Description string
}

type CategoryService interface {
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, update CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
