package ports

import (
	"context"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, id string, update CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryUpdate carries the mutable category fields; nil means "leave as is".
type CategoryUpdate struct {
	Name        *string
	Description *string
}
