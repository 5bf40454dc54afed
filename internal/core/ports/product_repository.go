package ports

import (
	"context"
	"time"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// FindByID returns the product even when soft-deleted; callers decide.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindFiltered applies the filter, excludes soft-deleted products, and
	// returns the page plus the total match count.
	FindFiltered(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error)
	Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
}

// ProductUpdate carries the mutable product fields; nil means "leave as is".
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *string
	Stock       *int
}
