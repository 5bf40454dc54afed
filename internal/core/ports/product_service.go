package ports

import (
	"context"

	"github.com/shopcore/commerce-api/internal/core/domain"
)

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  string
	Stock       int
}

// ProductPage is one page of a filtered product listing.
type ProductPage struct {
	Products    []domain.Product `json:"products"`
	Total       int64            `json:"total"`
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) (*ProductPage, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
