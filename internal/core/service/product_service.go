package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopcore/commerce-api/internal/api/metrics"
	"github.com/shopcore/commerce-api/internal/core/domain"
	"github.com/shopcore/commerce-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	cache      ports.CatalogCache
	logger     zerolog.Logger
}

// NewProductService builds a ProductService. cache may be nil, in which case
// every listing goes to the repository.
func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, cache ports.CatalogCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, cache: cache, logger: logger}
}

// Create inserts a product after verifying its category exists.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Stock:       input.Stock,
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Str("product_id", created.ID).Str("category_id", created.CategoryID).Msg("product created")
	s.invalidateCache(ctx)

	return created, nil
}

// List returns one page of the filtered catalog, consulting the cache first.
func (s *ProductService) List(ctx context.Context, filter domain.ProductFilter) (*ports.ProductPage, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}

	key := filterKey(filter)
	if s.cache != nil {
		if page, err := s.cache.Get(ctx, key); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache read failed")
		} else if page != nil {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return page, nil
		} else {
			metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	products, total, err := s.repo.FindFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := &ports.ProductPage{
		Products:    products,
		Total:       total,
		CurrentPage: filter.Page,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, page); err != nil {
			s.logger.Warn().Err(err).Msg("catalog cache write failed")
		}
	}

	return page, nil
}

func (s *ProductService) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id string, update ports.ProductUpdate) (*domain.Product, error) {
	if update.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *update.CategoryID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return updated, nil
}

// Delete performs a soft delete: the record stays, listings drop it, and a
// second delete fails.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product.IsDeleted {
		return domain.ErrProductDeleted
	}

	if err := s.repo.SoftDelete(ctx, id, time.Now().UTC()); err != nil {
		return err
	}

	s.logger.Info().Str("product_id", id).Msg("product soft-deleted")
	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

// filterKey derives a stable cache key from the listing criteria.
func filterKey(f domain.ProductFilter) string {
	fmtPtrF := func(p *float64) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%g", *p)
	}
	fmtPtrI := func(p *int) string {
		if p == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *p)
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s|%d|%d",
		f.CategoryID,
		fmtPtrF(f.MinPrice), fmtPtrF(f.MaxPrice),
		f.Name, f.Description,
		fmtPtrI(f.MinStock), fmtPtrI(f.MaxStock),
		f.Page, f.Limit,
	)
}
