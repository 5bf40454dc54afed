package ports

import "context"

// CatalogCache caches serialized product listings. Get returns (nil, nil) on
// a miss; Invalidate drops every cached listing at once.
type CatalogCache interface {
	Get(ctx context.Context, key string) (*ProductPage, error)
	Set(ctx context.Context, key string, page *ProductPage) error
	Invalidate(ctx context.Context) error
}
