package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogSource provides read access to the current catalog snapshot
type CatalogSource interface {
	Snapshot() *Catalog
	Version() uint64
}

// CatalogStore is a CatalogSource that can be re-initialized
type CatalogStore interface {
	CatalogSource
	Initialize(models []string, products []Product)
}

// CatalogLoader reads both catalog tables from an external source
type CatalogLoader interface {
	Load(ctx context.Context) ([]string, []Product, error)
}
