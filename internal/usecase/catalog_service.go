package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/unipro/glassfinder/internal/domain"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL time.Duration
}

// CatalogService serves matching queries to transports, caching combined
// search results and reloading the catalog on demand.
type CatalogService struct {
	store    domain.CatalogStore
	engine   *MatchingEngine
	resolver *DeviceResolver
	cache    domain.CacheRepository
	loader   domain.CatalogLoader
	cacheTTL time.Duration
}

// NewCatalogService creates a new catalog service with dependencies.
// cache and loader may be nil: searches are then uncached and Reload fails.
func NewCatalogService(
	store domain.CatalogStore,
	engine *MatchingEngine,
	resolver *DeviceResolver,
	cache domain.CacheRepository,
	loader domain.CatalogLoader,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	if resolver == nil {
		resolver = NewDeviceResolver(nil)
	}

	return &CatalogService{
		store:    store,
		engine:   engine,
		resolver: resolver,
		cache:    cache,
		loader:   loader,
		cacheTTL: cacheTTL,
	}
}

// Search runs a combined keyword search.
// Flow: check cache -> run engine -> cache -> return
func (s *CatalogService) Search(ctx context.Context, keyword string) domain.SearchResult {
	if isBlank(keyword) || s.cache == nil {
		return s.engine.Search(keyword)
	}

	cacheKey := s.generateCacheKey(keyword)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		return cached
	}

	result := s.engine.Search(keyword)

	if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache search result")
	}

	return result
}

// SearchMobileModels returns autocomplete suggestions for keyword
func (s *CatalogService) SearchMobileModels(keyword string, limit int) []string {
	return s.engine.SearchMobileModels(keyword, limit)
}

// FindProductsForMobile returns the products that fit mobileModel
func (s *CatalogService) FindProductsForMobile(mobileModel string) []domain.ProductMatch {
	return s.engine.FindProductsForMobile(mobileModel)
}

// GetAllProducts lists the catalog
func (s *CatalogService) GetAllProducts() []domain.ProductSummary {
	return s.engine.GetAllProducts()
}

// GetProductByBoxCode returns a product or domain.ErrProductNotFound
func (s *CatalogService) GetProductByBoxCode(boxCode string) (*domain.Product, error) {
	if isBlank(boxCode) {
		return nil, domain.ErrInvalidRequest
	}
	product, ok := s.engine.GetProductByBoxCode(boxCode)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

// ResolveDevice returns the candidate models for a physical screen resolution
func (s *CatalogService) ResolveDevice(resolution string) []string {
	return s.resolver.ResolveDevice(resolution)
}

// Stats returns the size of the current catalog
func (s *CatalogService) Stats() (models, products int) {
	catalog := s.store.Snapshot()
	return len(catalog.Models), len(catalog.Products)
}

// Reload reads the catalog from the loader and re-initializes the store.
// On failure the previous catalog stays in place.
func (s *CatalogService) Reload(ctx context.Context) error {
	if s.loader == nil {
		return fmt.Errorf("%w: no catalog loader configured", domain.ErrCatalogUnavailable)
	}

	models, products, err := s.loader.Load(ctx)
	if err != nil {
		return err
	}

	s.store.Initialize(models, products)

	log.Info().
		Int("models", len(models)).
		Int("products", len(products)).
		Uint64("version", s.store.Version()).
		Msg("catalog loaded")

	return nil
}

// generateCacheKey creates a cache key bound to the current catalog version.
// Format: "search:v{version}:{normalized_keyword}"
func (s *CatalogService) generateCacheKey(keyword string) string {
	return fmt.Sprintf("search:v%d:%s", s.store.Version(), newNormalizer().lowerKey(keyword))
}

// getFromCache retrieves a search result from cache. The memory cache stores
// JSON-decoded values, so the entry is re-encoded into the typed result.
func (s *CatalogService) getFromCache(ctx context.Context, key string) (domain.SearchResult, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return domain.SearchResult{}, err
	}

	if result, ok := value.(domain.SearchResult); ok {
		return result, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return domain.SearchResult{}, domain.ErrCacheMiss
	}

	result := domain.EmptySearchResult()
	if err := json.Unmarshal(raw, &result); err != nil {
		return domain.SearchResult{}, domain.ErrCacheMiss
	}
	return result, nil
}
