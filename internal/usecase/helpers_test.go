package usecase

import (
	"context"
	"time"

	"github.com/unipro/glassfinder/internal/domain"
)

// staticSource is a fixed CatalogStore for tests
type staticSource struct {
	catalog *domain.Catalog
	version uint64
}

func newStaticSource(models []string, products []domain.Product) *staticSource {
	s := &staticSource{}
	s.Initialize(models, products)
	return s
}

func (s *staticSource) Snapshot() *domain.Catalog { return s.catalog }
func (s *staticSource) Version() uint64           { return s.version }

func (s *staticSource) Initialize(models []string, products []domain.Product) {
	if models == nil {
		models = []string{}
	}
	if products == nil {
		products = []domain.Product{}
	}
	s.catalog = &domain.Catalog{Models: models, Products: products}
	s.version++
}

// mockCacheRepository is a map-backed domain.CacheRepository
type mockCacheRepository struct {
	data   map[string]interface{}
	sets   int
	setErr error
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{data: make(map[string]interface{})}
}

func (m *mockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *mockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *mockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// mockLoader returns canned catalog tables
type mockLoader struct {
	models   []string
	products []domain.Product
	err      error
	calls    int
}

func (m *mockLoader) Load(ctx context.Context) ([]string, []domain.Product, error) {
	m.calls++
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.models, m.products, nil
}

var testModels = []string{
	"iPhone 12",
	"iPhone 13",
	"iPhone 13 Pro",
	"iPhone 13 Pro Max",
	"Galaxy S21",
	"Galaxy S21 Ultra",
	"Redmi Note 10",
}

var testProducts = []domain.Product{
	{
		BoxCode: "UNIPRO H01",
		Title:   "Tempered Glass for iPhone 13",
		Mobiles: []string{"iPhone 13", "iPhone 13 Pro"},
	},
	{
		BoxCode:  "UNIPRO S10",
		Title:    "Full Cover Glass",
		Category: "UNIPRO PRIVACY GLASS",
		Mobiles:  []string{"Galaxy S21", " galaxy s21 plus "},
	},
	{
		BoxCode: "UNIPRO X99",
		Title:   "Redmi Series Protector",
		Mobiles: []string{"Redmi Note 10", "Redmi Note 10 Pro"},
	},
	{
		BoxCode: "unipro h01",
		Title:   "Duplicate Code",
		Mobiles: []string{},
	},
}
