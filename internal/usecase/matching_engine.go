package usecase

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/unipro/glassfinder/internal/domain"
)

// Result limits
const (
	defaultAutocompleteLimit = 10
	searchMobilesLimit       = 20
)

// MatchConfig holds configuration for the matching engine
type MatchConfig struct {
	AutocompleteLimit  int
	SearchMobilesLimit int
	EnableDebugLogging bool
}

// MatchingEngine resolves free-text device names against the catalog.
// Every operation reads a single catalog snapshot and never mutates it.
type MatchingEngine struct {
	source             domain.CatalogSource
	autocompleteLimit  int
	searchMobilesLimit int
	enableDebugLogging bool
}

// NewMatchingEngine creates a matching engine over the given catalog source
func NewMatchingEngine(source domain.CatalogSource, config MatchConfig) *MatchingEngine {
	limit := config.AutocompleteLimit
	if limit <= 0 {
		limit = defaultAutocompleteLimit
	}

	searchLimit := config.SearchMobilesLimit
	if searchLimit <= 0 {
		searchLimit = searchMobilesLimit
	}

	return &MatchingEngine{
		source:             source,
		autocompleteLimit:  limit,
		searchMobilesLimit: searchLimit,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// SearchMobileModels returns up to limit model names containing keyword,
// case-insensitively, in catalog order. A limit <= 0 uses the configured default.
func (e *MatchingEngine) SearchMobileModels(keyword string, limit int) []string {
	if isBlank(keyword) {
		return []string{}
	}
	if limit <= 0 {
		limit = e.autocompleteLimit
	}

	return searchModels(e.source.Snapshot(), newNormalizer(), keyword, limit)
}

func searchModels(catalog *domain.Catalog, n *normalizer, keyword string, limit int) []string {
	searchTerm := n.lowerKey(keyword)

	results := []string{}
	for _, model := range catalog.Models {
		if len(results) >= limit {
			break
		}
		if strings.Contains(n.lowerText(model), searchTerm) {
			results = append(results, model)
		}
	}
	return results
}

// FindProductsForMobile returns every product with at least one mobile entry
// that equals, contains, or is contained in the given model name after
// upper-casing and trimming both sides.
func (e *MatchingEngine) FindProductsForMobile(mobileModel string) []domain.ProductMatch {
	if isBlank(mobileModel) {
		return []domain.ProductMatch{}
	}

	n := newNormalizer()
	searchTerm := n.upperKey(mobileModel)
	catalog := e.source.Snapshot()

	results := []domain.ProductMatch{}
	for _, product := range catalog.Products {
		for _, mobile := range product.Mobiles {
			if bidirectionalMatch(n.upperKey(mobile), searchTerm) {
				results = append(results, domain.ProductMatch{
					BoxCode:  product.BoxCode,
					Title:    product.Title,
					Category: product.CategoryOrDefault(),
				})
				break
			}
		}
	}

	if e.enableDebugLogging {
		log.Debug().
			Str("model", mobileModel).
			Int("matches", len(results)).
			Msg("find products for mobile")
	}

	return results
}

// Search looks the keyword up in model names and, independently, in product
// titles and mobile lists. Products matched only by title carry an empty
// MatchedMobiles list.
func (e *MatchingEngine) Search(keyword string) domain.SearchResult {
	if isBlank(keyword) {
		return domain.EmptySearchResult()
	}

	n := newNormalizer()
	catalog := e.source.Snapshot()
	searchTerm := n.lowerKey(keyword)

	result := domain.SearchResult{
		Mobiles:  searchModels(catalog, n, keyword, e.searchMobilesLimit),
		Products: []domain.ProductHit{},
	}

	for _, product := range catalog.Products {
		titleMatch := strings.Contains(n.lowerText(product.Title), searchTerm)

		matched := []string{}
		for _, mobile := range product.Mobiles {
			if strings.Contains(n.lowerText(mobile), searchTerm) {
				matched = append(matched, mobile)
			}
		}

		if titleMatch || len(matched) > 0 {
			result.Products = append(result.Products, domain.ProductHit{
				BoxCode:        product.BoxCode,
				Title:          product.Title,
				MatchedMobiles: matched,
			})
		}
	}

	if e.enableDebugLogging {
		log.Debug().
			Str("keyword", keyword).
			Int("mobiles", len(result.Mobiles)).
			Int("products", len(result.Products)).
			Msg("search")
	}

	return result
}

// GetAllProducts lists every product with its mobile count, in catalog order
func (e *MatchingEngine) GetAllProducts() []domain.ProductSummary {
	catalog := e.source.Snapshot()

	summaries := make([]domain.ProductSummary, 0, len(catalog.Products))
	for _, product := range catalog.Products {
		summaries = append(summaries, domain.ProductSummary{
			BoxCode:     product.BoxCode,
			Title:       product.Title,
			MobileCount: len(product.Mobiles),
		})
	}
	return summaries
}

// GetProductByBoxCode returns the first product whose box code equals boxCode
// ignoring case. The second return value is false when nothing matches.
func (e *MatchingEngine) GetProductByBoxCode(boxCode string) (*domain.Product, bool) {
	n := newNormalizer()
	wanted := n.upper.String(boxCode)

	catalog := e.source.Snapshot()
	for i := range catalog.Products {
		if n.upper.String(catalog.Products[i].BoxCode) == wanted {
			product := catalog.Products[i]
			return &product, true
		}
	}
	return nil, false
}
