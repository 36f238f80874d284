package catalogfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/unipro/glassfinder/internal/domain"
)

// Default file names inside a catalog data directory
const (
	DefaultModelsFile   = "mobileModels.json"
	DefaultProductsFile = "uniproProducts.json"
)

// Loader reads the model and product tables from JSON files
type Loader struct {
	modelsPath   string
	productsPath string
}

// NewLoader creates a loader for the given file paths
func NewLoader(modelsPath, productsPath string) *Loader {
	return &Loader{
		modelsPath:   modelsPath,
		productsPath: productsPath,
	}
}

// productRecord mirrors domain.Product but keeps track of a missing mobiles key
type productRecord struct {
	BoxCode  string    `json:"boxCode"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	Mobiles  *[]string `json:"mobiles"`
}

// Load reads both tables. Unreadable files wrap domain.ErrCatalogUnavailable;
// invalid JSON or a product without mobiles wraps domain.ErrMalformedCatalog.
func (l *Loader) Load(ctx context.Context) ([]string, []domain.Product, error) {
	models, err := l.LoadModels(ctx)
	if err != nil {
		return nil, nil, err
	}

	products, err := l.LoadProducts(ctx)
	if err != nil {
		return nil, nil, err
	}

	log.Debug().
		Str("models_path", l.modelsPath).
		Str("products_path", l.productsPath).
		Int("models", len(models)).
		Int("products", len(products)).
		Msg("catalog files read")

	return models, products, nil
}

// LoadModels reads the model name table
func (l *Loader) LoadModels(ctx context.Context) ([]string, error) {
	data, err := readFile(ctx, l.modelsPath)
	if err != nil {
		return nil, err
	}

	var models []string
	if err := json.Unmarshal(data, &models); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedCatalog, l.modelsPath, err)
	}
	return models, nil
}

// LoadProducts reads the product table
func (l *Loader) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	data, err := readFile(ctx, l.productsPath)
	if err != nil {
		return nil, err
	}
	return ParseProducts(data, l.productsPath)
}

// ParseProducts decodes a product table. source names the data in error messages.
func ParseProducts(data []byte, source string) ([]domain.Product, error) {
	var records []productRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedCatalog, source, err)
	}

	products := make([]domain.Product, 0, len(records))
	for i, rec := range records {
		if rec.Mobiles == nil {
			return nil, fmt.Errorf("%w: %s: product %d (%q) has no mobiles", domain.ErrMalformedCatalog, source, i, rec.BoxCode)
		}
		products = append(products, domain.Product{
			BoxCode:  rec.BoxCode,
			Title:    rec.Title,
			Category: rec.Category,
			Mobiles:  *rec.Mobiles,
		})
	}
	return products, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	return data, nil
}
