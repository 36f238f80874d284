// Package bundle embeds the catalog tables into a self-contained search page.
package bundle

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/unipro/glassfinder/internal/domain"
)

// ErrNoLoaderBlock is returned when the template has no data loading scripts to replace
var ErrNoLoaderBlock = errors.New("template has no catalog loading scripts")

// loaderBlockRegex matches the two data script tags plus the inline bootstrap script after them
var loaderBlockRegex = regexp.MustCompile(
	`(?s)<script src="data/mobileModels\.js"></script>\s*<script src="data/uniproProducts\.js"></script>\s*<script>.*?</script>`,
)

const embeddedScript = `
    <script>
        const mobileModels = %s;
        const uniproProducts = %s;

        document.getElementById('mc').textContent = mobileModels.length;
        document.getElementById('pc').textContent = uniproProducts.length;
    </script>`

// Render replaces the first catalog loading block in template with an inline
// script declaring both tables. The output depends only on its inputs.
// When the block is missing the template is returned unchanged with ErrNoLoaderBlock.
func Render(template []byte, models []string, products []domain.Product) ([]byte, error) {
	loc := loaderBlockRegex.FindIndex(template)
	if loc == nil {
		return template, ErrNoLoaderBlock
	}

	script, err := EmbeddedScript(models, products)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(len(template) + len(script))
	out.Write(template[:loc[0]])
	out.Write(script)
	out.Write(template[loc[1]:])
	return out.Bytes(), nil
}

// EmbeddedScript renders the inline script block for the given tables
func EmbeddedScript(models []string, products []domain.Product) ([]byte, error) {
	if models == nil {
		models = []string{}
	}
	if products == nil {
		products = []domain.Product{}
	}

	modelsJSON, err := json.Marshal(models)
	if err != nil {
		return nil, fmt.Errorf("encode models: %w", err)
	}
	productsJSON, err := json.Marshal(products)
	if err != nil {
		return nil, fmt.Errorf("encode products: %w", err)
	}

	return []byte(fmt.Sprintf(embeddedScript, modelsJSON, productsJSON)), nil
}
