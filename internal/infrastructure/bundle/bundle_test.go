package bundle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unipro/glassfinder/internal/domain"
)

const pageTemplate = `<html><body>
<span id="mc"></span><span id="pc"></span>
<script src="data/mobileModels.js"></script>
  <script src="data/uniproProducts.js"></script>
  <script>
    document.getElementById('mc').textContent = mobileModels.length;
  </script>
<script>initSearch(mobileModels, uniproProducts);</script>
</body></html>`

var (
	models   = []string{"iPhone 13", "Galaxy S21"}
	products = []domain.Product{{BoxCode: "UNIPRO H01", Title: "Glass <13>", Mobiles: []string{"iPhone 13"}}}
)

func TestRender(t *testing.T) {
	out, err := Render([]byte(pageTemplate), models, products)
	require.NoError(t, err)

	page := string(out)
	assert.NotContains(t, page, `src="data/mobileModels.js"`)
	assert.NotContains(t, page, `src="data/uniproProducts.js"`)
	assert.Contains(t, page, `const mobileModels = ["iPhone 13","Galaxy S21"];`)
	assert.Contains(t, page, `const uniproProducts = [{"boxCode":"UNIPRO H01"`)
	assert.Contains(t, page, `document.getElementById('pc').textContent = uniproProducts.length;`)

	// only the loading block is replaced, later scripts survive
	assert.Contains(t, page, `<script>initSearch(mobileModels, uniproProducts);</script>`)
	assert.True(t, strings.HasPrefix(page, "<html><body>"))
}

func TestRender_EscapesMarkupInData(t *testing.T) {
	out, err := Render([]byte(pageTemplate), models, products)
	require.NoError(t, err)

	assert.NotContains(t, string(out), "Glass <13>")
	assert.Contains(t, string(out), `Glass \u003c13\u003e`)
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render([]byte(pageTemplate), models, products)
	require.NoError(t, err)
	second, err := Render([]byte(pageTemplate), models, products)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_NoLoaderBlock(t *testing.T) {
	template := []byte("<html><script>const mobileModels = [];</script></html>")

	out, err := Render(template, models, products)
	assert.ErrorIs(t, err, ErrNoLoaderBlock)
	assert.Equal(t, template, out)
}

func TestRender_AlreadyBundledPage(t *testing.T) {
	bundled, err := Render([]byte(pageTemplate), models, products)
	require.NoError(t, err)

	again, err := Render(bundled, models, products)
	assert.ErrorIs(t, err, ErrNoLoaderBlock)
	assert.Equal(t, bundled, again)
}

func TestEmbeddedScript_NilTables(t *testing.T) {
	script, err := EmbeddedScript(nil, nil)
	require.NoError(t, err)

	assert.Contains(t, string(script), "const mobileModels = [];")
	assert.Contains(t, string(script), "const uniproProducts = [];")
}
