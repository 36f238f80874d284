package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/unipro/glassfinder/internal/domain"
	"github.com/unipro/glassfinder/internal/usecase"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalogService *usecase.CatalogService
}

// NewHandler creates a new HTTP handler
func NewHandler(catalogService *usecase.CatalogService) *Handler {
	return &Handler{
		catalogService: catalogService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	response := gin.H{
		"status":  "healthy",
		"service": "unipro-glassfinder",
		"version": Version,
	}

	if h.catalogService != nil {
		models, products := h.catalogService.Stats()
		response["models"] = models
		response["products"] = products
	}

	c.JSON(http.StatusOK, response)
}

// SearchMobileModels handles GET /api/v1/mobiles?q=&limit=
func (h *Handler) SearchMobileModels(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mobiles": h.catalogService.SearchMobileModels(c.Query("q"), limit),
	})
}

// FindProductsForMobile handles GET /api/v1/mobiles/products?model=
func (h *Handler) FindProductsForMobile(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": h.catalogService.FindProductsForMobile(c.Query("model")),
	})
}

// Search handles GET /api/v1/search?q=
func (h *Handler) Search(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	c.JSON(http.StatusOK, h.catalogService.Search(c.Request.Context(), c.Query("q")))
}

// ListProducts handles GET /api/v1/products
func (h *Handler) ListProducts(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": h.catalogService.GetAllProducts(),
	})
}

// GetProduct handles GET /api/v1/products/:boxCode
func (h *Handler) GetProduct(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	product, err := h.catalogService.GetProductByBoxCode(c.Param("boxCode"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"boxCode":  product.BoxCode,
		"title":    product.Title,
		"category": product.CategoryOrDefault(),
		"mobiles":  product.Mobiles,
	})
}

// ResolveDevice handles GET /api/v1/device?resolution= or ?width=&height=&ratio=
func (h *Handler) ResolveDevice(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	resolution := strings.TrimSpace(c.Query("resolution"))
	if resolution == "" {
		width, okW := queryFloat(c, "width")
		if !okW {
			return
		}
		height, okH := queryFloat(c, "height")
		if !okH {
			return
		}
		ratio, okR := queryFloat(c, "ratio")
		if !okR {
			return
		}
		if width <= 0 || height <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "resolution or positive width and height are required",
			})
			return
		}
		resolution = usecase.ScreenResolution(width, height, ratio)
	}

	c.JSON(http.StatusOK, gin.H{
		"resolution": resolution,
		"models":     h.catalogService.ResolveDevice(resolution),
	})
}

// ReloadCatalog handles POST /api/v1/catalog/reload
func (h *Handler) ReloadCatalog(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	if err := h.catalogService.Reload(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}

	models, products := h.catalogService.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status":   "reloaded",
		"models":   models,
		"products": products,
	})
}

// ready writes 503 when no catalog service is wired
func (h *Handler) ready(c *gin.Context) bool {
	if h.catalogService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog service not configured",
		})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP responses
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, domain.ErrMalformedCatalog):
		log.Error().Err(err).Msg("catalog reload rejected")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Catalog data is malformed"})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		log.Error().Err(err).Msg("catalog unavailable")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Catalog data unavailable"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// queryInt parses an optional integer query parameter, writing 400 on bad input
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return v, true
}

// queryFloat parses an optional float query parameter, writing 400 on bad input
func queryFloat(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a number"})
		return 0, false
	}
	return v, true
}
