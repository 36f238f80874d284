package http

import (
	"github.com/gin-gonic/gin"

	"github.com/unipro/glassfinder/config"
)

// SetupRouter creates and configures the Gin router.
// metrics may be nil, in which case /metrics is not served.
func SetupRouter(cfg *config.Config, handler *Handler, metrics *Metrics) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	if metrics != nil {
		router.Use(metrics.Middleware())
	}
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	if metrics != nil {
		router.GET("/metrics", metrics.Handler())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	if cfg.RateLimit.PerIP > 0 {
		v1.Use(RateLimitMiddleware(NewIPRateLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Burst)))
	}
	{
		mobiles := v1.Group("/mobiles")
		{
			mobiles.GET("", handler.SearchMobileModels)
			mobiles.GET("/products", handler.FindProductsForMobile)
		}

		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/:boxCode", handler.GetProduct)
		}

		v1.GET("/search", handler.Search)
		v1.GET("/device", handler.ResolveDevice)
		v1.POST("/catalog/reload", handler.ReloadCatalog)
	}

	return router
}
