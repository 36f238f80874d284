package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/unipro/glassfinder/config"
	httpDelivery "github.com/unipro/glassfinder/internal/delivery/http"
	"github.com/unipro/glassfinder/internal/domain"
	"github.com/unipro/glassfinder/internal/infrastructure/cache"
	"github.com/unipro/glassfinder/internal/infrastructure/catalog"
	"github.com/unipro/glassfinder/internal/infrastructure/catalogfile"
	"github.com/unipro/glassfinder/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.SetupLogger(cfg.Log)

	logger.Info().
		Str("version", httpDelivery.Version).
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("cache", cfg.Cache.Type).
		Msg("starting UNIPRO glass finder")

	// Initialize infrastructure dependencies
	store := catalog.NewStore()
	loader := catalogfile.NewLoader(cfg.Catalog.ModelsPath, cfg.Catalog.ProductsPath)

	var cacheRepo domain.CacheRepository
	var memoryCache *cache.MemoryCache
	if cfg.Cache.Type == "memory" {
		memoryCache = cache.NewMemoryCache(cfg.Cache.CleanupInterval)
		defer memoryCache.Close()
		cacheRepo = memoryCache
		logger.Info().Dur("ttl", cfg.Cache.TTL).Msg("search cache enabled")
	}

	// Initialize usecase layer
	engine := usecase.NewMatchingEngine(store, usecase.MatchConfig{
		AutocompleteLimit:  cfg.Matching.AutocompleteLimit,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
	})

	catalogService := usecase.NewCatalogService(
		store,
		engine,
		usecase.NewDeviceResolver(nil),
		cacheRepo,
		loader,
		usecase.CatalogServiceConfig{CacheTTL: cfg.Cache.TTL},
	)

	if err := catalogService.Reload(context.Background()); err != nil {
		logger.Fatal().Err(err).
			Str("models_path", cfg.Catalog.ModelsPath).
			Str("products_path", cfg.Catalog.ProductsPath).
			Msg("failed to load catalog")
	}

	metrics := httpDelivery.NewMetrics(catalogService)
	if memoryCache != nil {
		metrics.Register(cacheCollectors(memoryCache)...)
	}

	// Create HTTP handler and router
	handler := httpDelivery.NewHandler(catalogService)
	router := httpDelivery.SetupRouter(cfg, handler, metrics)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("bye")
}

// cacheCollectors exposes the search cache counters
func cacheCollectors(c *cache.MemoryCache) []prometheus.Collector {
	return []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "unipro_search_cache_hits_total",
			Help: "Search cache hits",
		}, func() float64 { return float64(c.Stats().Hits) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "unipro_search_cache_misses_total",
			Help: "Search cache misses",
		}, func() float64 { return float64(c.Stats().Misses) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "unipro_search_cache_items",
			Help: "Entries in the search cache",
		}, func() float64 { return float64(c.Stats().Items) }),
	}
}
