// Command bundle writes a standalone search page with the catalog inlined.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/unipro/glassfinder/config"
	"github.com/unipro/glassfinder/internal/infrastructure/bundle"
	"github.com/unipro/glassfinder/internal/infrastructure/catalogfile"
)

func main() {
	modelsPath := flag.String("models", "data/"+catalogfile.DefaultModelsFile, "mobile models JSON file")
	productsPath := flag.String("products", "data/"+catalogfile.DefaultProductsFile, "products JSON file")
	templatePath := flag.String("template", "offline-search.html", "page template")
	outPath := flag.String("out", "offline-search-standalone.html", "output file")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	config.SetupLogger(config.LogConfig{Level: *logLevel})

	models, products, err := catalogfile.NewLoader(*modelsPath, *productsPath).Load(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("failed to read catalog")
		os.Exit(1)
	}

	template, err := os.ReadFile(*templatePath)
	if err != nil {
		log.Error().Err(err).Str("path", *templatePath).Msg("failed to read template")
		os.Exit(1)
	}

	page, err := bundle.Render(template, models, products)
	if errors.Is(err, bundle.ErrNoLoaderBlock) {
		log.Warn().Str("path", *templatePath).Msg("no catalog loading scripts found, writing template unchanged")
	} else if err != nil {
		log.Error().Err(err).Msg("failed to render page")
		os.Exit(1)
	}

	if err := os.WriteFile(*outPath, page, 0o644); err != nil {
		log.Error().Err(err).Str("path", *outPath).Msg("failed to write page")
		os.Exit(1)
	}

	log.Info().
		Str("out", *outPath).
		Int("models", len(models)).
		Int("products", len(products)).
		Msg("created standalone page")
}
