// Command checkproducts verifies that a bundled page carries every product of
// the source catalog. It exits 1 when any product is missing.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/unipro/glassfinder/config"
	"github.com/unipro/glassfinder/internal/infrastructure/catalogfile"
	"github.com/unipro/glassfinder/internal/infrastructure/consistency"
)

func main() {
	productsPath := flag.String("products", "data/"+catalogfile.DefaultProductsFile, "source products JSON file")
	pagePath := flag.String("page", "offline-search-standalone.html", "bundled page to check")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	config.SetupLogger(config.LogConfig{Level: *logLevel})

	log.Info().Msg("reading files")

	source, err := catalogfile.NewLoader("", *productsPath).LoadProducts(context.Background())
	if err != nil {
		log.Error().Err(err).Str("path", *productsPath).Msg("failed to read source products")
		os.Exit(1)
	}

	page, err := os.ReadFile(*pagePath)
	if err != nil {
		log.Error().Err(err).Str("path", *pagePath).Msg("failed to read page")
		os.Exit(1)
	}

	target, err := consistency.ExtractProducts(page)
	if err != nil {
		log.Error().Err(err).Str("path", *pagePath).Msg("failed to extract embedded products")
		os.Exit(1)
	}

	report := consistency.Compare(source, target)
	if err := report.WriteText(os.Stdout); err != nil {
		log.Error().Err(err).Msg("failed to write report")
		os.Exit(1)
	}

	if !report.OK() {
		os.Exit(1)
	}
}
