// Command datelens finds dates in documents and reports their day offsets
// from a reference epoch.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/datelens/internal/adapters/driven/config/file"
	"github.com/custodia-labs/datelens/internal/adapters/driving/cli"
	"github.com/custodia-labs/datelens/internal/cleaners"
	"github.com/custodia-labs/datelens/internal/connectors/filesystem"
	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/services"
	"github.com/custodia-labs/datelens/internal/logger"
	"github.com/custodia-labs/datelens/internal/normalisers"
	"github.com/custodia-labs/datelens/internal/splitters/punkt"
	"github.com/custodia-labs/datelens/internal/taggers"
	"github.com/custodia-labs/datelens/internal/tokenizers/treebank"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// buildServices wires the adapters into the extraction service.
func buildServices(configDir string) (*cli.Services, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	pipeline := buildPipeline(store.GetStringSlice(domain.ConfigKeyProcessors))

	splitter, err := punkt.New()
	if err != nil {
		return nil, fmt.Errorf("loading sentence model: %w", err)
	}

	source := filesystem.New()
	extraction := services.NewExtractionService(
		source,
		normalisers.NewDefaultRegistry(),
		pipeline,
		splitter,
		treebank.New(),
		taggers.NewEnglish(defaultTag(store.GetString(domain.ConfigKeyDefaultTag))),
	)

	return &cli.Services{
		Extraction: extraction,
		Config:     store,
		Watcher:    source,
	}, nil
}

// buildPipeline builds the configured cleaning pipeline. A list naming an
// unknown processor falls back to the default order with a warning, so
// commands such as config set still run and can repair it.
func buildPipeline(names []string) *cleaners.Pipeline {
	if len(names) == 0 {
		return cleaners.NewDefaultPipeline()
	}
	pipeline, err := cleaners.NewDefaultRegistry().BuildPipeline(names)
	if err != nil {
		logger.Warn("Ignoring %s: %v", domain.ConfigKeyProcessors, err)
		return cleaners.NewDefaultPipeline()
	}
	return pipeline
}

// defaultTag returns the configured fallback tag, or "" with a warning when
// the tag may not be used.
func defaultTag(tag string) string {
	if err := taggers.ValidateDefaultTag(tag); err != nil {
		logger.Warn("Ignoring %s: %v", domain.ConfigKeyDefaultTag, err)
		return ""
	}
	return tag
}
