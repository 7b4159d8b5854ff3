// Command astroview is a terminal client for NASA's public APIs:
// the OSDR mission catalog, the image and video library, and the
// Astronomy Picture of the Day.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/astroview-labs/astroview-cli/internal/adapters/driven/config/file"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driven/nasa/apod"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driven/nasa/images"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driven/nasa/osdr"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driven/storage/memory"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driven/storage/sqlite"
	"github.com/astroview-labs/astroview-cli/internal/adapters/driving/cli"
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driven"
	"github.com/astroview-labs/astroview-cli/internal/core/services"
	"github.com/astroview-labs/astroview-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	cfg := configStore.Config()
	logger.SetVerbose(cfg.Verbose)

	// Reload verbosity when the config file changes on disk.
	if updates, watchErr := configStore.Watch(ctx); watchErr == nil {
		go func() {
			for fresh := range updates {
				logger.SetVerbose(fresh.Verbose)
				logger.Info("configuration reloaded from %s", configStore.Path())
			}
		}()
	} else {
		logger.Error("watching config file: %v", watchErr)
	}

	// Recent searches persist in SQLite; fall back to memory when the
	// data directory is unusable.
	var historyStore driven.HistoryStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Error("opening history database: %v", err)
		historyStore = memory.NewHistoryStore()
	} else {
		defer store.Close()
		historyStore = store.HistoryStore()
	}

	historyService := services.NewHistoryService(ctx, historyStore)
	apodService := services.NewApodService(apod.NewClient(cfg.APODBaseURL, cfg.APIKey))
	exploreService := services.NewExploreService(
		osdr.NewClient(cfg.OSDRBaseURL),
		images.NewClient(cfg.ImagesBaseURL),
		historyService,
	)

	// Fetch the mission identifier index in the background so startup
	// stays instant; autocomplete degrades gracefully until it lands.
	go exploreService.LoadMissionIndex(ctx)

	cli.SetExploreService(exploreService)
	cli.SetApodService(apodService)
	cli.SetHistoryService(historyService)

	return cli.Execute()
}
