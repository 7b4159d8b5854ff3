// Package cli implements the cobra command tree. Commands read their
// collaborating services from package-level variables that the main
// wiring sets before Execute runs; a command invoked without its
// service reports a configuration error instead of panicking.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/astroview-labs/astroview-cli/internal/core/ports/driving"
	"github.com/astroview-labs/astroview-cli/internal/logger"
)

// version is the build version, overridable at link time.
var version = "dev"

var (
	exploreService driving.ExploreService
	apodService    driving.ApodService
	historyService driving.HistoryService
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "astroview",
	Short: "Explore NASA imagery and mission data from the terminal",
	Long: `Astroview is a terminal client for NASA's public APIs.

Search the OSDR mission catalog, browse the image and video library,
and view the Astronomy Picture of the Day, either as one-shot commands
or through the interactive TUI.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetExploreService injects the search orchestrator.
func SetExploreService(s driving.ExploreService) {
	exploreService = s
}

// SetApodService injects the picture-of-the-day service.
func SetApodService(s driving.ApodService) {
	apodService = s
}

// SetHistoryService injects the recent-search service.
func SetHistoryService(s driving.HistoryService) {
	historyService = s
}
