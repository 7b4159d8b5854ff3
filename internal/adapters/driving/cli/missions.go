package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List the full mission catalog",
	Long:  `Prints every known OSDR mission, grouped alphabetically by first letter.`,
	Args:  cobra.NoArgs,
	RunE:  runMissions,
}

func init() {
	rootCmd.AddCommand(missionsCmd)
}

func runMissions(cmd *cobra.Command, _ []string) error {
	if exploreService == nil {
		return errors.New("explore service not configured")
	}

	view := exploreService.ShowCatalog(cmd.Context())
	if view.Phase == domain.PhaseError {
		return errors.New(view.ErrMessage)
	}

	printCatalog(cmd, view.Catalog)
	return nil
}
