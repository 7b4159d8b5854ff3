package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the OSDR mission catalog",
	Long: `Looks up a mission by identifier in NASA's Open Science Data
Repository. A miss shows near-match suggestions from the catalog index;
when nothing comes close, the full alphabetical catalog is shown instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output the mission record as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if exploreService == nil {
		return errors.New("explore service not configured")
	}

	exploreService.SwitchMode(domain.ModeMission)
	view := exploreService.Submit(cmd.Context(), args[0])

	switch view.Phase {
	case domain.PhaseResults:
		if searchJSON {
			return outputMissionJSON(cmd, view.Mission)
		}
		printMission(cmd, view.Mission)
		return nil
	case domain.PhaseSuggestions:
		cmd.Printf("No mission matches %q. Did you mean:\n", view.Query)
		for _, suggestion := range view.Suggestions {
			cmd.Printf("  %s\n", suggestion)
		}
		return nil
	case domain.PhaseCatalog:
		cmd.Printf("No mission matches %q. Full catalog:\n\n", view.Query)
		printCatalog(cmd, view.Catalog)
		return nil
	case domain.PhaseError:
		cmd.PrintErrf("Error: %s\n", view.ErrMessage)
		if len(view.Catalog) > 0 {
			cmd.Println("Known missions:")
			printCatalog(cmd, view.Catalog)
		}
		return nil
	default:
		return nil
	}
}

func outputMissionJSON(cmd *cobra.Command, mission *domain.MissionRecord) error {
	data, err := json.MarshalIndent(mission, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal mission: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printMission(cmd *cobra.Command, mission *domain.MissionRecord) {
	cmd.Printf("%s\n", mission.Identifier)
	cmd.Printf("  Vehicle:  %s\n", mission.VehicleName())
	cmd.Printf("  Launched: %s\n", mission.StartDate)
	cmd.Printf("  Ended:    %s\n", mission.EndDateOrCurrent())
	if len(mission.Aliases) > 0 {
		cmd.Printf("  Aliases:  %v\n", mission.Aliases)
	}
	cmd.Printf("  Studies:  %d\n", mission.StudyCount())
}

func printCatalog(cmd *cobra.Command, groups []domain.CatalogGroup) {
	for _, group := range groups {
		cmd.Printf("%s\n", group.Letter)
		for _, mission := range group.Missions {
			cmd.Printf("  %s\n", mission)
		}
	}
}
