package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent mission searches",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "clear the recent-search list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if historyClear {
		historyService.Clear(cmd.Context())
		cmd.Println("Recent searches cleared.")
		return nil
	}

	recent := historyService.List()
	if len(recent) == 0 {
		cmd.Println("No recent searches.")
		return nil
	}
	for i, query := range recent {
		cmd.Printf("  %d. %s\n", i+1, query)
	}
	return nil
}
