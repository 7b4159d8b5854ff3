package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

var (
	apodDate   string
	apodRandom bool
)

var apodCmd = &cobra.Command{
	Use:   "apod",
	Short: "Show the Astronomy Picture of the Day",
	Long: `Fetches NASA's Astronomy Picture of the Day. With --date, shows the
entry for that day (slashes or dashes both work, e.g. 2024/12/25).
With --random, shows a batch of random entries.`,
	Args: cobra.NoArgs,
	RunE: runAPOD,
}

func init() {
	apodCmd.Flags().StringVarP(&apodDate, "date", "d", "", "date of the entry (YYYY-MM-DD or YYYY/MM/DD)")
	apodCmd.Flags().BoolVarP(&apodRandom, "random", "r", false, "show a batch of random entries")
	rootCmd.AddCommand(apodCmd)
}

func runAPOD(cmd *cobra.Command, _ []string) error {
	if apodService == nil {
		return errors.New("apod service not configured")
	}

	switch {
	case apodRandom:
		entries, err := apodService.Random(cmd.Context())
		if err != nil {
			return err
		}
		for i := range entries {
			printAPOD(cmd, &entries[i])
			cmd.Println()
		}
		return nil
	case apodDate != "":
		entry, err := apodService.ByDate(cmd.Context(), apodDate)
		if err != nil {
			return err
		}
		printAPOD(cmd, entry)
		return nil
	default:
		entry := apodService.Today(cmd.Context())
		if entry == nil {
			cmd.Println("Picture of the day is unavailable right now.")
			return nil
		}
		printAPOD(cmd, entry)
		return nil
	}
}

func printAPOD(cmd *cobra.Command, entry *domain.APODEntry) {
	cmd.Printf("%s (%s)\n", entry.Title, entry.Date)
	if entry.Copyright != "" {
		cmd.Printf("  © %s\n", entry.Copyright)
	}
	if entry.IsVideo() {
		cmd.Printf("  Video: %s\n", entry.URL)
	} else {
		cmd.Printf("  Image: %s\n", entry.URL)
		if entry.HDURL != "" {
			cmd.Printf("  HD:    %s\n", entry.HDURL)
		}
	}
	cmd.Printf("\n%s\n", entry.Explanation)
}
