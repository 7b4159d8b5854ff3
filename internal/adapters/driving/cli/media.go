package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/astroview-labs/astroview-cli/internal/core/domain"
)

var mediaPage int

var mediaCmd = &cobra.Command{
	Use:   "media [query]",
	Short: "Search NASA's image and video library",
	Long: `Searches images-api.nasa.gov for images and videos matching the
query. Results are merged across both media types; videos list their
playable file when the asset manifest has one.`,
	Args: cobra.ExactArgs(1),
	RunE: runMedia,
}

var mediaHiresCmd = &cobra.Command{
	Use:   "hires [nasa-id]",
	Short: "Resolve the high-resolution URL for an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runMediaHires,
}

func init() {
	mediaCmd.Flags().IntVarP(&mediaPage, "page", "p", 1, "result page to fetch")
	mediaCmd.AddCommand(mediaHiresCmd)
	rootCmd.AddCommand(mediaCmd)
}

func runMedia(cmd *cobra.Command, args []string) error {
	if exploreService == nil {
		return errors.New("explore service not configured")
	}

	exploreService.SwitchMode(domain.ModeMedia)
	view := exploreService.Submit(cmd.Context(), args[0])

	if view.Phase == domain.PhaseResults && mediaPage > 1 {
		paged, err := exploreService.Paginate(cmd.Context(), mediaPage)
		if err != nil {
			return err
		}
		view = paged
	}

	switch view.Phase {
	case domain.PhaseResults:
		printMediaPage(cmd, view)
		return nil
	case domain.PhaseError:
		return errors.New(view.ErrMessage)
	default:
		return nil
	}
}

func runMediaHires(cmd *cobra.Command, args []string) error {
	if exploreService == nil {
		return errors.New("explore service not configured")
	}

	url := exploreService.HighResImage(cmd.Context(), args[0])
	if url == "" {
		cmd.Println("No high-resolution asset available.")
		return nil
	}
	cmd.Println(url)
	return nil
}

func printMediaPage(cmd *cobra.Command, view domain.ExploreView) {
	if len(view.Media) == 0 {
		cmd.Println("No results found.")
		return
	}

	for i := range view.Media {
		item := &view.Media[i]
		cmd.Printf("  [%s] %s (%s)\n", item.MediaType, item.Title, item.NasaID)
		if item.DateCreated != "" {
			cmd.Printf("      Created: %s\n", item.DateCreated)
		}
		switch {
		case item.VideoAvailable():
			cmd.Printf("      Video:   %s\n", item.VideoURL)
		case item.MediaType == domain.MediaTypeVideo:
			cmd.Println("      Video:   unavailable")
		case item.PreviewURL != "":
			cmd.Printf("      Preview: %s\n", item.PreviewURL)
		}
		if item.CaptionsURL != "" {
			cmd.Printf("      Captions: %s\n", item.CaptionsURL)
		}
	}

	if view.TotalPages > 1 {
		cmd.Printf("\nPage %d of %d\n", view.Page, view.TotalPages)
	}
}
