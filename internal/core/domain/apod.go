package domain

import (
	"fmt"
	"strings"
	"time"
)

// APODEntry is one Astronomy Picture of the Day record.
type APODEntry struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Date        string `json:"date"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	Copyright   string `json:"copyright,omitempty"`
}

// IsVideo reports whether the entry is a video rather than an image.
func (e *APODEntry) IsVideo() bool {
	return e.MediaType == "video"
}

// NormalizeAPODDate accepts a date string using either "/" or "-"
// separators and returns the ISO form the APOD endpoint expects
// (YYYY-MM-DD).
func NormalizeAPODDate(date string) (string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(date), "/", "-")
	parsed, err := time.Parse("2006-1-2", normalized)
	if err != nil {
		return "", fmt.Errorf("%w: unrecognized date %q", ErrInvalidInput, date)
	}
	return parsed.Format("2006-01-02"), nil
}
