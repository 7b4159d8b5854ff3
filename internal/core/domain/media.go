package domain

// MediaType classifies items in the NASA media library.
type MediaType string

const (
	// MediaTypeImage is a still image.
	MediaTypeImage MediaType = "image"
	// MediaTypeVideo is a video with an optional playable file URL.
	MediaTypeVideo MediaType = "video"
)

// DefaultMediaTypes are the types requested when none are specified.
var DefaultMediaTypes = []MediaType{MediaTypeImage, MediaTypeVideo}

// DefaultPageSize is the fixed media search page size.
const DefaultPageSize = 10

// MediaItem is a single image or video search hit.
//
// Image items carry PreviewURL (and, on demand, a high-resolution URL
// resolved separately). Video items carry a playable VideoURL resolved
// from the asset manifest, a poster image in PreviewURL, and an optional
// captions track. A video whose manifest yielded no playable file keeps
// an empty VideoURL and still renders, as "unavailable".
type MediaItem struct {
	NasaID      string    `json:"nasa_id"`
	Title       string    `json:"title"`
	MediaType   MediaType `json:"media_type"`
	DateCreated string    `json:"date_created"`
	PreviewURL  string    `json:"preview_url,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	CaptionsURL string    `json:"captions_url,omitempty"`
}

// VideoAvailable reports whether a playable file was resolved.
func (m *MediaItem) VideoAvailable() bool {
	return m.MediaType == MediaTypeVideo && m.VideoURL != ""
}

// MediaPage is one page of merged media search results.
type MediaPage struct {
	Items     []MediaItem
	TotalHits int
	Page      int
	PageSize  int
}

// TotalPages derives the page count from the largest per-type hit count
// reported by the most recent response.
func (p *MediaPage) TotalPages() int {
	if p.PageSize <= 0 || p.TotalHits <= 0 {
		return 0
	}
	pages := p.TotalHits / p.PageSize
	if p.TotalHits%p.PageSize != 0 {
		pages++
	}
	return pages
}
