package driven

import "context"

// HistoryStore persists the recent-search list as an ordered sequence,
// most recent first. The in-memory list owned by the history service is
// authoritative for the session; Save replaces the stored sequence
// wholesale.
type HistoryStore interface {
	// Load reads the persisted list. Implementations return an empty
	// list, not an error, when nothing has been stored yet.
	Load(ctx context.Context) ([]string, error)

	// Save replaces the persisted list.
	Save(ctx context.Context, searches []string) error
}
