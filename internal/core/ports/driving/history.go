package driving

import "context"

// HistoryService manages the bounded recent-search list.
type HistoryService interface {
	// Add records a query at the front of the list, de-duplicating and
	// truncating to the maximum length. Empty queries are ignored.
	// Persistence failures are logged and swallowed.
	Add(ctx context.Context, query string)

	// List returns the recent searches, most recent first.
	List() []string

	// Clear empties the list and persists the empty state.
	Clear(ctx context.Context)
}
