package sqlite

import (
	"context"
	"fmt"

	"github.com/astroview-labs/astroview-cli/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Load returns the persisted recent searches, most recent first.
func (h *historyStore) Load(ctx context.Context) ([]string, error) {
	rows, err := h.store.db.QueryContext(ctx,
		"SELECT query FROM recent_searches ORDER BY position ASC")
	if err != nil {
		return nil, fmt.Errorf("loading recent searches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var searches []string
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			return nil, fmt.Errorf("scanning recent search: %w", err)
		}
		searches = append(searches, query)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading recent searches: %w", err)
	}
	return searches, nil
}

// Save replaces the persisted list with the given one. The whole list
// is small and bounded, so a full rewrite in one transaction is
// simpler than diffing.
func (h *historyStore) Save(ctx context.Context, searches []string) error {
	tx, err := h.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM recent_searches"); err != nil {
		return fmt.Errorf("clearing recent searches: %w", err)
	}
	for i, query := range searches {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO recent_searches (position, query) VALUES (?, ?)", i, query); err != nil {
			return fmt.Errorf("inserting recent search: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing recent searches: %w", err)
	}
	return nil
}
