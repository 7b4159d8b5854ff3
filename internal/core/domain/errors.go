// Package domain contains the core types for astroview: missions,
// media items, APOD entries, and the explore view model.
package domain

import "errors"

var (
	// ErrInvalidInput indicates malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPageOutOfRange indicates a pagination request outside [1, totalPages].
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrNotMediaMode indicates a pagination request while in mission mode.
	ErrNotMediaMode = errors.New("pagination is only available for media searches")

	// ErrCatalogUnavailable indicates the mission index could not be loaded.
	ErrCatalogUnavailable = errors.New("mission catalog unavailable")
)
