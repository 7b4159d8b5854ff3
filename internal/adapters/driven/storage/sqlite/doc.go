// Package sqlite provides the SQLite-backed history store. The
// database lives under the astroview data directory and is migrated
// from embedded SQL files on open.
package sqlite
