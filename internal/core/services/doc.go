// Package services implements the core application logic: the search
// orchestrator, the recent-search history, and the picture-of-the-day
// service. Services depend only on the driven ports; all I/O lives in
// the adapters.
package services
