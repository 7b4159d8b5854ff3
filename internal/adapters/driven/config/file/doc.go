// Package file provides the TOML configuration store. Configuration
// lives at ~/.astroview/config.toml; the NASA_API_KEY environment
// variable overrides the stored key, and a filesystem watcher makes
// edits to the file visible to long-running sessions.
package file
