package mcp

import "errors"

// ErrMissingExploreService is returned when the explore service is not provided.
var ErrMissingExploreService = errors.New("mcp: explore service is required")

// ErrApodUnavailable is returned when the APOD service is not configured.
var ErrApodUnavailable = errors.New("mcp: apod service is not configured")
