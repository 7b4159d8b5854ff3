package tui

import "errors"

// ErrMissingExploreService is returned when the explore service is not provided.
var ErrMissingExploreService = errors.New("tui: explore service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
