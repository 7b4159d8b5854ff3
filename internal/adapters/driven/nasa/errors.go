package nasa

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// StatusError represents a non-2xx response from a NASA API.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nasa: unexpected status %d (URL: %s)", e.StatusCode, e.URL)
}

// RateLimitError represents an exhausted api.nasa.gov quota.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("nasa: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// IsNotFound checks if the error indicates a missing resource.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsRateLimited checks if the error indicates an exhausted quota.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}
