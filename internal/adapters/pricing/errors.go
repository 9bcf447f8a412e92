package pricing

import (
	"errors"
	"fmt"
)

// ErrRateLimited marks a transient HTTP 429 from the pricing service. It is
// retried internally and never escapes the provider.
var ErrRateLimited = errors.New("pricing service rate limit exceeded")

// ErrUnexpectedFormat marks a response the provider could not interpret
// (missing quotes, non-string amount, wrong JSON shape). Fatal, not retried.
var ErrUnexpectedFormat = errors.New("pricing service response has unexpected format")

// ErrFlightNotModeled is returned by the fixture provider when a requested
// flight has no entry in its table. Used to catch test-data gaps; never
// silently defaulted.
var ErrFlightNotModeled = errors.New("flight not modeled in fixture table")

// StatusError is a non-success, non-rate-limit HTTP status from the pricing
// service. Fatal, not retried.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pricing service returned status %d: %s", e.Code, e.Body)
}
