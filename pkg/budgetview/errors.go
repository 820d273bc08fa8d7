package budgetview

import (
	"errors"

	"github.com/budgetview/budgetview-go/internal/types"
)

// Sentinel errors surfaced by the client. These alias the internal values so
// errors.Is works across the transport boundary.
var (
	// ErrNotAuthenticated is returned when the backend rejects the request
	ErrNotAuthenticated = types.ErrNotAuthenticated

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = types.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = types.ErrTimeout

	// ErrNotFound is returned when a resource is not found
	ErrNotFound = types.ErrNotFound

	// ErrServerError is returned for server errors
	ErrServerError = types.ErrServerError
)

// Error is the structured request error carried by transport failures.
type Error = types.Error

// IsRetryable checks if an error is retryable
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
