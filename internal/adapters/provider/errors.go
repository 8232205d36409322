package provider

import (
	"errors"
)

// Sentinel kinds for provider failures.
var (
	// ErrUnavailable covers transport failures, non-2xx statuses and
	// provider-side refusals such as rate limits.
	ErrUnavailable = errors.New("provider unavailable")
	// ErrMalformed means the response did not have the expected structure.
	ErrMalformed = errors.New("malformed provider response")
	// ErrMissingCredentials is returned before any network call when a
	// required API key is not configured.
	ErrMissingCredentials = errors.New("provider credentials missing")
)
