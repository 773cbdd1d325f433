// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates a valid negative lookup result (e.g. a barcode
	// that is not in the product catalogue). Never retried.
	ErrNotFound = errors.New("not found")

	// ErrUpstream indicates a transport or decode failure talking to an
	// external API. Surfaced to the caller as a retryable condition.
	ErrUpstream = errors.New("upstream request failed")

	// ErrUnavailable indicates an optional collaborator is not configured.
	ErrUnavailable = errors.New("service unavailable")
)
