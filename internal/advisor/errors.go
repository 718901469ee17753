package advisor

import "errors"

// ErrNotConfigured is returned when no API key was supplied at startup. The
// client cannot be constructed without one.
var ErrNotConfigured = errors.New("advisory client not configured: missing API key")

// GenerationError carries a generic user-facing message for a failed advisory
// operation. The underlying cause is logged for diagnostics, not surfaced.
type GenerationError struct {
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
