package httpapi

import "errors"

var (
	// ErrUnavailable: no response was received (network/DNS failure).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized: the server no longer accepts our credential (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPaymentRequired: premium is not unlocked for the entry (HTTP 402).
	ErrPaymentRequired = errors.New("payment required")

	// ErrServerFault: 5xx, or a response body we could not interpret.
	ErrServerFault = errors.New("server fault")
)

// ValidationError carries a server-side rejection message (4xx with a
// structured {"error": ...} body). The message is intended to be shown to the
// user verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
