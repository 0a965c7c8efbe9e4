package cli

import (
	"errors"

	"moodflow/internal/client/httpapi"
)

// userMessage translates an operation error into the line shown to the user.
// Validation messages pass through verbatim; transport and server faults
// collapse into one generic retryable notice; expiry gets its own wording so
// the user knows to log back in.
func userMessage(err error) string {
	var ve *httpapi.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, httpapi.ErrUnauthorized):
		return "Session expired. Please log in again."
	case errors.Is(err, httpapi.ErrPaymentRequired):
		return "Premium not unlocked for this entry"
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, httpapi.ErrUnavailable), errors.Is(err, httpapi.ErrServerFault):
		return "Something went wrong. Please try again."
	default:
		return err.Error()
	}
}
