// Package httpapi contains the typed API client the MoodFlow CLI talks to
// the backend with.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the Client interface) covering the whole
//     API surface: session probe, login/register/logout, entry listing and
//     creation, payment-link creation, and insight generation.
//  2. A concrete net/http implementation (see HTTPClient) that keeps the
//     session cookie in a jar and maps HTTP status codes to the error
//     taxonomy the controllers act on.
//
// # Error Handling
//
// Failure classes are exposed as sentinel errors matched with errors.Is
// (ErrUnavailable, ErrUnauthorized, ErrPaymentRequired, ErrServerFault) plus
// *ValidationError, matched with errors.As, which carries a server-provided
// message safe to show verbatim.
//
// All operations accept a context.Context and honor cancellation.
package httpapi
