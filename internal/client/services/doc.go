// Package services contains the client-side controllers for MoodFlow:
// SessionController (who is logged in, and which top-level surface shows),
// EntryStore (the server-authoritative entry collection) and PremiumFlow
// (the per-entry unlock lifecycle).
//
// The three share one State container. Controllers mutate it only from fresh
// server responses; the presentation layer reads copies and never mutates.
// Any controller that observes a 401 mid-operation forces the session back to
// anonymous and aborts, so a dead credential can never leave a half-updated
// view behind.
package services
