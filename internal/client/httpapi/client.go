package httpapi

import (
	"context"

	"moodflow/internal/client/models"
)

// Client is the typed contract for the MoodFlow HTTP API consumed by the
// client-side controllers.
type Client interface {
	// CurrentUser probes the session. Returns ErrUnauthorized when no valid
	// session exists.
	CurrentUser(ctx context.Context) (*models.User, error)

	// Login exchanges credentials for a session cookie and returns the user.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// Register creates an account. It does not start a session.
	Register(ctx context.Context, username, email, password string) error

	// Logout terminates the server-side session.
	Logout(ctx context.Context) error

	// ListEntries fetches the full entry collection, newest first.
	ListEntries(ctx context.Context) ([]models.JournalEntry, error)

	// CreateEntry submits a new entry and returns the created row with
	// server-computed sentiment.
	CreateEntry(ctx context.Context, text string) (*models.JournalEntry, error)

	// CreatePaymentLink requests a hosted payment page URL for an entry.
	CreatePaymentLink(ctx context.Context, entryID int64) (string, error)

	// GenerateInsight asks the server to produce (or return the stored)
	// premium analysis for an unlocked entry.
	GenerateInsight(ctx context.Context, entryID int64) (string, error)
}
