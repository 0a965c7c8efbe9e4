package entries

import (
	"context"

	"moodflow/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]models.JournalEntry, error)
	GetByID(ctx context.Context, id int64) (*models.JournalEntry, error)
	UnlockPremium(ctx context.Context, id int64) error
	SaveAnalysis(ctx context.Context, id int64, analysis string) error
}
