package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moodflow/internal/common"
	"moodflow/internal/dbx"
	"moodflow/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {

	query :=
		`INSERT INTO journal_entries (user_id, content, sentiment_label, sentiment_score, premium_unlocked)
         VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, date_created
		 `

	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Content, entry.SentimentLabel, entry.SentimentScore, entry.PremiumUnlocked).
		Scan(&entry.ID, &entry.DateCreated)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	query :=
		`SELECT id, user_id, content, date_created, sentiment_label, sentiment_score, premium_unlocked, premium_analysis
		 FROM journal_entries
		 WHERE user_id = $1
		 ORDER BY date_created DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entries, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.JournalEntry, error) {
	query :=
		`SELECT id, user_id, content, date_created, sentiment_label, sentiment_score, premium_unlocked, premium_analysis
		 FROM journal_entries
		 WHERE id = $1
		 `

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return entry, nil
}

func (r *PostgresRepository) UnlockPremium(ctx context.Context, id int64) error {
	query :=
		`UPDATE journal_entries SET premium_unlocked = TRUE
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) SaveAnalysis(ctx context.Context, id int64, analysis string) error {
	query :=
		`UPDATE journal_entries SET premium_analysis = $1
		 WHERE id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, analysis, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// scanEntry reads one journal_entries row. premium_analysis is nullable in the
// schema; NULL maps to an empty string.
func scanEntry(scan func(dest ...any) error) (*models.JournalEntry, error) {
	entry := &models.JournalEntry{}
	var analysis sql.NullString

	err := scan(&entry.ID, &entry.UserID, &entry.Content, &entry.DateCreated,
		&entry.SentimentLabel, &entry.SentimentScore, &entry.PremiumUnlocked, &analysis)
	if err != nil {
		return nil, err
	}

	entry.PremiumAnalysis = analysis.String
	return entry, nil
}
