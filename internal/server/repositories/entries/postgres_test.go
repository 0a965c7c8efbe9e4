package entries

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"moodflow/internal/common"
	"moodflow/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var entryColumns = []string{"id", "user_id", "content", "date_created", "sentiment_label", "sentiment_score", "premium_unlocked", "premium_analysis"}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+journal_entries\s*\(user_id,\s*content,\s*sentiment_label,\s*sentiment_score,\s*premium_unlocked\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id,\s*date_created\s*$`

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "date_created"}).AddRow(7, created)
	mock.ExpectQuery(q).
		WithArgs(int64(1), "felt good today", "positive", 0.98, false).
		WillReturnRows(rows)

	e := &models.JournalEntry{UserID: 1, Content: "felt good today", SentimentLabel: "positive", SentimentScore: 0.98}
	got, err := repo.Create(context.Background(), e)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 7 || !got.DateCreated.Equal(created) {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestListByUser_NewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*FROM\s+journal_entries\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+date_created\s+DESC,\s*id\s+DESC\s*$`

	now := time.Now()
	rows := sqlmock.NewRows(entryColumns).
		AddRow(2, 1, "second", now, "negative", 0.7, false, nil).
		AddRow(1, 1, "first", now.Add(-time.Hour), "positive", 0.9, true, "some insight")
	mock.ExpectQuery(q).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("unexpected entries: %+v", got)
	}
	if got[0].PremiumAnalysis != "" {
		t.Fatalf("NULL premium_analysis should scan as empty string, got %q", got[0].PremiumAnalysis)
	}
	if got[1].PremiumAnalysis != "some insight" {
		t.Fatalf("unexpected premium_analysis: %q", got[1].PremiumAnalysis)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+`).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestUnlockPremium_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+journal_entries\s+SET\s+premium_unlocked\s*=\s*TRUE\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UnlockPremium(context.Background(), 7); err != nil {
		t.Fatalf("UnlockPremium error: %v", err)
	}
}

func TestUnlockPremium_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^UPDATE\s+journal_entries`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UnlockPremium(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestSaveAnalysis_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+journal_entries\s+SET\s+premium_analysis\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs("a kind reflection", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveAnalysis(context.Background(), 7, "a kind reflection"); err != nil {
		t.Fatalf("SaveAnalysis error: %v", err)
	}
}
