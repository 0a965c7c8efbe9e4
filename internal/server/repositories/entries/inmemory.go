package entries

import (
	"context"
	"sort"
	"sync"
	"time"

	"moodflow/internal/common"
	"moodflow/internal/server/models"
)

// InMemoryRepository keeps journal entries in a map. Used in tests and as a
// fallback when no database is configured.
type InMemoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	entries map[int64]models.JournalEntry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{entries: make(map[int64]models.JournalEntry)}
}

func (r *InMemoryRepository) Create(ctx context.Context, entry *models.JournalEntry) (*models.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	entry.DateCreated = time.Now()
	r.entries[entry.ID] = *entry

	return entry, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := []models.JournalEntry{}
	for _, e := range r.entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}

	// newest first, ties broken by descending ID
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].DateCreated.Equal(entries[j].DateCreated) {
			return entries[i].DateCreated.After(entries[j].DateCreated)
		}
		return entries[i].ID > entries[j].ID
	})

	return entries, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*models.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &e, nil
}

func (r *InMemoryRepository) UnlockPremium(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return common.ErrorNotFound
	}

	e.PremiumUnlocked = true
	r.entries[id] = e

	return nil
}

func (r *InMemoryRepository) SaveAnalysis(ctx context.Context, id int64, analysis string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return common.ErrorNotFound
	}

	e.PremiumAnalysis = analysis
	r.entries[id] = e

	return nil
}
