package users

import (
	"context"
	"sync"
	"time"

	"moodflow/internal/common"
	"moodflow/internal/server/models"
)

// InMemoryRepository keeps users in a map. Used in tests and as a fallback
// when no database is configured.
type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[int64]models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, common.ErrorUsernameTaken
		}
	}

	r.nextID++
	user.ID = r.nextID
	user.DateCreated = time.Now()
	r.users[user.ID] = *user

	return user, nil
}

func (r *InMemoryRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}

	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	return &u, nil
}
