package services

import (
	"sync"

	"moodflow/internal/client/models"
)

// State is the single mutable container for client-side session and entry
// state. It is owned by the controllers and handed to them by reference;
// the presentation layer only ever sees copies.
//
// Core operations run cooperatively, but the delayed post-payment reload
// fires from a timer goroutine, so access is guarded by a mutex.
type State struct {
	mu      sync.Mutex
	user    *models.User
	entries []models.JournalEntry
}

func NewState() *State {
	return &State{}
}

// Authenticated reports whether a user session is active.
func (s *State) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// CurrentUser returns a copy of the authenticated user, or nil when anonymous.
func (s *State) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *State) setUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

func (s *State) clearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// Entries returns a copy of the current collection in server order.
func (s *State) Entries() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JournalEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// EntryByID looks up one entry in the local cache.
func (s *State) EntryByID(id int64) (models.JournalEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}

// replaceEntries swaps the whole collection atomically. Readers never observe
// a mix of old and new entries.
func (s *State) replaceEntries(entries []models.JournalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

func (s *State) clearEntries() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
