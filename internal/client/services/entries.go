package services

import (
	"context"
	"errors"
	"strings"

	"moodflow/internal/client/httpapi"
	"moodflow/internal/logging"
)

// EntryStore owns the ordered entry collection. The server copy is
// authoritative: every mutation is followed by a full refetch, and the local
// slice is only ever replaced wholesale.
type EntryStore struct {
	api   httpapi.Client
	state *State
	log   logging.Logger
}

func NewEntryStore(api httpapi.Client, state *State, log logging.Logger) *EntryStore {
	return &EntryStore{api: api, state: state, log: log}
}

// Load fetches the full collection and replaces the cache atomically. It is a
// no-op while anonymous. A 401 forces the session back to anonymous and leaves
// the previous collection in place.
func (s *EntryStore) Load(ctx context.Context) error {
	if !s.state.Authenticated() {
		return nil
	}

	entries, err := s.api.ListEntries(ctx)
	if err != nil {
		if errors.Is(err, httpapi.ErrUnauthorized) {
			s.expire(ctx)
		}
		return err
	}

	for _, e := range entries {
		if !e.Consistent() {
			// analysis on a locked entry; server bug, nothing to fix here
			s.log.Warn(ctx, "entry violates premium invariant", "entry_id", e.ID)
		}
	}

	s.state.replaceEntries(entries)
	return nil
}

// Submit sends a new entry and then re-runs Load so ordering and sentiment
// stay server-authoritative. The created entry is never appended locally.
// Blank text (after trimming) is rejected before any network call.
func (s *EntryStore) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrFieldsRequired
	}
	if !s.state.Authenticated() {
		return ErrNotLoggedIn
	}

	if _, err := s.api.CreateEntry(ctx, text); err != nil {
		if errors.Is(err, httpapi.ErrUnauthorized) {
			s.expire(ctx)
		}
		return err
	}

	// submit → reload ordering guarantees the fresh entry is visible in the
	// next render; concurrent submits race and last completed reload wins
	return s.Load(ctx)
}

// Reset drops the cached collection (used on logout).
func (s *EntryStore) Reset() {
	s.state.clearEntries()
}

func (s *EntryStore) expire(ctx context.Context) {
	if s.state.Authenticated() {
		s.log.Warn(ctx, "session expired")
	}
	s.state.clearUser()
}
