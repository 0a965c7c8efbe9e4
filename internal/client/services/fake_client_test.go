package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"moodflow/internal/client/httpapi"
	"moodflow/internal/client/models"
	"moodflow/internal/logging"
)

// fakeClient implements httpapi.Client for controller unit tests. Every call
// is recorded in order so tests can assert exactly which network operations
// were issued.
type fakeClient struct {
	mu    sync.Mutex
	Calls []string

	CurrentUserRet *models.User
	CurrentUserErr error

	LoginRet *models.User
	LoginErr error

	RegisterErr error
	LogoutErr   error

	ListRet []models.JournalEntry
	ListErr error

	CreateRet *models.JournalEntry
	CreateErr error

	PaymentURLRet string
	PaymentErr    error

	InsightRet string
	InsightErr error

	LastCreateText    string
	LastPaymentEntry  int64
	LastInsightEntry  int64
	LastLoginUsername string
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
}

func (f *fakeClient) count(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	f.record("user")
	return f.CurrentUserRet, f.CurrentUserErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	f.record("login")
	f.LastLoginUsername = username
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) error {
	f.record("register")
	return f.RegisterErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.record("logout")
	return f.LogoutErr
}

func (f *fakeClient) ListEntries(ctx context.Context) ([]models.JournalEntry, error) {
	f.record("list")
	return append([]models.JournalEntry(nil), f.ListRet...), f.ListErr
}

func (f *fakeClient) CreateEntry(ctx context.Context, text string) (*models.JournalEntry, error) {
	f.record("create")
	f.LastCreateText = text
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) CreatePaymentLink(ctx context.Context, entryID int64) (string, error) {
	f.record("payment-link")
	f.LastPaymentEntry = entryID
	return f.PaymentURLRet, f.PaymentErr
}

func (f *fakeClient) GenerateInsight(ctx context.Context, entryID int64) (string, error) {
	f.record("insight")
	f.LastInsightEntry = entryID
	return f.InsightRet, f.InsightErr
}

var _ httpapi.Client = (*fakeClient)(nil)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// harness wires the three controllers around one fake client.
type harness struct {
	api        *fakeClient
	state      *State
	store      *EntryStore
	controller *SessionController
	premium    *PremiumFlow
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	api := &fakeClient{}
	state := NewState()
	log := testLogger()
	store := NewEntryStore(api, state, log)
	return &harness{
		api:        api,
		state:      state,
		store:      store,
		controller: NewSessionController(api, state, store, log),
		premium:    NewPremiumFlow(api, state, store, log),
	}
}

func (h *harness) authenticate() {
	h.state.setUser(models.User{ID: 1, Username: "alice"})
}
