package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"moodflow/internal/logging"
	"moodflow/internal/server/config"
	"moodflow/internal/server/models"
	"moodflow/internal/server/payments"
	entriesrepo "moodflow/internal/server/repositories/entries"
	usersrepo "moodflow/internal/server/repositories/users"
	"moodflow/internal/server/services"
)

type fakeAnalyzer struct{}

func (fakeAnalyzer) Analyze(ctx context.Context, text string) (string, float64, error) {
	return "positive", 0.9, nil
}

type fakeGenerator struct {
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, content, label string) (string, error) {
	f.calls++
	return "a kind reflection", nil
}

type fakeProvider struct{}

func (fakeProvider) CreatePaymentLink(ctx context.Context, req payments.LinkRequest) (string, error) {
	return "https://pay.test/inv-1", nil
}

type harness struct {
	srv       *httptest.Server
	client    *http.Client
	entries   *entriesrepo.InMemoryRepository
	generator *fakeGenerator
	cfg       *config.Config
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.TokenValidityDuration = time.Minute
	cfg.PaymentSecretKey = "webhook-secret"

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	entries := entriesrepo.NewInMemoryRepository()
	generator := &fakeGenerator{}

	users := services.NewUserService(usersrepo.NewInMemoryRepository(), cfg)
	journal := services.NewJournalService(entries, fakeAnalyzer{}, generator, fakeProvider{}, cfg, log)

	server := NewServer(cfg, log, users, journal)
	srv := httptest.NewServer(server.Router())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &harness{
		srv:       srv,
		client:    &http.Client{Jar: jar},
		entries:   entries,
		generator: generator,
		cfg:       cfg,
	}
}

func (h *harness) doJSON(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, h.srv.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	return resp, data
}

func (h *harness) registerAndLogin(t *testing.T, username string) {
	t.Helper()

	resp, _ := h.doJSON(t, http.MethodPost, "/api/register", map[string]string{
		"username": username, "email": username + "@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = h.doJSON(t, http.MethodPost, "/api/login", map[string]string{
		"username": username, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	h := newHarness(t)

	resp, body := h.doJSON(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "healthy")
	require.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestAuthFlow(t *testing.T) {
	h := newHarness(t)

	// anonymous requests are rejected
	resp, body := h.doJSON(t, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.JSONEq(t, `{"error": "authentication required"}`, string(body))

	h.registerAndLogin(t, "alice")

	resp, body = h.doJSON(t, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.Unmarshal(body, &user))
	require.Equal(t, "alice", user.Username)
	require.NotZero(t, user.ID)

	// logout clears the session cookie
	resp, _ = h.doJSON(t, http.MethodPost, "/api/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = h.doJSON(t, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	h := newHarness(t)
	h.registerAndLogin(t, "alice")

	resp, body := h.doJSON(t, http.MethodPost, "/api/register", map[string]string{
		"username": "alice", "email": "other@example.com", "password": "secret456",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Contains(t, string(body), "username already taken")
}

func TestLogin_BadCredentials(t *testing.T) {
	h := newHarness(t)
	h.registerAndLogin(t, "alice")

	resp, _ := h.doJSON(t, http.MethodPost, "/api/login", map[string]string{
		"username": "alice", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEntries_CreateAndList(t *testing.T) {
	h := newHarness(t)
	h.registerAndLogin(t, "alice")

	resp, body := h.doJSON(t, http.MethodPost, "/api/entry", map[string]string{"text": "first entry"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entry models.JournalEntry
	require.NoError(t, json.Unmarshal(body, &entry))
	require.Equal(t, "first entry", entry.Content)
	require.Equal(t, "positive", entry.SentimentLabel)

	resp, _ = h.doJSON(t, http.MethodPost, "/api/entry", map[string]string{"text": "second entry"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = h.doJSON(t, http.MethodGet, "/api/entries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []models.JournalEntry
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 2)
	require.Equal(t, "second entry", list[0].Content)
	require.Equal(t, "first entry", list[1].Content)
}

func TestCreateEntry_EmptyText(t *testing.T) {
	h := newHarness(t)
	h.registerAndLogin(t, "alice")

	resp, body := h.doJSON(t, http.MethodPost, "/api/entry", map[string]string{"text": "   "})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, `{"error": "Text is required"}`, string(body))
}

func TestEntries_ScopedToUser(t *testing.T) {
	h := newHarness(t)
	h.registerAndLogin(t, "alice")

	resp, _ := h.doJSON(t, http.MethodPost, "/api/entry", map[string]string{"text": "alice's entry"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	h.registerAndLogin(t, "bob")

	resp, body := h.doJSON(t, http.MethodGet, "/api/entries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `[]`, string(body))
}

func TestCreatePaymentLink(t *testing.T) {
	h := newHarness(t)
	h.registerAndLogin(t, "alice")

	resp, _ := h.doJSON(t, http.MethodPost, "/api/entry", map[string]string{"text": "unlock me"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := h.doJSON(t, http.MethodPost, "/api/create-payment-link", map[string]int64{"entry_id": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"payment_url": "https://pay.test/inv-1"}`, string(body))

	resp, _ = h.doJSON(t, http.MethodPost, "/api/create-payment-link", map[string]int64{"entry_id": 99})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = h.doJSON(t, http.MethodPost, "/api/create-payment-link", map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.JSONEq(t, `{"error": "Entry ID is required"}`, string(body))
}

func postWebhook(t *testing.T, h *harness, payload, secret string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, h.srv.URL+"/api/payment-webhook", bytes.NewReader([]byte(payload)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(payments.SignatureHeader, payments.Sign([]byte(payload), secret))

	resp, err := h.client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestPremiumFlow(t *testing.T) {
	h := newHarness(t)
	h.registerAndLogin(t, "alice")

	resp, _ := h.doJSON(t, http.MethodPost, "/api/entry", map[string]string{"text": "tough week"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// insight before payment is refused
	resp, body := h.doJSON(t, http.MethodPost, "/api/generate-insight", map[string]int64{"entry_id": 1})
	require.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	require.Contains(t, string(body), "premium not unlocked")

	payload := `{"state": "COMPLETE", "metadata": {"entry_id": "1", "product": "premium_insight"}}`

	// tampered signature is rejected and does not unlock
	wresp := postWebhook(t, h, payload, "wrong-secret")
	require.Equal(t, http.StatusUnauthorized, wresp.StatusCode)

	wresp = postWebhook(t, h, payload, h.cfg.PaymentSecretKey)
	require.Equal(t, http.StatusOK, wresp.StatusCode)

	resp, body = h.doJSON(t, http.MethodPost, "/api/generate-insight", map[string]int64{"entry_id": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"insight": "a kind reflection"}`, string(body))
	require.Equal(t, 1, h.generator.calls)

	// repeat request is served from storage
	resp, _ = h.doJSON(t, http.MethodPost, "/api/generate-insight", map[string]int64{"entry_id": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, h.generator.calls)
}

func TestGenerateInsight_OtherUsersEntryHidden(t *testing.T) {
	h := newHarness(t)
	h.registerAndLogin(t, "alice")

	resp, _ := h.doJSON(t, http.MethodPost, "/api/entry", map[string]string{"text": "private"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	h.registerAndLogin(t, "bob")

	resp, body := h.doJSON(t, http.MethodPost, "/api/generate-insight", map[string]int64{"entry_id": 1})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Contains(t, string(body), "Entry not found")
}
