package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"moodflow/internal/common"
	"moodflow/internal/logging"
	"moodflow/internal/server/payments"
	"moodflow/internal/server/repositories/entries"
	"moodflow/internal/server/sentiment"
)

type fakeAnalyzer struct {
	label string
	score float64
	err   error
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, text string) (string, float64, error) {
	return f.label, f.score, f.err
}

type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, content, label string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeProvider struct {
	url     string
	err     error
	lastReq payments.LinkRequest
}

func (f *fakeProvider) CreatePaymentLink(ctx context.Context, req payments.LinkRequest) (string, error) {
	f.lastReq = req
	return f.url, f.err
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type journalHarness struct {
	svc       *JournalService
	repo      *entries.InMemoryRepository
	analyzer  *fakeAnalyzer
	generator *fakeGenerator
	provider  *fakeProvider
}

func newJournalHarness() *journalHarness {
	h := &journalHarness{
		repo:      entries.NewInMemoryRepository(),
		analyzer:  &fakeAnalyzer{label: "positive", score: 0.9},
		generator: &fakeGenerator{text: "a kind reflection"},
		provider:  &fakeProvider{url: "https://pay.test/inv-1"},
	}
	cfg := testConfig()
	cfg.BaseURL = "https://moodflow.test"
	h.svc = NewJournalService(h.repo, h.analyzer, h.generator, h.provider, cfg, testLogger())
	return h
}

func TestCreateEntry_StoresSentiment(t *testing.T) {
	ctx := context.Background()
	h := newJournalHarness()

	entry, err := h.svc.CreateEntry(ctx, 1, "  great day  ")
	require.NoError(t, err)
	require.Equal(t, "great day", entry.Content)
	require.Equal(t, "positive", entry.SentimentLabel)
	require.InDelta(t, 0.9, entry.SentimentScore, 1e-9)
	require.False(t, entry.PremiumUnlocked)
}

func TestCreateEntry_EmptyText(t *testing.T) {
	h := newJournalHarness()

	_, err := h.svc.CreateEntry(context.Background(), 1, "   ")
	require.ErrorIs(t, err, common.ErrorEmptyEntry)
}

func TestCreateEntry_AnalyzerDownFallsBackToNeutral(t *testing.T) {
	h := newJournalHarness()
	h.analyzer.err = errors.New("inference api down")

	entry, err := h.svc.CreateEntry(context.Background(), 1, "meh")
	require.NoError(t, err)
	require.Equal(t, sentiment.NeutralLabel, entry.SentimentLabel)
	require.InDelta(t, sentiment.NeutralScore, entry.SentimentScore, 1e-9)
}

func TestListEntries_NewestFirst(t *testing.T) {
	ctx := context.Background()
	h := newJournalHarness()

	first, err := h.svc.CreateEntry(ctx, 1, "first")
	require.NoError(t, err)
	second, err := h.svc.CreateEntry(ctx, 1, "second")
	require.NoError(t, err)
	_, err = h.svc.CreateEntry(ctx, 2, "someone else")
	require.NoError(t, err)

	list, err := h.svc.ListEntries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}

func TestCreatePaymentLink_BuildsRequest(t *testing.T) {
	ctx := context.Background()
	h := newJournalHarness()

	entry, err := h.svc.CreateEntry(ctx, 1, "unlock me")
	require.NoError(t, err)

	url, err := h.svc.CreatePaymentLink(ctx, 1, entry.ID)
	require.NoError(t, err)
	require.Equal(t, "https://pay.test/inv-1", url)

	req := h.provider.lastReq
	require.Equal(t, 50, req.Amount)
	require.Equal(t, "KES", req.Currency)
	require.Equal(t, "moodflow_insight_1", req.Reference)
	require.Equal(t, "https://moodflow.test/api/payment-webhook", req.CallbackURL)
	require.Equal(t, "https://moodflow.test?payment=success", req.RedirectURL)
	require.Equal(t, "1", req.Metadata["entry_id"])
	require.Equal(t, "premium_insight", req.Metadata["product"])
}

func TestCreatePaymentLink_NotOwned(t *testing.T) {
	ctx := context.Background()
	h := newJournalHarness()

	entry, err := h.svc.CreateEntry(ctx, 1, "mine")
	require.NoError(t, err)

	_, err = h.svc.CreatePaymentLink(ctx, 2, entry.ID)
	require.ErrorIs(t, err, common.ErrorEntryNotOwned)
}

func TestHandlePaymentWebhook_UnlocksEntry(t *testing.T) {
	ctx := context.Background()
	h := newJournalHarness()

	entry, err := h.svc.CreateEntry(ctx, 1, "unlock me")
	require.NoError(t, err)

	event := payments.WebhookEvent{State: payments.StateComplete}
	event.Metadata.EntryID = "1"
	require.NoError(t, h.svc.HandlePaymentWebhook(ctx, event))

	got, err := h.repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.True(t, got.PremiumUnlocked)
}

func TestHandlePaymentWebhook_IgnoresOtherStates(t *testing.T) {
	ctx := context.Background()
	h := newJournalHarness()

	entry, err := h.svc.CreateEntry(ctx, 1, "still locked")
	require.NoError(t, err)

	event := payments.WebhookEvent{State: "PENDING"}
	event.Metadata.EntryID = "1"
	require.NoError(t, h.svc.HandlePaymentWebhook(ctx, event))

	got, err := h.repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.False(t, got.PremiumUnlocked)
}

func TestHandlePaymentWebhook_UnknownEntryIgnored(t *testing.T) {
	h := newJournalHarness()

	event := payments.WebhookEvent{State: payments.StateComplete}
	event.Metadata.EntryID = "99"
	require.NoError(t, h.svc.HandlePaymentWebhook(context.Background(), event))

	event.Metadata.EntryID = "not-a-number"
	require.NoError(t, h.svc.HandlePaymentWebhook(context.Background(), event))
}

func TestGenerateInsight_LockedEntry(t *testing.T) {
	ctx := context.Background()
	h := newJournalHarness()

	entry, err := h.svc.CreateEntry(ctx, 1, "locked")
	require.NoError(t, err)

	_, err = h.svc.GenerateInsight(ctx, 1, entry.ID)
	require.ErrorIs(t, err, common.ErrorPremiumLocked)
	require.Zero(t, h.generator.calls)
}

func TestGenerateInsight_GeneratesOnceAndCaches(t *testing.T) {
	ctx := context.Background()
	h := newJournalHarness()

	entry, err := h.svc.CreateEntry(ctx, 1, "unlocked")
	require.NoError(t, err)
	require.NoError(t, h.repo.UnlockPremium(ctx, entry.ID))

	text, err := h.svc.GenerateInsight(ctx, 1, entry.ID)
	require.NoError(t, err)
	require.Equal(t, "a kind reflection", text)
	require.Equal(t, 1, h.generator.calls)

	// second call served from storage
	text, err = h.svc.GenerateInsight(ctx, 1, entry.ID)
	require.NoError(t, err)
	require.Equal(t, "a kind reflection", text)
	require.Equal(t, 1, h.generator.calls)
}

func TestGenerateInsight_GeneratorFailureNotCached(t *testing.T) {
	ctx := context.Background()
	h := newJournalHarness()

	entry, err := h.svc.CreateEntry(ctx, 1, "unlocked")
	require.NoError(t, err)
	require.NoError(t, h.repo.UnlockPremium(ctx, entry.ID))

	h.generator.err = errors.New("llm down")
	_, err = h.svc.GenerateInsight(ctx, 1, entry.ID)
	require.Error(t, err)

	got, err := h.repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.Empty(t, got.PremiumAnalysis)
}

func TestGenerateInsight_NotFound(t *testing.T) {
	h := newJournalHarness()

	_, err := h.svc.GenerateInsight(context.Background(), 1, 99)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
