package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"moodflow/internal/common"
	"moodflow/internal/logging"
	"moodflow/internal/server/config"
	"moodflow/internal/server/insight"
	"moodflow/internal/server/models"
	"moodflow/internal/server/payments"
	"moodflow/internal/server/repositories/entries"
	"moodflow/internal/server/sentiment"
)

// JournalService owns the entry lifecycle: creation with sentiment scoring,
// listing, premium unlock via payment webhooks, and insight generation.
type JournalService struct {
	repo     entries.Repository
	analyzer sentiment.Analyzer
	insights insight.Generator
	provider payments.Provider
	config   *config.Config
	log      logging.Logger
}

func NewJournalService(repo entries.Repository, analyzer sentiment.Analyzer, insights insight.Generator,
	provider payments.Provider, cfg *config.Config, log logging.Logger) *JournalService {
	return &JournalService{
		repo:     repo,
		analyzer: analyzer,
		insights: insights,
		provider: provider,
		config:   cfg,
		log:      log,
	}
}

// CreateEntry scores the text and stores it. Sentiment analysis is best
// effort: if the classifier is unreachable the entry is stored with a neutral
// label rather than rejected.
func (s *JournalService) CreateEntry(ctx context.Context, userID int64, text string) (*models.JournalEntry, error) {

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, common.ErrorEmptyEntry
	}

	label, score, err := s.analyzer.Analyze(ctx, text)
	if err != nil {
		s.log.Warn(ctx, "sentiment analysis failed, storing neutral", "error", err.Error())
		label, score = sentiment.NeutralLabel, sentiment.NeutralScore
	}

	entry := &models.JournalEntry{
		UserID:         userID,
		Content:        text,
		SentimentLabel: label,
		SentimentScore: score,
	}

	entry, err = s.repo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("error creating entry: %w", err)
	}

	return entry, nil
}

// ListEntries returns the user's entries, newest first.
func (s *JournalService) ListEntries(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return list, nil
}

// getOwnedEntry fetches an entry and checks it belongs to userID.
func (s *JournalService) getOwnedEntry(ctx context.Context, userID, entryID int64) (*models.JournalEntry, error) {
	entry, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, common.ErrorEntryNotOwned
	}
	return entry, nil
}

// CreatePaymentLink asks the provider for a checkout link selling the premium
// insight for one entry. The entry ID travels in the webhook metadata.
func (s *JournalService) CreatePaymentLink(ctx context.Context, userID, entryID int64) (string, error) {

	entry, err := s.getOwnedEntry(ctx, userID, entryID)
	if err != nil {
		return "", err
	}

	url, err := s.provider.CreatePaymentLink(ctx, payments.LinkRequest{
		Amount:      s.config.PaymentAmount,
		Currency:    s.config.PaymentCurrency,
		Reference:   fmt.Sprintf("moodflow_insight_%d", entry.ID),
		CallbackURL: s.config.BaseURL + "/api/payment-webhook",
		RedirectURL: s.config.BaseURL + "?payment=success",
		Metadata: map[string]string{
			"entry_id": strconv.FormatInt(entry.ID, 10),
			"product":  "premium_insight",
		},
	})
	if err != nil {
		return "", fmt.Errorf("payment link error: %w", err)
	}

	return url, nil
}

// HandlePaymentWebhook unlocks the entry named in a COMPLETE payment event.
// Events in other states, or without a usable entry ID, are ignored.
func (s *JournalService) HandlePaymentWebhook(ctx context.Context, event payments.WebhookEvent) error {

	if event.State != payments.StateComplete {
		return nil
	}

	entryID, err := strconv.ParseInt(event.Metadata.EntryID, 10, 64)
	if err != nil {
		s.log.Warn(ctx, "webhook with unparseable entry id", "entry_id", event.Metadata.EntryID)
		return nil
	}

	if err := s.repo.UnlockPremium(ctx, entryID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "webhook for unknown entry", "entry_id", entryID)
			return nil
		}
		return fmt.Errorf("error unlocking entry: %w", err)
	}

	s.log.Info(ctx, "premium unlocked", "entry_id", entryID)
	return nil
}

// GenerateInsight returns the premium analysis for an unlocked entry,
// generating and persisting it on first request. A locked entry yields
// common.ErrorPremiumLocked.
func (s *JournalService) GenerateInsight(ctx context.Context, userID, entryID int64) (string, error) {

	entry, err := s.getOwnedEntry(ctx, userID, entryID)
	if err != nil {
		return "", err
	}

	if !entry.PremiumUnlocked {
		return "", common.ErrorPremiumLocked
	}

	if entry.PremiumAnalysis != "" {
		return entry.PremiumAnalysis, nil
	}

	text, err := s.insights.Generate(ctx, entry.Content, entry.SentimentLabel)
	if err != nil {
		return "", fmt.Errorf("insight generation error: %w", err)
	}

	if err := s.repo.SaveAnalysis(ctx, entry.ID, text); err != nil {
		return "", fmt.Errorf("error saving insight: %w", err)
	}

	return text, nil
}
