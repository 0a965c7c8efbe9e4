package services

import (
	"context"
	"errors"
	"time"

	"moodflow/internal/client/httpapi"
	"moodflow/internal/client/models"
	"moodflow/internal/logging"
)

// defaultReloadDelay gives the provider's webhook a moment to land before the
// post-payment refresh.
const defaultReloadDelay = time.Second

// PremiumFlow drives the per-entry unlock lifecycle:
// locked → payment initiated → unlocked → insight generated. Payment
// completion happens out of band, so the flow never advances state locally;
// it only refetches and re-derives.
type PremiumFlow struct {
	api         httpapi.Client
	state       *State
	store       *EntryStore
	log         logging.Logger
	reloadDelay time.Duration

	// schedule is a seam for tests; production wiring uses time.AfterFunc.
	schedule func(d time.Duration, f func())
}

func NewPremiumFlow(api httpapi.Client, state *State, store *EntryStore, log logging.Logger) *PremiumFlow {
	return &PremiumFlow{
		api:         api,
		state:       state,
		store:       store,
		log:         log,
		reloadDelay: defaultReloadDelay,
		schedule:    func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// InitiatePayment requests a hosted payment page for a locked entry and
// returns its URL. The caller hands the URL to the user; completion is
// observed only through the later return navigation and webhook-driven
// server state.
func (p *PremiumFlow) InitiatePayment(ctx context.Context, entryID int64) (string, error) {
	if !p.state.Authenticated() {
		return "", ErrNotLoggedIn
	}

	entry, ok := p.state.EntryByID(entryID)
	if !ok {
		return "", ErrEntryNotFound
	}
	if models.DerivePremiumState(entry) != models.PremiumLocked {
		return "", ErrAlreadyUnlocked
	}

	url, err := p.api.CreatePaymentLink(ctx, entryID)
	if err != nil {
		if errors.Is(err, httpapi.ErrUnauthorized) {
			p.expire(ctx)
		}
		return "", err
	}
	return url, nil
}

// HandlePaymentReturn consumes the one-shot success indicator from the return
// navigation. When present it schedules exactly one delayed reload — a
// best-effort convergence window for the provider webhook — and reports true.
// If the webhook has not landed by then the entry simply still renders as
// locked; no further retry happens here.
func (p *PremiumFlow) HandlePaymentReturn(ctx context.Context, nav *Navigation) bool {
	if nav == nil || !nav.ConsumePaymentSuccess() {
		return false
	}

	p.log.Info(ctx, "payment return detected, scheduling refresh", "delay", p.reloadDelay)
	p.schedule(p.reloadDelay, func() {
		// Load no-ops if a logout happened in the interim.
		if err := p.store.Load(context.Background()); err != nil {
			p.log.Warn(ctx, "post-payment refresh failed", "err", err)
		}
	})
	return true
}

// GenerateInsight requests the premium analysis for an entry and reloads the
// collection so the stored text becomes visible. If the local cache already
// holds the analysis it is returned without a network call. A 402 from the
// server means the entry is not actually unlocked — a client/server desync
// surfaced to the user as-is, never retried and never followed by a reload.
func (p *PremiumFlow) GenerateInsight(ctx context.Context, entryID int64) (string, error) {
	if !p.state.Authenticated() {
		return "", ErrNotLoggedIn
	}

	entry, ok := p.state.EntryByID(entryID)
	if !ok {
		return "", ErrEntryNotFound
	}
	if models.DerivePremiumState(entry) == models.PremiumInsightGenerated {
		return entry.PremiumAnalysis, nil
	}

	// A locally-locked entry may have been unlocked server-side since the
	// last reload, so the request is attempted either way; the server is
	// the authority and answers 402 when it truly is locked.
	insight, err := p.api.GenerateInsight(ctx, entryID)
	if err != nil {
		if errors.Is(err, httpapi.ErrUnauthorized) {
			p.expire(ctx)
		}
		return "", err
	}

	if err := p.store.Load(ctx); err != nil {
		p.log.Warn(ctx, "reload after insight failed", "err", err)
	}
	return insight, nil
}

func (p *PremiumFlow) expire(ctx context.Context) {
	if p.state.Authenticated() {
		p.log.Warn(ctx, "session expired")
	}
	p.state.clearUser()
}
