// Package models defines the journal entry types shared by the client
// services and the presentation layer.
package models

import (
	"strings"
	"time"
)

// JournalEntry is the client-side copy of one journal submission. The server
// copy is authoritative: apart from premium_unlocked/premium_analysis, which
// only ever move forward (locked → unlocked → analyzed), entries are immutable
// and the local slice is replaced wholesale after every reload.
type JournalEntry struct {
	ID              int64     `json:"id"`
	Content         string    `json:"content"`
	DateCreated     time.Time `json:"date_created"`
	SentimentLabel  string    `json:"sentiment_label"`
	SentimentScore  float64   `json:"sentiment_score"`
	PremiumUnlocked bool      `json:"premium_unlocked"`
	PremiumAnalysis string    `json:"premium_analysis,omitempty"`
}

// Consistent reports whether the entry satisfies the premium invariant:
// an analysis can only exist for an unlocked entry.
func (e JournalEntry) Consistent() bool {
	return e.PremiumAnalysis == "" || e.PremiumUnlocked
}

// PremiumState is the per-entry unlock lifecycle. It is never stored: it is
// derived from PremiumUnlocked and PremiumAnalysis on fresh server data and
// must not be advanced speculatively on the client.
type PremiumState int

const (
	PremiumLocked PremiumState = iota
	PremiumUnlocked
	PremiumInsightGenerated
)

func (s PremiumState) String() string {
	switch s {
	case PremiumLocked:
		return "locked"
	case PremiumUnlocked:
		return "unlocked"
	case PremiumInsightGenerated:
		return "insight_generated"
	default:
		return "unknown"
	}
}

// DerivePremiumState computes the unlock state from the two entry fields.
func DerivePremiumState(e JournalEntry) PremiumState {
	if !e.PremiumUnlocked {
		return PremiumLocked
	}
	if e.PremiumAnalysis == "" {
		return PremiumUnlocked
	}
	return PremiumInsightGenerated
}

// SentimentKind buckets arbitrary model labels into the three categories the
// UI distinguishes.
type SentimentKind int

const (
	SentimentNeutral SentimentKind = iota
	SentimentPositive
	SentimentNegative
)

// KindOfSentiment matches the label case-insensitively, treating anything that
// is neither positive nor negative as neutral.
func KindOfSentiment(label string) SentimentKind {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "positive"):
		return SentimentPositive
	case strings.Contains(l, "negative"):
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
