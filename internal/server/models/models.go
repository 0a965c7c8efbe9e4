// Package models defines the server-side persistence types.
package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"-"`
	PasswordHash string    `json:"-"`
	DateCreated  time.Time `json:"-"`
}

// JournalEntry is the authoritative copy of one journal submission.
// PremiumUnlocked and PremiumAnalysis only ever move forward:
// a webhook unlocks, insight generation writes the analysis once, and
// neither field is ever reset.
type JournalEntry struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"-"`
	Content         string    `json:"content"`
	DateCreated     time.Time `json:"date_created"`
	SentimentLabel  string    `json:"sentiment_label"`
	SentimentScore  float64   `json:"sentiment_score"`
	PremiumUnlocked bool      `json:"premium_unlocked"`
	PremiumAnalysis string    `json:"premium_analysis,omitempty"`
}
