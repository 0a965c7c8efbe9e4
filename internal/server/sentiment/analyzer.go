// Package sentiment classifies journal text via the Hugging Face inference
// API. Callers treat classification as best effort: on any failure the
// service layer falls back to a neutral result rather than rejecting the
// entry.
package sentiment

import "context"

// Neutral is the fallback classification used when the inference API is
// unreachable or returns something unusable.
const (
	NeutralLabel = "NEUTRAL"
	NeutralScore = 0.5
)

// Analyzer scores a piece of text, returning the winning label and its
// confidence.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (label string, score float64, err error)
}
