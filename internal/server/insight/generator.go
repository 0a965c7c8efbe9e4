// Package insight produces the premium reflection text for an unlocked
// journal entry using an LLM chat-completions API.
package insight

import "context"

// Generator writes a short coaching comment for a journal entry given its
// text and overall sentiment.
type Generator interface {
	Generate(ctx context.Context, entryContent, sentimentLabel string) (string, error)
}
