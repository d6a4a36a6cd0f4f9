package summarizer

import "context"

// Summarizer turns transcript text into derivative artifacts via the
// completion service.
type Summarizer interface {
	// Summarize reduces arbitrarily long text to a single summary,
	// re-chunking and re-summarizing until one summary remains.
	Summarize(ctx context.Context, text string) (string, error)
	// Outline generates a structured reference outline in a single
	// completion call, without chunking.
	Outline(ctx context.Context, text string) (string, error)
}
