package summarizer

import (
	"context"
	"fmt"
	"strings"
)

const summarySystemPrompt = "You are a helpful assistant that summarizes text."

const summaryUserPrompt = "Please summarize the following text:\n\n%s"

// Summarize reduces text to one summary. Each pass chunks the text,
// summarizes every chunk in order, and joins the summaries; the loop runs
// again on the joined text until a pass produces a single summary. This
// is the recursive reduction written as a worklist loop, so pathological
// completion output grows passes instead of stack frames. Termination
// relies on summaries being shorter than their source chunks; that is an
// external-service trust assumption, not something guarded here.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	s.logger.Info(ctx, "Summarizing text of %d tokens", s.codec.Count(text))

	for pass := 1; ; pass++ {
		chunks := s.chunker.Split(text)
		if len(chunks) == 0 {
			return "", fmt.Errorf("nothing to summarize: text is empty")
		}

		s.logger.Info(ctx, "Reduction pass %d: %d chunk(s)", pass, len(chunks))

		summaries := make([]string, 0, len(chunks))
		for i, chunk := range chunks {
			s.logger.Info(ctx, "Processing chunk %d/%d (%d tokens)", i+1, len(chunks), s.codec.Count(chunk))

			summary, err := s.completer.Complete(ctx, summarySystemPrompt, fmt.Sprintf(summaryUserPrompt, chunk), s.chunker.Budget())
			if err != nil {
				return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
			}
			summaries = append(summaries, strings.TrimSpace(summary))
		}

		if len(summaries) == 1 {
			return summaries[0], nil
		}

		text = strings.Join(summaries, " ")
	}
}
