package summarizer

import (
	"context"
	"fmt"
)

const outlineSystemPrompt = `Create a comprehensive outline that can serve as a standalone reference. Include:
- Main topics with timestamps (if available)
- Key points and arguments
- Important examples and evidence
- Notable quotes or statements
- Definitions of technical terms
- Conclusions and takeaways

The outline should be detailed enough that someone wouldn't need to watch the video or read the transcript to understand the content fully.`

const outlineUserPrompt = "Please create a detailed outline for this transcript:\n\n%s"

// Outline generates a structured outline in one completion call. The
// transcript is not chunked; input over the chunk budget is handed to the
// completion service as-is, so the oversize case is logged rather than
// silently truncated by the backend.
func (s *implSummarizer) Outline(ctx context.Context, text string) (string, error) {
	s.logger.Info(ctx, "Generating detailed outline from transcript")

	if tokens := s.codec.Count(text); tokens > s.chunker.Budget() {
		s.logger.Warn(ctx, "Transcript is %d tokens, over the %d-token budget; the completion service may truncate it", tokens, s.chunker.Budget())
	}

	outline, err := s.completer.Complete(ctx, outlineSystemPrompt, fmt.Sprintf(outlineUserPrompt, text), s.chunker.Budget())
	if err != nil {
		return "", fmt.Errorf("create outline: %w", err)
	}
	return outline, nil
}
