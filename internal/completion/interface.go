package completion

import "context"

// Completer is the completion-service boundary: given a system
// instruction and user content, it returns generated text capped at
// maxTokens output tokens, or fails.
type Completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (string, error)
}
