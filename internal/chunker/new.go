package chunker

import (
	"github.com/robbie-wasabi/youtext/internal/tokenizer"
)

// DefaultMaxTokens is the per-chunk token budget used when none is
// configured. Matches the completion request output cap.
const DefaultMaxTokens = 4096

type implChunker struct {
	codec     tokenizer.Codec
	maxTokens int
}

// New creates a Chunker that budgets with the given codec. A non-positive
// maxTokens falls back to DefaultMaxTokens.
func New(codec tokenizer.Codec, maxTokens int) Chunker {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &implChunker{
		codec:     codec,
		maxTokens: maxTokens,
	}
}
