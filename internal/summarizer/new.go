package summarizer

import (
	"github.com/robbie-wasabi/youtext/internal/chunker"
	"github.com/robbie-wasabi/youtext/internal/completion"
	"github.com/robbie-wasabi/youtext/internal/logger"
	"github.com/robbie-wasabi/youtext/internal/tokenizer"
)

type implSummarizer struct {
	completer completion.Completer
	chunker   chunker.Chunker
	codec     tokenizer.Codec
	logger    logger.Logger
}

// New creates a Summarizer. The chunker's budget doubles as the output
// token cap on each completion request, matching the reduction's
// termination assumption that a chunk's summary fits in one chunk's
// worth of tokens.
func New(completer completion.Completer, chunk chunker.Chunker, codec tokenizer.Codec, log logger.Logger) Summarizer {
	return &implSummarizer{
		completer: completer,
		chunker:   chunk,
		codec:     codec,
		logger:    log,
	}
}
