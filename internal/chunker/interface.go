package chunker

// Chunker splits text into pieces that each fit a token budget.
type Chunker interface {
	// Split partitions text into in-order chunks of at most the budget's
	// worth of tokens. Empty text yields zero chunks.
	Split(text string) []string
	// Budget reports the per-chunk token limit.
	Budget() int
}
