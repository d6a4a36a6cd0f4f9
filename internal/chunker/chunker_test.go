package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordCodec is a deterministic stand-in for the tiktoken codec: one token
// per whitespace-separated word, IDs assigned in order of first sight.
type wordCodec struct {
	words []string
	ids   map[string]int
}

func newWordCodec() *wordCodec {
	return &wordCodec{ids: make(map[string]int)}
}

func (c *wordCodec) Encode(text string) []int {
	var tokens []int
	for _, w := range strings.Fields(text) {
		id, ok := c.ids[w]
		if !ok {
			id = len(c.words)
			c.ids[w] = id
			c.words = append(c.words, w)
		}
		tokens = append(tokens, id)
	}
	return tokens
}

func (c *wordCodec) Decode(tokens []int) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = c.words[tok]
	}
	return strings.Join(parts, " ")
}

func (c *wordCodec) Count(text string) int {
	return len(c.Encode(text))
}

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func TestSplitPartition(t *testing.T) {
	tests := []struct {
		name       string
		tokenCount int
		maxTokens  int
		wantChunks int
	}{
		{"fits in one chunk", 4, 10, 1},
		{"exact multiple", 20, 10, 2},
		{"remainder chunk", 25, 10, 3},
		{"budget of one", 5, 1, 5},
		{"single token", 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := newWordCodec()
			text := words(tt.tokenCount)
			chunks := New(codec, tt.maxTokens).Split(text)

			require.Len(t, chunks, tt.wantChunks)

			// Each chunk stays within the budget, and re-encoding the
			// chunks in order reproduces the original token sequence.
			var reassembled []int
			for _, chunk := range chunks {
				toks := codec.Encode(chunk)
				assert.LessOrEqual(t, len(toks), tt.maxTokens)
				reassembled = append(reassembled, toks...)
			}
			assert.Equal(t, codec.Encode(text), reassembled)
		})
	}
}

func TestSplitEmptyText(t *testing.T) {
	chunks := New(newWordCodec(), 10).Split("")
	assert.Empty(t, chunks, "empty input must yield zero chunks, not one empty chunk")
}

func TestNewDefaultBudget(t *testing.T) {
	c := New(newWordCodec(), 0)
	assert.Equal(t, DefaultMaxTokens, c.Budget())

	c = New(newWordCodec(), -5)
	assert.Equal(t, DefaultMaxTokens, c.Budget())

	c = New(newWordCodec(), 128)
	assert.Equal(t, 128, c.Budget())
}
