package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbie-wasabi/youtext/internal/chunker"
	"github.com/robbie-wasabi/youtext/internal/logger"
)

// wordCodec tokenizes one token per word, deterministic and offline.
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

// stubCompleter counts calls and answers from a canned function.
type stubCompleter struct {
	calls     int
	maxTokens []int
	respond   func(call int, system, user string) (string, error)
}

func (s *stubCompleter) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	s.calls++
	s.maxTokens = append(s.maxTokens, maxTokens)
	return s.respond(s.calls, system, user)
}

func newSummarizer(stub *stubCompleter, budget int) Summarizer {
	codec := newWordCodec()
	return New(stub, chunker.New(codec, budget), codec, logger.New("error"))
}

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func TestSummarizeSingleChunk(t *testing.T) {
	stub := &stubCompleter{respond: func(call int, system, user string) (string, error) {
		return "the summary", nil
	}}

	got, err := newSummarizer(stub, 10).Summarize(context.Background(), words(7))
	require.NoError(t, err)

	assert.Equal(t, "the summary", got)
	assert.Equal(t, 1, stub.calls, "a single chunk must mean exactly one completion call")
	assert.Equal(t, []int{10}, stub.maxTokens, "output cap must be the chunk budget")
}

func TestSummarizeMultiChunkReduction(t *testing.T) {
	stub := &stubCompleter{respond: func(call int, system, user string) (string, error) {
		return "short fixed summary", nil
	}}

	// 25 words at a 10-token budget → 3 chunks in pass one, then the
	// three joined 3-token summaries fit in one chunk → one final call.
	got, err := newSummarizer(stub, 10).Summarize(context.Background(), words(25))
	require.NoError(t, err)

	assert.Equal(t, "short fixed summary", got)
	assert.Equal(t, 4, stub.calls, "3 chunk calls plus exactly one reduction pass")
}

func TestSummarizeChunkOrderPreserved(t *testing.T) {
	var seen []string
	stub := &stubCompleter{respond: func(call int, system, user string) (string, error) {
		seen = append(seen, user)
		return fmt.Sprintf("s%d", call), nil
	}}

	_, err := newSummarizer(stub, 5).Summarize(context.Background(), words(10))
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(seen), 2)
	assert.Contains(t, seen[0], "w0", "first chunk first")
	assert.Contains(t, seen[1], "w5", "second chunk second")
}

func TestSummarizeCompletionFailureAborts(t *testing.T) {
	boom := errors.New("quota exceeded")
	stub := &stubCompleter{respond: func(call int, system, user string) (string, error) {
		if call == 2 {
			return "", boom
		}
		return "ok", nil
	}}

	_, err := newSummarizer(stub, 10).Summarize(context.Background(), words(25))
	require.Error(t, err)

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "chunk 2/3")
	assert.Equal(t, 2, stub.calls, "no further chunks after a failure")
}

func TestSummarizeEmptyText(t *testing.T) {
	stub := &stubCompleter{respond: func(call int, system, user string) (string, error) {
		t.Fatal("completion service must not be called for empty text")
		return "", nil
	}}

	_, err := newSummarizer(stub, 10).Summarize(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 0, stub.calls)
}

func TestOutlineSingleCall(t *testing.T) {
	stub := &stubCompleter{respond: func(call int, system, user string) (string, error) {
		assert.Contains(t, system, "comprehensive outline")
		assert.Contains(t, user, "w0")
		return "- topic one\n- topic two", nil
	}}

	// Well over the budget: outline must still make exactly one call.
	got, err := newSummarizer(stub, 10).Outline(context.Background(), words(50))
	require.NoError(t, err)

	assert.Equal(t, "- topic one\n- topic two", got)
	assert.Equal(t, 1, stub.calls)
}

func TestOutlineFailurePropagates(t *testing.T) {
	boom := errors.New("network down")
	stub := &stubCompleter{respond: func(call int, system, user string) (string, error) {
		return "", boom
	}}

	_, err := newSummarizer(stub, 10).Outline(context.Background(), words(5))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
