package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Codec measures and splits text by token count. Encode and Decode are
// exact inverses for a given codec. Chunk boundaries and reported token
// counts depend on the specific encoding, so one codec instance serves an
// entire run.
type Codec interface {
	Encode(text string) []int
	Decode(tokens []int) string
	Count(text string) int
}

type implCodec struct {
	enc *tiktoken.Tiktoken
}

// ForModel creates a Codec using the tiktoken encoding registered for the
// given model name. Models without a registered encoding (e.g. Gemini)
// fall back to cl100k_base, which is only used for budgeting, not by the
// completion service itself.
func ForModel(model string) (Codec, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, fmt.Errorf("load encoding for model %s: %w", model, err)
		}
	}
	return &implCodec{enc: enc}, nil
}

func (c *implCodec) Encode(text string) []int {
	return c.enc.Encode(text, nil, nil)
}

func (c *implCodec) Decode(tokens []int) string {
	return c.enc.Decode(tokens)
}

func (c *implCodec) Count(text string) int {
	return len(c.Encode(text))
}
