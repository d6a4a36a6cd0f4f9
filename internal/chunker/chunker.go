package chunker

// Split encodes the full text once, partitions the token sequence into
// contiguous slices of at most maxTokens, and decodes each slice back to
// text. The slices cover the sequence in order with no overlap and no
// gaps, so re-encoding the chunks reproduces the original sequence.
func (c *implChunker) Split(text string) []string {
	tokens := c.codec.Encode(text)
	if len(tokens) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(tokens)+c.maxTokens-1)/c.maxTokens)
	for start := 0; start < len(tokens); start += c.maxTokens {
		end := min(start+c.maxTokens, len(tokens))
		chunks = append(chunks, c.codec.Decode(tokens[start:end]))
	}
	return chunks
}

func (c *implChunker) Budget() int {
	return c.maxTokens
}
