package tokenizer

import "testing"

// Needs the tiktoken BPE data (downloaded and cached on first use), so the
// round trip is skipped when the encoding cannot be loaded.
func TestForModelRoundTrip(t *testing.T) {
	codec, err := ForModel("gpt-4o")
	if err != nil {
		t.Skipf("encoding unavailable: %v", err)
	}

	text := "The quick brown fox jumps over the lazy dog."
	tokens := codec.Encode(text)
	if len(tokens) == 0 {
		t.Fatal("Encode() returned no tokens")
	}
	if got := codec.Decode(tokens); got != text {
		t.Errorf("Decode(Encode(text)) = %q, want %q", got, text)
	}
	if got := codec.Count(text); got != len(tokens) {
		t.Errorf("Count() = %d, want %d", got, len(tokens))
	}
}

func TestForModelUnknownFallsBack(t *testing.T) {
	codec, err := ForModel("gemini-2.5-flash")
	if err != nil {
		t.Skipf("encoding unavailable: %v", err)
	}
	if codec == nil {
		t.Fatal("ForModel() returned nil codec")
	}
}
