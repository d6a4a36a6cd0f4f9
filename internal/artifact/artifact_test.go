package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	at := time.Unix(1700000000, 0)

	tests := []struct {
		name    string
		videoID string
		suffix  string
		want    string
	}{
		{"summary", "xyz", SuffixSummary, "xyz_1700000000_summary.txt"},
		{"transcript", "abc123", SuffixTranscript, "abc123_1700000000_transcript.txt"},
		{"outline", "abc123", SuffixOutline, "abc123_1700000000_outline.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.videoID, tt.suffix, at); got != tt.want {
				t.Errorf("Filename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, WithClock(func() time.Time { return time.Unix(1700000000, 0) }))

	path, err := w.Write("xyz", SuffixSummary, "summary body")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := filepath.Join(dir, "xyz_1700000000_summary.txt")
	if path != want {
		t.Errorf("Write() path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if string(data) != "summary body" {
		t.Errorf("artifact content = %q, want %q", data, "summary body")
	}
}

func TestWriteMissingDir(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "does", "not", "exist"))
	if _, err := w.Write("xyz", SuffixSummary, "x"); err == nil {
		t.Error("Write() to missing directory should error")
	}
}
