package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Artifact file suffixes, one per derivative type.
const (
	SuffixTranscript = "_transcript.txt"
	SuffixSummary    = "_summary.txt"
	SuffixOutline    = "_outline.txt"
)

// Writer persists run artifacts as plain text files.
type Writer interface {
	// Write stores content under {video_id}_{unix_ts}{suffix} in the
	// output directory and returns the full path.
	Write(videoID, suffix, content string) (string, error)
}

type implWriter struct {
	dir string
	now func() time.Time
}

// Option customizes Writer creation.
type Option func(*implWriter)

// WithClock replaces the wall clock used for filenames. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(w *implWriter) {
		w.now = now
	}
}

// New creates a Writer targeting dir.
func New(dir string, opts ...Option) Writer {
	w := &implWriter{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Filename builds the artifact filename for a video at a point in time.
// Names are unique only to the second; two runs for the same video within
// the same second overwrite each other.
func Filename(videoID, suffix string, now time.Time) string {
	return fmt.Sprintf("%s_%d%s", videoID, now.Unix(), suffix)
}

func (w *implWriter) Write(videoID, suffix, content string) (string, error) {
	path := filepath.Join(w.dir, Filename(videoID, suffix, w.now()))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return path, nil
}
