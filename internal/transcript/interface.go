package transcript

import "context"

// Fetcher retrieves the caption transcript for a video identifier as a
// single string: all segments in caption order, joined by single spaces.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}
