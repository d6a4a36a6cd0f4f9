package videoid

import "strings"

// Extract returns the canonical video identifier for a YouTube URL or a
// bare ID. Two URL shapes are recognized:
//
//	https://youtu.be/<id>                         → final path segment
//	https://www.youtube.com/watch?v=<id>&...      → value of v=, cut at &
//
// Anything else passes through unchanged and is assumed to already be a
// video ID. No format validation happens here; a bogus identifier only
// surfaces downstream as a transcript fetch failure.
func Extract(input string) string {
	if strings.Contains(input, "youtu.be") {
		parts := strings.Split(input, "/")
		return parts[len(parts)-1]
	}

	if strings.Contains(input, "youtube.com") {
		_, after, found := strings.Cut(input, "v=")
		if !found {
			return input
		}
		id, _, _ := strings.Cut(after, "&")
		return id
	}

	return input
}
