package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
)

// YouTube Innertube captions API.
// POST /player with an ANDROID client context returns the caption track
// list; each track's baseUrl serves timedtext XML.

const (
	playerURL      = "https://www.youtube.com/youtubei/v1/player"
	androidVersion = "20.10.38"
	androidUA      = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"

	maxBodyBytes = 2 << 20
)

type playerReq struct {
	VideoID        string    `json:"videoId"`
	Context        reqCtx    `json:"context"`
	RacyCheckOk    bool      `json:"racyCheckOk"`
	ContentCheckOk bool      `json:"contentCheckOk"`
}

type reqCtx struct {
	Client reqClient `json:"client"`
}

type reqClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type playerResp struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type timedText struct {
	Lines []timedLine `xml:"text"`
}

type timedLine struct {
	Text string `xml:",chardata"`
}

// Fetch retrieves the caption transcript for videoID. Any failure along
// the way (request, playability, track selection, XML parse) wraps into a
// descriptive fetch error.
func (f *implFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	f.logger.Info(ctx, "Fetching transcript for video ID: %s", videoID)

	text, err := f.fetchViaPlayer(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("fetch transcript for %s: %w", videoID, err)
	}
	return text, nil
}

func (f *implFetcher) fetchViaPlayer(ctx context.Context, videoID string) (string, error) {
	reqBody, err := json.Marshal(playerReq{
		VideoID: videoID,
		Context: reqCtx{
			Client: reqClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, playerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("player request: %w", err)
	}
	defer resp.Body.Close()

	var player playerResp
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&player); err != nil {
		return "", fmt.Errorf("decode player response: %w", err)
	}

	if player.Captions == nil {
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Reason != "" {
			return "", fmt.Errorf("captions unavailable: %s", player.PlayabilityStatus.Reason)
		}
		return "", errors.New("no captions in player response")
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return "", errors.New("no caption tracks")
	}

	track, ok := pickBestTrack(tracks, f.languages)
	if !ok {
		return "", errors.New("all caption tracks require a browser session")
	}
	f.logger.Debug(ctx, "Selected caption track: lang=%s kind=%s", track.LanguageCode, track.Kind)

	return f.fetchTimedText(ctx, track.BaseURL)
}

// needsPoToken reports whether a caption track URL requires a PoToken.
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack selects the best usable caption track: a manual track in
// a preferred language, then an auto-generated one, then any English
// track, then whatever is left.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return tracks[0], false
	}

	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// fetchTimedText fetches a timedtext XML caption URL and joins the
// segment texts with single spaces.
func (f *implFetcher) fetchTimedText(ctx context.Context, baseURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", androidUA)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("parse timedtext XML: %w", err)
	}

	return joinLines(tt), nil
}

func joinLines(tt timedText) string {
	var sb strings.Builder
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	return sb.String()
}
