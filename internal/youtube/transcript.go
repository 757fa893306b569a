package youtube

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
	"time"
)

// Transcripts come from YouTube's unofficial innertube player endpoint:
// POST /youtubei/v1/player with an ANDROID client context returns the list
// of caption tracks, each with a timedtext XML URL.
const (
	defaultInnertubeBase = "https://www.youtube.com"
	playerPath           = "/youtubei/v1/player"
	androidVersion       = "20.10.38"
	androidUserAgent     = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"

	// Upper bound on transcript text fed into the summarization prompt.
	maxTranscriptBytes = 8000

	maxResponseBytes = 2 << 20
)

// ErrNoTranscript reports a video without any usable caption track.
var ErrNoTranscript = errors.New("youtube: no transcript available")

// TranscriptClient fetches caption transcripts. Transcripts are optional
// context for summarization; callers treat every error as absence.
type TranscriptClient struct {
	baseURL    string
	httpClient *http.Client
}

// TranscriptOption overrides TranscriptClient defaults.
type TranscriptOption func(*TranscriptClient)

// WithTranscriptBaseURL points the client at an alternate innertube host.
func WithTranscriptBaseURL(u string) TranscriptOption {
	return func(c *TranscriptClient) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithTranscriptHTTPClient replaces the underlying HTTP client.
func WithTranscriptHTTPClient(h *http.Client) TranscriptOption {
	return func(c *TranscriptClient) { c.httpClient = h }
}

func NewTranscriptClient(opts ...TranscriptOption) *TranscriptClient {
	c := &TranscriptClient{
		baseURL:    defaultInnertubeBase,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
	ContentCheckOk bool          `json:"contentCheckOk"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

type playerResponse struct {
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
	Kind         string `json:"kind"` // "asr" marks auto-generated tracks
}

type timedTextDoc struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Text string `xml:",chardata"`
}

// Transcript returns the caption transcript of a video as a single string,
// truncated to a bounded size. It prefers manually authored English tracks
// over auto-generated ones.
func (c *TranscriptClient) Transcript(ctx context.Context, videoID string) (string, error) {
	tracks, err := c.captionTracks(ctx, videoID)
	if err != nil {
		return "", err
	}

	track, ok := pickTrack(tracks)
	if !ok {
		return "", ErrNoTranscript
	}

	text, err := c.fetchTimedText(ctx, track.BaseURL)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", ErrNoTranscript
	}
	if len(text) > maxTranscriptBytes {
		text = text[:maxTranscriptBytes]
	}
	return text, nil
}

func (c *TranscriptClient) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	body, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
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
		return nil, fmt.Errorf("marshal player request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+playerPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build player request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", androidUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call player endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("player endpoint: unexpected status %d", resp.StatusCode)
	}

	var player playerResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	if player.PlayabilityStatus != nil && player.PlayabilityStatus.Status != "OK" {
		return nil, fmt.Errorf("video not playable: %s (%s)", player.PlayabilityStatus.Status, player.PlayabilityStatus.Reason)
	}
	if player.Captions == nil || len(player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		return nil, ErrNoTranscript
	}
	return player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// pickTrack prefers a manual English track, then an auto-generated English
// one, then any English variant, then the first usable track. Tracks whose
// URL carries exp=xpe need a browser-issued PoToken and cannot be fetched
// server side.
func pickTrack(tracks []captionTrack) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !strings.Contains(t.BaseURL, "exp=xpe") {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	for _, t := range usable {
		if t.LanguageCode == "en" && t.Kind != "asr" {
			return t, true
		}
	}
	for _, t := range usable {
		if t.LanguageCode == "en" {
			return t, true
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

func (c *TranscriptClient) fetchTimedText(ctx context.Context, trackURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return "", fmt.Errorf("build timedtext request: %w", err)
	}
	req.Header.Set("User-Agent", androidUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timedtext: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read timedtext: %w", err)
	}

	var doc timedTextDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("parse timedtext XML: %w", err)
	}

	var sb strings.Builder
	for _, line := range doc.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
