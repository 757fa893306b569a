package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// ErrNotFound reports a reference that is well formed but does not exist
// upstream, is private, or resolves to an empty playlist.
var ErrNotFound = errors.New("youtube: not found")

// Video is the metadata subset the agent reports on.
type Video struct {
	ID           string
	Title        string
	Description  string
	ChannelName  string
	PublishedAt  time.Time
	ViewCount    uint64
	LikeCount    uint64
	CommentCount uint64
}

// Comment is a single top-level comment on a video.
type Comment struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Likes  int64  `json:"likes"`
}

// Client reads playlist contents, video metadata and comment threads from
// the YouTube Data API v3.
type Client struct {
	svc *ytapi.Service
}

// NewClient builds a Data API client authenticated with an API key. Extra
// options (custom endpoint, custom HTTP client) are appended after the key
// so tests can point the client at a fixture server.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	all := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := ytapi.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// LatestPlaylistVideo returns the video ID of the first item in a playlist.
// For uploads playlists the Data API returns items newest first, so the
// first item is the most recent upload.
func (c *Client) LatestPlaylistVideo(ctx context.Context, playlistID string) (string, error) {
	resp, err := c.svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(playlistID).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", classify("list playlist items", err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("playlist %s has no items: %w", playlistID, ErrNotFound)
	}

	item := resp.Items[0]
	if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
		return item.ContentDetails.VideoId, nil
	}
	if item.Snippet != nil && item.Snippet.ResourceId != nil && item.Snippet.ResourceId.VideoId != "" {
		return item.Snippet.ResourceId.VideoId, nil
	}
	return "", fmt.Errorf("playlist %s: first item carries no video id", playlistID)
}

// Video fetches snippet and statistics for a single video.
func (c *Client) Video(ctx context.Context, videoID string) (Video, error) {
	resp, err := c.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return Video{}, classify("get video", err)
	}
	if len(resp.Items) == 0 {
		return Video{}, fmt.Errorf("video %s: %w", videoID, ErrNotFound)
	}

	item := resp.Items[0]
	v := Video{ID: videoID}
	if sn := item.Snippet; sn != nil {
		v.Title = sn.Title
		v.Description = sn.Description
		v.ChannelName = sn.ChannelTitle
		if ts, err := time.Parse(time.RFC3339, sn.PublishedAt); err == nil {
			v.PublishedAt = ts
		}
	}
	if st := item.Statistics; st != nil {
		v.ViewCount = st.ViewCount
		v.LikeCount = st.LikeCount
		v.CommentCount = st.CommentCount
	}
	return v, nil
}

// TopComments returns up to max top-level comments in the provider's
// relevance order. Videos with comments disabled surface as an error;
// callers decide how tolerant to be.
func (c *Client) TopComments(ctx context.Context, videoID string, max int64) ([]Comment, error) {
	resp, err := c.svc.CommentThreads.List([]string{"snippet"}).
		VideoId(videoID).
		Order("relevance").
		MaxResults(max).
		TextFormat("plainText").
		Context(ctx).
		Do()
	if err != nil {
		return nil, classify("list comment threads", err)
	}

	comments := make([]Comment, 0, len(resp.Items))
	for _, th := range resp.Items {
		if th.Snippet == nil || th.Snippet.TopLevelComment == nil || th.Snippet.TopLevelComment.Snippet == nil {
			continue
		}
		cs := th.Snippet.TopLevelComment.Snippet
		comments = append(comments, Comment{
			Author: cs.AuthorDisplayName,
			Text:   cs.TextDisplay,
			Likes:  cs.LikeCount,
		})
	}
	return comments, nil
}

func classify(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
