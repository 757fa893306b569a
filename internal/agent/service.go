// Package agent runs the summary pipeline: resolve a YouTube reference,
// gather video context, summarize it and log the conversation turn.
package agent

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/josh-stephens/youtube-summary-agent/internal/storage/models"
	"github.com/josh-stephens/youtube-summary-agent/internal/youtube"
)

// Request is one summarization query.
type Request struct {
	Query     string `json:"query"`
	UserID    string `json:"user_id"`
	RequestID string `json:"request_id"`
	SessionID string `json:"session_id"`
}

// Validate reports the first missing field.
func (r Request) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"query", r.Query},
		{"user_id", r.UserID},
		{"request_id", r.RequestID},
		{"session_id", r.SessionID},
	} {
		if strings.TrimSpace(f.value) == "" {
			return newError(CodeInvalidRequest, f.name+" is required", nil)
		}
	}
	return nil
}

// VideoReport is the structured video block returned to callers.
type VideoReport struct {
	VideoID      string            `json:"video_id"`
	Title        string            `json:"title"`
	ChannelName  string            `json:"channel_name"`
	PublishedAt  time.Time         `json:"published_at"`
	ViewCount    uint64            `json:"view_count"`
	LikeCount    uint64            `json:"like_count"`
	CommentCount uint64            `json:"comment_count"`
	TopComments  []youtube.Comment `json:"top_comments"`
	Summary      string            `json:"summary"`
}

// PersistOutcome reports whether the conversation record reached storage.
// Persistence is best effort and never fails the request; callers that care
// inspect the outcome.
type PersistOutcome struct {
	Stored bool
	Err    error
}

// Result is one completed pipeline run.
type Result struct {
	Response    string
	Video       VideoReport
	Persistence PersistOutcome
}

// VideoProvider reads playlist contents, metadata and comments from YouTube.
type VideoProvider interface {
	LatestPlaylistVideo(ctx context.Context, playlistID string) (string, error)
	Video(ctx context.Context, videoID string) (youtube.Video, error)
	TopComments(ctx context.Context, videoID string, max int64) ([]youtube.Comment, error)
}

// TranscriptProvider fetches optional caption transcripts.
type TranscriptProvider interface {
	Transcript(ctx context.Context, videoID string) (string, error)
}

// Summarizer produces the natural-language summary.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (string, error)
}

// ConversationStore appends completed turns to the conversation log.
type ConversationStore interface {
	Append(ctx context.Context, rec models.ConversationRecord) error
}

// Service runs the pipeline. One call per request, no shared mutable state.
type Service struct {
	videos      VideoProvider
	transcripts TranscriptProvider
	summarizer  Summarizer
	store       ConversationStore
	maxComments int64
	logger      *slog.Logger
}

// Deps bundles the collaborators a Service needs.
type Deps struct {
	Videos      VideoProvider
	Transcripts TranscriptProvider
	Summarizer  Summarizer
	Store       ConversationStore
	MaxComments int64
	Logger      *slog.Logger
}

func NewService(d Deps) *Service {
	if d.MaxComments <= 0 {
		d.MaxComments = 5
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Service{
		videos:      d.Videos,
		transcripts: d.Transcripts,
		summarizer:  d.Summarizer,
		store:       d.Store,
		maxComments: d.MaxComments,
		logger:      d.Logger,
	}
}

// Process resolves the query to a video, fetches its metadata, comments and
// transcript, summarizes everything and appends the turn to the conversation
// log. Comments and transcript are optional context: their absence degrades
// the summary, never the request. A failed pipeline stores nothing.
func (s *Service) Process(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	log := s.logger.With("session_id", req.SessionID, "request_id", req.RequestID)

	ref, err := youtube.Resolve(req.Query)
	if err != nil {
		return Result{}, newError(CodeInvalidReference, "query is not a recognizable YouTube video or playlist reference", err)
	}

	videoID := ref.ID
	if ref.Kind == youtube.KindPlaylist {
		videoID, err = s.videos.LatestPlaylistVideo(ctx, ref.ID)
		if err != nil {
			return Result{}, classifyUpstream("resolve latest playlist video", err)
		}
		log.Info("resolved playlist to latest video", "playlist_id", ref.ID, "video_id", videoID)
	}

	video, err := s.videos.Video(ctx, videoID)
	if err != nil {
		return Result{}, classifyUpstream("fetch video metadata", err)
	}

	comments, err := s.videos.TopComments(ctx, videoID, s.maxComments)
	if err != nil {
		log.Warn("comment fetch failed, continuing without comments", "video_id", videoID, "error", err)
		comments = nil
	}

	transcript, err := s.transcripts.Transcript(ctx, videoID)
	if err != nil {
		log.Info("transcript unavailable, summarizing from metadata", "video_id", videoID, "error", err)
		transcript = ""
	}

	summary, err := s.summarizer.Summarize(ctx, buildPrompt(video, comments, transcript))
	if err != nil {
		return Result{}, newError(CodeSummarizationFailed, "could not generate a summary for the video", err)
	}

	response := formatResponse(video, comments, summary)

	result := Result{
		Response: response,
		Video: VideoReport{
			VideoID:      video.ID,
			Title:        video.Title,
			ChannelName:  video.ChannelName,
			PublishedAt:  video.PublishedAt,
			ViewCount:    video.ViewCount,
			LikeCount:    video.LikeCount,
			CommentCount: video.CommentCount,
			TopComments:  comments,
			Summary:      summary,
		},
		Persistence: PersistOutcome{Stored: true},
	}

	rec := models.ConversationRecord{
		SessionID: req.SessionID,
		Query:     req.Query,
		Response:  response,
		Video: models.VideoContext{
			VideoID:     video.ID,
			Title:       video.Title,
			PublishedAt: video.PublishedAt,
			Description: video.Description,
		},
	}
	if err := s.store.Append(ctx, rec); err != nil {
		log.Error("conversation append failed", "error", err)
		result.Persistence = PersistOutcome{Stored: false, Err: err}
	}

	return result, nil
}

func classifyUpstream(op string, err error) *Error {
	if errors.Is(err, youtube.ErrNotFound) {
		return newError(CodeNotFound, op+": no matching video or playlist", err)
	}
	return newError(CodeUpstreamUnavailable, op+": YouTube API unavailable", err)
}
