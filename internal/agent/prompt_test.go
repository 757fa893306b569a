package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/josh-stephens/youtube-summary-agent/internal/youtube"
)

func TestBuildPrompt(t *testing.T) {
	v := youtube.Video{
		Title:       "Go Concurrency Patterns",
		Description: "Talk from Google I/O.",
		ChannelName: "Go Channel",
		PublishedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		ViewCount:   1234567,
	}
	comments := []youtube.Comment{{Author: "@alice", Text: "Great talk!", Likes: 12}}

	got := buildPrompt(v, comments, "welcome to the talk")

	require.Contains(t, got, "Video Title: Go Concurrency Patterns\n")
	require.Contains(t, got, "Channel: Go Channel\n")
	require.Contains(t, got, "Upload Date: March 01, 2024\n")
	require.Contains(t, got, "Views: 1,234,567\n")
	require.Contains(t, got, "Description:\nTalk from Google I/O.")
	require.Contains(t, got, "Top Comments:\n- @alice (12 likes): Great talk!")
	require.Contains(t, got, "Transcript:\nwelcome to the talk")
}

func TestBuildPromptOmitsAbsentSections(t *testing.T) {
	v := youtube.Video{Title: "Quiet Video", ChannelName: "Quiet Channel"}

	got := buildPrompt(v, nil, "")

	require.NotContains(t, got, "Description:")
	require.NotContains(t, got, "Top Comments:")
	require.NotContains(t, got, "Transcript:")
}
