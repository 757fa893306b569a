package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/josh-stephens/youtube-summary-agent/internal/youtube"
)

func TestFormatResponse(t *testing.T) {
	v := youtube.Video{
		Title:       "Go Concurrency Patterns",
		ChannelName: "Go Channel",
		PublishedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		ViewCount:   1234567,
	}
	comments := []youtube.Comment{
		{Author: "@alice", Text: "Great talk!", Likes: 12},
		{Author: "@bob", Text: "Very helpful.", Likes: 5},
	}

	got := formatResponse(v, comments, "A tight summary.")

	want := "Here's a summary of the latest video:\n\n" +
		"📺 Title: Go Concurrency Patterns\n" +
		"👤 Channel: Go Channel\n" +
		"📅 Upload Date: March 01, 2024\n" +
		"👀 Views: 1,234,567\n" +
		"\n📝 Summary:\nA tight summary.\n" +
		"\n💬 Top Comments:" +
		"\n1. Great talk! - @alice" +
		"\n2. Very helpful. - @bob"
	require.Equal(t, want, got)
}

func TestFormatResponseNoComments(t *testing.T) {
	got := formatResponse(youtube.Video{Title: "Quiet Video"}, nil, "Nothing to say.")
	require.True(t, len(got) > 0)
	require.Contains(t, got, "💬 Top Comments:\nNo comments available")
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{1000000000, "1,000,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, groupDigits(tt.n))
		})
	}
}
