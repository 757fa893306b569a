package agent

import (
	"fmt"
	"strings"

	"github.com/josh-stephens/youtube-summary-agent/internal/youtube"
)

// buildPrompt assembles the summarizer's user message from everything known
// about the video. The transcript carries the most signal when present; the
// metadata block keeps the summary grounded when it is not.
func buildPrompt(v youtube.Video, comments []youtube.Comment, transcript string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Video Title: %s\n", v.Title)
	fmt.Fprintf(&b, "Channel: %s\n", v.ChannelName)
	fmt.Fprintf(&b, "Upload Date: %s\n", v.PublishedAt.Format(dateLayout))
	fmt.Fprintf(&b, "Views: %s\n", groupDigits(v.ViewCount))

	if v.Description != "" {
		fmt.Fprintf(&b, "\nDescription:\n%s\n", v.Description)
	}

	if len(comments) > 0 {
		b.WriteString("\nTop Comments:\n")
		for _, c := range comments {
			fmt.Fprintf(&b, "- %s (%d likes): %s\n", c.Author, c.Likes, c.Text)
		}
	}

	if transcript != "" {
		fmt.Fprintf(&b, "\nTranscript:\n%s\n", transcript)
	}

	return b.String()
}
