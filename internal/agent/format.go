package agent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josh-stephens/youtube-summary-agent/internal/youtube"
)

const dateLayout = "January 02, 2006"

// formatResponse renders the reply text for a summarized video.
func formatResponse(v youtube.Video, comments []youtube.Comment, summary string) string {
	var b strings.Builder

	b.WriteString("Here's a summary of the latest video:\n\n")
	fmt.Fprintf(&b, "📺 Title: %s\n", v.Title)
	fmt.Fprintf(&b, "👤 Channel: %s\n", v.ChannelName)
	fmt.Fprintf(&b, "📅 Upload Date: %s\n", v.PublishedAt.Format(dateLayout))
	fmt.Fprintf(&b, "👀 Views: %s\n", groupDigits(v.ViewCount))
	fmt.Fprintf(&b, "\n📝 Summary:\n%s\n", summary)
	b.WriteString("\n💬 Top Comments:")

	if len(comments) == 0 {
		b.WriteString("\nNo comments available")
		return b.String()
	}
	for i, c := range comments {
		fmt.Fprintf(&b, "\n%d. %s - %s", i+1, c.Text, c.Author)
	}
	return b.String()
}

// groupDigits renders n with comma thousands separators.
func groupDigits(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
