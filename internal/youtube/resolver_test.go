package youtube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Reference
	}{
		{
			name:  "bare video id",
			input: "dQw4w9WgXcQ",
			want:  Reference{Kind: KindVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "watch url",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  Reference{Kind: KindVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "watch url without scheme",
			input: "youtube.com/watch?v=dQw4w9WgXcQ",
			want:  Reference{Kind: KindVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "mobile watch url",
			input: "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  Reference{Kind: KindVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "watch url with extra params",
			input: "https://www.youtube.com/watch?t=42&v=dQw4w9WgXcQ",
			want:  Reference{Kind: KindVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "watch url with list param keeps the video",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLBCF2DAC6FFB574DE",
			want:  Reference{Kind: KindVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "short url",
			input: "https://youtu.be/dQw4w9WgXcQ",
			want:  Reference{Kind: KindVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "short url with timestamp",
			input: "youtu.be/dQw4w9WgXcQ?t=42",
			want:  Reference{Kind: KindVideo, ID: "dQw4w9WgXcQ"},
		},
		{
			name:  "playlist url",
			input: "https://www.youtube.com/playlist?list=PLBCF2DAC6FFB574DE",
			want:  Reference{Kind: KindPlaylist, ID: "PLBCF2DAC6FFB574DE"},
		},
		{
			name:  "bare playlist id",
			input: "PLBCF2DAC6FFB574DE",
			want:  Reference{Kind: KindPlaylist, ID: "PLBCF2DAC6FFB574DE"},
		},
		{
			name:  "bare uploads playlist id",
			input: "UUXuqSBlHAE6Xw-yeJA0Tunw",
			want:  Reference{Kind: KindPlaylist, ID: "UUXuqSBlHAE6Xw-yeJA0Tunw"},
		},
		{
			name:  "surrounding whitespace",
			input: "  dQw4w9WgXcQ\n",
			want:  Reference{Kind: KindVideo, ID: "dQw4w9WgXcQ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "ten chars", input: "dQw4w9WgXc"},
		{name: "twelve chars without playlist prefix", input: "dQw4w9WgXcQQ"},
		{name: "unknown playlist prefix", input: "ZZBCF2DAC6FFB574DE"},
		{name: "free text", input: "summarize the latest uploads please"},
		{name: "wrong host", input: "https://vimeo.com/watch?v=dQw4w9WgXcQ"},
		{name: "watch url without v", input: "https://www.youtube.com/watch?list=PLBCF2DAC6FFB574DE"},
		{name: "watch url with malformed v", input: "https://www.youtube.com/watch?v=short"},
		{name: "playlist url without list", input: "https://www.youtube.com/playlist"},
		{name: "channel url", input: "https://www.youtube.com/@somechannel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.input)
			require.Error(t, err)
		})
	}
}
