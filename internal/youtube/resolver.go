package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Kind discriminates what a resolved reference points at.
type Kind string

const (
	KindVideo    Kind = "video"
	KindPlaylist Kind = "playlist"
)

// Reference is a validated YouTube identifier extracted from raw user input.
type Reference struct {
	Kind Kind
	ID   string
}

// Video IDs are always 11 characters. Bare playlist IDs are recognized by
// prefix: PL (user playlists), UU (uploads), LL (likes), FL (favorites),
// OL (courses), RD (mixes), WL (watch later).
var (
	videoIDPattern        = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	barePlaylistIDPattern = regexp.MustCompile(`^(?:PL|UU|LL|FL|OL|RD|WL)[A-Za-z0-9_-]{10,}$`)
	playlistParamPattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Resolve classifies raw user input as a video or playlist reference.
//
// Accepted forms are watch URLs, youtu.be short links, playlist URLs, bare
// 11-character video IDs and bare playlist IDs with a recognized prefix.
// Resolution is purely syntactic; a well-formed ID that does not exist
// upstream is only discovered at fetch time.
func Resolve(raw string) (Reference, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Reference{}, fmt.Errorf("empty reference")
	}

	if videoIDPattern.MatchString(s) {
		return Reference{Kind: KindVideo, ID: s}, nil
	}
	if barePlaylistIDPattern.MatchString(s) {
		return Reference{Kind: KindPlaylist, ID: s}, nil
	}

	u, err := url.Parse(withScheme(s))
	if err != nil {
		return Reference{}, fmt.Errorf("parse reference %q: %w", raw, err)
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	host = strings.TrimPrefix(host, "m.")

	switch host {
	case "youtu.be":
		id, _, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if videoIDPattern.MatchString(id) {
			return Reference{Kind: KindVideo, ID: id}, nil
		}
	case "youtube.com":
		switch u.Path {
		case "/watch":
			// An explicit v= wins even when the URL also carries a list=.
			if id := u.Query().Get("v"); videoIDPattern.MatchString(id) {
				return Reference{Kind: KindVideo, ID: id}, nil
			}
		case "/playlist":
			if id := u.Query().Get("list"); playlistParamPattern.MatchString(id) {
				return Reference{Kind: KindPlaylist, ID: id}, nil
			}
		}
	}

	return Reference{}, fmt.Errorf("unrecognized YouTube reference %q", raw)
}

func withScheme(s string) string {
	if strings.Contains(s, "://") {
		return s
	}
	return "https://" + s
}
