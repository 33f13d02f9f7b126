package youtube

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jonathan/seo-auditor/internal/types"
)

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ParseVideoID accepts a bare video ID or a watch, short-link, shorts, embed or live URL
// and returns the video ID.
func ParseVideoID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if videoIDPattern.MatchString(ref) {
		return ref, nil
	}

	invalid := &types.InvalidArgumentError{Argument: "video reference", Value: ref, Message: "expected a video ID or URL"}

	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return "", invalid
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	var candidate string
	switch host {
	case "youtu.be":
		candidate = strings.Trim(u.Path, "/")
	case "youtube.com", "music.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			candidate = v
			break
		}
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) == 2 {
			switch parts[0] {
			case "shorts", "embed", "live", "v":
				candidate = parts[1]
			}
		}
	}

	if !videoIDPattern.MatchString(candidate) {
		return "", invalid
	}
	return candidate, nil
}

// NormalizeHandle strips the leading "@" and surrounding whitespace from a channel handle.
func NormalizeHandle(handle string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(handle), "@")
	h = strings.TrimSpace(h)
	if h == "" {
		return "", &types.InvalidArgumentError{Argument: "channel handle", Message: "cannot be empty"}
	}
	return h, nil
}
