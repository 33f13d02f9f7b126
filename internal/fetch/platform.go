// Package fetch - platform.go provides reference-site detection and site-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known reference site for music metadata.
type Platform string

const (
	// PlatformWikipedia is any Wikipedia language edition
	PlatformWikipedia Platform = "wikipedia"
	// PlatformDiscogs is the Discogs release database
	PlatformDiscogs Platform = "discogs"
	// PlatformLastFM is the Last.fm artist wiki
	PlatformLastFM Platform = "lastfm"
	// PlatformBandcamp is a Bandcamp artist or album page
	PlatformBandcamp Platform = "bandcamp"
	// PlatformUnknown is an unrecognized site
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the reference site from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Hostname())

	switch {
	case host == "wikipedia.org" || strings.HasSuffix(host, ".wikipedia.org"):
		return PlatformWikipedia
	case host == "discogs.com" || strings.HasSuffix(host, ".discogs.com"):
		return PlatformDiscogs
	case host == "last.fm" || strings.HasSuffix(host, ".last.fm"):
		return PlatformLastFM
	case host == "bandcamp.com" || strings.HasSuffix(host, ".bandcamp.com"):
		return PlatformBandcamp
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific site.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformWikipedia:
		return []string{
			"#mw-content-text .mw-parser-output", // Article body without chrome
			"#mw-content-text",
			"#content",
		}
	case PlatformDiscogs:
		return []string{
			"#release-notes",
			"[class*='profile']",
			"main",
		}
	case PlatformLastFM:
		return []string{
			".wiki-content",
			".wiki-block",
			"main",
		}
	case PlatformBandcamp:
		return []string{
			".tralbumData.tralbum-about",
			"#trackInfo",
			".bio-text",
			"main",
		}
	default:
		// Music reviews and blog posts
		return []string{
			".article-body",
			".review-body",
			".entry-content",
			"article",
			"main",
			"#content",
		}
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific site.
func PlatformNoiseSelectors(platform Platform) []string {
	common := []string{
		// Forms and comments
		"form",
		".comments",
		"#comments",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",
	}

	switch platform {
	case PlatformWikipedia:
		return append(common,
			".reference",
			".reflist",
			".navbox",
			".mw-editsection",
			"#toc",
		)
	case PlatformDiscogs:
		return append(common,
			"[class*='marketplace']",
			"[class*='buy']",
		)
	case PlatformLastFM:
		return append(common,
			".shoutbox",
			".buffer-standard",
		)
	case PlatformBandcamp:
		return append(common,
			".buyItem",
			".share-collect-controls",
		)
	default:
		return common
	}
}
