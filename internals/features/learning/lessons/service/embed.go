package service

import (
	"regexp"
	"strings"
)

const (
	ProviderYouTube  = "youtube"
	ProviderVimeo    = "vimeo"
	ProviderDrive    = "google_drive"
	ProviderLoom     = "loom"
	ProviderVideo    = "video"
	ProviderExternal = "external"
)

type Embed struct {
	Provider string `json:"provider"`
	EmbedURL string `json:"embed_url"`
}

type embedRule struct {
	provider string
	re       *regexp.Regexp
	build    func(id string) string
}

var embedRules = []embedRule{
	{ProviderYouTube, regexp.MustCompile(`(?i)youtube\.com/watch\?(?:.*&)?v=([\w-]{6,})`), youtube},
	{ProviderYouTube, regexp.MustCompile(`(?i)youtu\.be/([\w-]{6,})`), youtube},
	{ProviderYouTube, regexp.MustCompile(`(?i)youtube\.com/shorts/([\w-]{6,})`), youtube},
	{ProviderYouTube, regexp.MustCompile(`(?i)youtube\.com/embed/([\w-]{6,})`), youtube},
	{ProviderVimeo, regexp.MustCompile(`(?i)vimeo\.com/(?:video/)?(\d+)`), func(id string) string {
		return "https://player.vimeo.com/video/" + id
	}},
	{ProviderDrive, regexp.MustCompile(`(?i)drive\.google\.com/file/d/([\w-]+)`), func(id string) string {
		return "https://drive.google.com/file/d/" + id + "/preview"
	}},
	{ProviderLoom, regexp.MustCompile(`(?i)loom\.com/(?:share|embed)/([0-9a-f]+)`), func(id string) string {
		return "https://www.loom.com/embed/" + id
	}},
}

var directMedia = regexp.MustCompile(`(?i)\.(mp4|webm|ogg)(\?.*)?$`)

func youtube(id string) string {
	return "https://www.youtube.com/embed/" + id
}

// ClassifyVideo maps a lesson video URL to an embeddable player URL.
// Nil for an empty URL; unknown hosts are external links.
func ClassifyVideo(raw string) *Embed {
	u := strings.TrimSpace(raw)
	if u == "" {
		return nil
	}
	for _, r := range embedRules {
		if m := r.re.FindStringSubmatch(u); len(m) == 2 {
			return &Embed{Provider: r.provider, EmbedURL: r.build(m[1])}
		}
	}
	if directMedia.MatchString(u) {
		return &Embed{Provider: ProviderVideo, EmbedURL: u}
	}
	return &Embed{Provider: ProviderExternal, EmbedURL: u}
}
