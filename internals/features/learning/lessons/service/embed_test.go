package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyVideo(t *testing.T) {
	cases := []struct {
		in       string
		provider string
		url      string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", ProviderYouTube, "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", ProviderYouTube, "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?t=42", ProviderYouTube, "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://youtube.com/shorts/abcDEF12345", ProviderYouTube, "https://www.youtube.com/embed/abcDEF12345"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", ProviderYouTube, "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"https://vimeo.com/76979871", ProviderVimeo, "https://player.vimeo.com/video/76979871"},
		{"https://drive.google.com/file/d/1AbC-dEf_9/view?usp=sharing", ProviderDrive, "https://drive.google.com/file/d/1AbC-dEf_9/preview"},
		{"https://www.loom.com/share/0f1e2d3c4b5a", ProviderLoom, "https://www.loom.com/embed/0f1e2d3c4b5a"},
		{"https://cdn.empresa.com/treinamentos/aula1.MP4", ProviderVideo, "https://cdn.empresa.com/treinamentos/aula1.MP4"},
		{"https://intranet.empresa.com/wiki/lgpd", ProviderExternal, "https://intranet.empresa.com/wiki/lgpd"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got := ClassifyVideo(tc.in)
			if assert.NotNil(t, got) {
				assert.Equal(t, tc.provider, got.Provider)
				assert.Equal(t, tc.url, got.EmbedURL)
			}
		})
	}
}

func TestClassifyVideo_Empty(t *testing.T) {
	assert.Nil(t, ClassifyVideo("   "))
}
