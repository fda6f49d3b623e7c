package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{
			"versioned delivery URL",
			"https://res.cloudinary.com/demo/image/upload/v1712345678/songs/covers/nova_midnight_cover.webp",
			"songs/covers/nova_midnight_cover", true,
		},
		{
			"no version segment",
			"https://res.cloudinary.com/demo/image/upload/artists/banners/nova_banner.webp",
			"artists/banners/nova_banner", true,
		},
		{
			"no extension",
			"https://res.cloudinary.com/demo/image/upload/v1/playlists/covers/summer_cover",
			"playlists/covers/summer_cover", true,
		},
		{"not a delivery URL", "https://example.com/image.png", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PublicIDFromURL(tc.url)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "nova_skye", slugify("Nova Skye"))
	assert.Equal(t, "dont_stop", slugify("Don't Stop!"))
	assert.Equal(t, "already-fine_123", slugify("already-fine_123"))
	// Unusable names still yield a non-empty id.
	assert.NotEmpty(t, slugify("!!!"))
}
