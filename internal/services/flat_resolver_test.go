package services

import (
	"testing"

	"github.com/drcity/portal/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFlat(t *testing.T) {
	c := testCatalog(t)
	vista, _ := c.Site("Vista Imperia")

	t.Run("nil flat number is not found", func(t *testing.T) {
		for _, name := range c.Names() {
			site, _ := c.Site(name)
			_, ok := ResolveFlat(site, nil)
			assert.False(t, ok, name)
		}
	})

	t.Run("unknown flat number is not found", func(t *testing.T) {
		_, ok := ResolveFlat(vista, models.StringPtr("999"))
		assert.False(t, ok)
	})

	t.Run("nil site is not found", func(t *testing.T) {
		_, ok := ResolveFlat(nil, models.StringPtr("204"))
		assert.False(t, ok)
	})

	t.Run("returns the stored record with images then videos", func(t *testing.T) {
		detail, ok := ResolveFlat(vista, models.StringPtr("204"))
		require.True(t, ok)

		stored, _ := vista.Flats.Get("204")
		assert.Equal(t, stored, detail.Flat)
		assert.Equal(t, models.StatusClassLimited, detail.StatusClass)

		refs := make([]string, 0, len(detail.Media))
		for i, item := range detail.Media {
			refs = append(refs, item.Ref)
			assert.Equal(t, i, item.Index)
		}
		assert.Equal(t, append(append([]string{}, stored.Images...), stored.Videos...), refs)
		assert.Equal(t, []models.MediaKind{models.MediaImage, models.MediaImage, models.MediaVideo, models.MediaVideo},
			[]models.MediaKind{detail.Media[0].Kind, detail.Media[1].Kind, detail.Media[2].Kind, detail.Media[3].Kind})
	})

	t.Run("flat without media has an empty list", func(t *testing.T) {
		detail, ok := ResolveFlat(vista, models.StringPtr("305"))
		require.True(t, ok)
		assert.NotNil(t, detail.Media)
		assert.Empty(t, detail.Media)
	})
}

func TestClassifyMedia(t *testing.T) {
	tests := []struct {
		ref  string
		want models.MediaKind
	}{
		{"/videos/tour.mp4", models.MediaVideo},
		{"/videos/tour.MP4", models.MediaVideo},
		{"https://cdn.example.com/video/204", models.MediaVideo},
		{"/images/videowall.jpg", models.MediaVideo},
		{"/images/living.jpg", models.MediaImage},
		{"/clips/tour.mp4.jpg", models.MediaImage},
		{"/clips/VIDEO.jpg", models.MediaImage},
		{"", models.MediaImage},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMedia(tt.ref))
		})
	}
}
