package services

import (
	"fmt"

	"github.com/drcity/portal/api/internal/models"
)

// NextIndex moves forward through a list of n items, wrapping to the start.
// It reports false when the list is empty.
func NextIndex(i, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return (normalizeIndex(i, n) + 1) % n, true
}

// PreviousIndex moves backward through a list of n items, wrapping to the end.
func PreviousIndex(i, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return (normalizeIndex(i, n) - 1 + n) % n, true
}

func normalizeIndex(i, n int) int {
	return ((i % n) + n) % n
}

// Carousel is the modal viewer positioned on one media item.
type Carousel struct {
	Current  models.MediaItem `json:"current"`
	Previous int              `json:"previous"`
	Next     int              `json:"next"`
	Total    int              `json:"total"`
}

// OpenCarousel positions a carousel on media[index]. An out-of-range index
// wraps the same way navigation does. It reports false for an empty list.
func OpenCarousel(media []models.MediaItem, index int) (Carousel, bool) {
	n := len(media)
	if n == 0 {
		return Carousel{}, false
	}
	i := normalizeIndex(index, n)
	next, _ := NextIndex(i, n)
	prev, _ := PreviousIndex(i, n)
	return Carousel{Current: media[i], Previous: prev, Next: next, Total: n}, true
}

// GalleryCategory filters the site gallery.
type GalleryCategory string

const (
	GalleryAll    GalleryCategory = "all"
	GalleryImages GalleryCategory = "images"
	GalleryVideos GalleryCategory = "videos"
)

// ParseGalleryCategory converts raw into a GalleryCategory. Empty means all.
func ParseGalleryCategory(raw string) (GalleryCategory, error) {
	switch c := GalleryCategory(raw); c {
	case "":
		return GalleryAll, nil
	case GalleryAll, GalleryImages, GalleryVideos:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
	}
}

// GalleryCategoryOption is one tab of the gallery page.
type GalleryCategoryOption struct {
	ID    GalleryCategory `json:"id"`
	Label string          `json:"label"`
	Count int             `json:"count"`
}

// GalleryView is the gallery filtered to one category.
type GalleryView struct {
	Category   GalleryCategory         `json:"category"`
	Categories []GalleryCategoryOption `json:"categories"`
	Items      []models.MediaItem      `json:"items"`
}

// BuildGallery lists the site media for category along with the per-category counts.
func BuildGallery(gallery models.Gallery, category GalleryCategory) GalleryView {
	var items []models.MediaItem
	switch category {
	case GalleryImages:
		items = BuildMedia(gallery.Images, nil)
	case GalleryVideos:
		items = BuildMedia(nil, gallery.Videos)
	default:
		category = GalleryAll
		items = BuildMedia(gallery.Images, gallery.Videos)
	}

	return GalleryView{
		Category: category,
		Categories: []GalleryCategoryOption{
			{ID: GalleryAll, Label: "All Media", Count: len(gallery.Images) + len(gallery.Videos)},
			{ID: GalleryImages, Label: "Images", Count: len(gallery.Images)},
			{ID: GalleryVideos, Label: "Videos", Count: len(gallery.Videos)},
		},
		Items: items,
	}
}
