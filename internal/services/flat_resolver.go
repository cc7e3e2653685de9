package services

import (
	"strings"

	"github.com/drcity/portal/api/internal/models"
)

// FlatDetail is a resolved flat together with its media list.
type FlatDetail struct {
	Flat        models.Flat        `json:"flat"`
	StatusClass models.StatusClass `json:"statusClass"`
	Media       []models.MediaItem `json:"media"`
}

// ResolveFlat looks up flatNumber in site. A nil number or one that is not a
// key of the site's flats resolves to false.
func ResolveFlat(site *models.Site, flatNumber *string) (FlatDetail, bool) {
	if site == nil || flatNumber == nil {
		return FlatDetail{}, false
	}
	flat, ok := site.Flats.Get(*flatNumber)
	if !ok {
		return FlatDetail{}, false
	}
	return FlatDetail{
		Flat:        flat,
		StatusClass: models.ClassifyStatus(flat.Status),
		Media:       BuildMedia(flat.Images, flat.Videos),
	}, true
}

// BuildMedia concatenates images and videos, keeping each list's order, and
// classifies every entry.
func BuildMedia(images, videos []string) []models.MediaItem {
	media := make([]models.MediaItem, 0, len(images)+len(videos))
	for _, list := range [][]string{images, videos} {
		for _, ref := range list {
			media = append(media, models.MediaItem{
				Ref:   ref,
				Kind:  ClassifyMedia(ref),
				Index: len(media),
			})
		}
	}
	return media
}

// ClassifyMedia treats a reference as video when it ends in .mp4 (any case)
// or contains "video". Everything else is an image. An image URL that happens
// to contain "video" is classified as video.
func ClassifyMedia(ref string) models.MediaKind {
	if strings.HasSuffix(strings.ToLower(ref), ".mp4") || strings.Contains(ref, "video") {
		return models.MediaVideo
	}
	return models.MediaImage
}
