package services

import (
	"context"
	"fmt"

	"github.com/drcity/portal/api/internal/logger"
	"github.com/drcity/portal/api/internal/models"
)

// SiteList is the site selector content.
type SiteList struct {
	Sites   []string `json:"sites"`
	Default string   `json:"default"`
}

// UnitSummary is one row of the units list.
type UnitSummary struct {
	FlatNumber  string             `json:"flatNumber"`
	Type        string             `json:"type"`
	Area        string             `json:"area"`
	Price       string             `json:"price"`
	Status      string             `json:"status"`
	StatusClass models.StatusClass `json:"statusClass"`
	Bedrooms    int                `json:"bedrooms"`
	Bathrooms   int                `json:"bathrooms"`
	Facing      string             `json:"facing"`
	Amenities   []string           `json:"amenities"`
}

// UnitListing is the filtered units view of a site.
type UnitListing struct {
	Site          string         `json:"site"`
	Criteria      FilterCriteria `json:"criteria"`
	Units         []UnitSummary  `json:"units"`
	Count         int            `json:"count"`
	Total         int            `json:"total"`
	TypeOptions   []string       `json:"typeOptions"`
	StatusOptions []string       `json:"statusOptions"`
}

// SiteService answers read queries against the catalog.
type SiteService interface {
	ListSites(ctx context.Context) SiteList

	// GetSite returns ErrSiteNotFound for an unknown name.
	GetSite(ctx context.Context, name string) (*models.Site, error)

	// ListUnits filters the site's flats. Empty type or status mean all.
	ListUnits(ctx context.Context, name string, criteria FilterCriteria) (UnitListing, error)

	// GetFlat returns ErrSiteNotFound or ErrFlatNotFound when the lookup fails.
	GetFlat(ctx context.Context, name, flatNumber string) (FlatDetail, error)

	// GetGallery returns ErrInvalidCategory for an unknown category.
	GetGallery(ctx context.Context, name, category string) (GalleryView, error)
}

type siteService struct {
	sites SiteLookup
	log   *logger.Logger
}

// NewSiteService creates a SiteService over the given catalog.
func NewSiteService(sites SiteLookup, log *logger.Logger) SiteService {
	return &siteService{
		sites: sites,
		log:   log,
	}
}

func (s *siteService) ListSites(ctx context.Context) SiteList {
	return SiteList{
		Sites:   s.sites.Names(),
		Default: s.sites.DefaultSite(),
	}
}

func (s *siteService) GetSite(ctx context.Context, name string) (*models.Site, error) {
	site, ok := s.sites.Site(name)
	if !ok {
		s.log.Debug("Site not in catalog", logger.Fields{"site": name})
		return nil, fmt.Errorf("%w: %q", ErrSiteNotFound, name)
	}
	return site, nil
}

func (s *siteService) ListUnits(ctx context.Context, name string, criteria FilterCriteria) (UnitListing, error) {
	site, err := s.GetSite(ctx, name)
	if err != nil {
		return UnitListing{}, err
	}

	criteria = criteria.WithDefaults()
	numbers := FilterUnits(site.Flats, criteria)

	units := make([]UnitSummary, 0, len(numbers))
	for _, number := range numbers {
		flat, _ := site.Flats.Get(number)
		units = append(units, UnitSummary{
			FlatNumber:  number,
			Type:        flat.Type,
			Area:        flat.Area,
			Price:       flat.Price,
			Status:      flat.Status,
			StatusClass: models.ClassifyStatus(flat.Status),
			Bedrooms:    flat.Bedrooms,
			Bathrooms:   flat.Bathrooms,
			Facing:      flat.Facing,
			Amenities:   flat.Amenities,
		})
	}

	s.log.Debug("Units filtered", logger.Fields{
		"site":    name,
		"search":  criteria.Search,
		"type":    criteria.Type,
		"status":  criteria.Status,
		"matched": len(units),
	})

	return UnitListing{
		Site:          name,
		Criteria:      criteria,
		Units:         units,
		Count:         len(units),
		Total:         site.Flats.Len(),
		TypeOptions:   TypeOptions(site.Flats),
		StatusOptions: StatusOptions(),
	}, nil
}

func (s *siteService) GetFlat(ctx context.Context, name, flatNumber string) (FlatDetail, error) {
	site, err := s.GetSite(ctx, name)
	if err != nil {
		return FlatDetail{}, err
	}

	detail, ok := ResolveFlat(site, &flatNumber)
	if !ok {
		return FlatDetail{}, fmt.Errorf("%w: %q in %q", ErrFlatNotFound, flatNumber, name)
	}
	return detail, nil
}

func (s *siteService) GetGallery(ctx context.Context, name, category string) (GalleryView, error) {
	parsed, err := ParseGalleryCategory(category)
	if err != nil {
		return GalleryView{}, err
	}
	site, err := s.GetSite(ctx, name)
	if err != nil {
		return GalleryView{}, err
	}
	return BuildGallery(site.Gallery, parsed), nil
}
