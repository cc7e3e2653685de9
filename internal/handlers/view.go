package handlers

import (
	"context"
	"fmt"

	"github.com/drcity/portal/api/internal/models"
	"github.com/drcity/portal/api/internal/services"
)

// BuildingSectionView is the composed building section.
type BuildingSectionView struct {
	Section models.Section `json:"section"`
	BuildingResponse
}

// FlatSectionView is the composed flat section. Flat is null and Empty is
// true when no flat is selected.
type FlatSectionView struct {
	Section models.Section `json:"section"`
	Flat    *FlatResponse  `json:"flat"`
	Empty   bool           `json:"empty"`
}

// UnitsSectionView is the composed units section with default filters applied.
type UnitsSectionView struct {
	Section models.Section `json:"section"`
	services.UnitListing
}

// GallerySectionView is the composed gallery section showing all media.
type GallerySectionView struct {
	Section models.Section `json:"section"`
	services.GalleryView
}

// AmenitiesSectionView is the composed amenities section.
type AmenitiesSectionView struct {
	Section models.Section `json:"section"`
	AmenitiesResponse
}

// EnquirySectionView carries what the enquiry form needs.
type EnquirySectionView struct {
	Section models.Section `json:"section"`
	Site    string         `json:"site"`
	Flats   []string       `json:"flats"`
}

// MembersSectionView is the composed project members section.
type MembersSectionView struct {
	Section models.Section `json:"section"`
	MembersResponse
}

// composeView renders the section a selection has on screen.
func composeView(ctx context.Context, sites services.SiteService, sel models.Selection) (interface{}, error) {
	site, err := sites.GetSite(ctx, sel.Site)
	if err != nil {
		return nil, err
	}

	switch sel.Section {
	case models.SectionBuilding:
		return BuildingSectionView{Section: sel.Section, BuildingResponse: buildingResponse(site)}, nil

	case models.SectionFlat:
		view := FlatSectionView{Section: sel.Section, Empty: true}
		if detail, ok := services.ResolveFlat(site, sel.Flat); ok {
			view.Flat = &FlatResponse{FlatDetail: detail}
			view.Empty = false
		}
		return view, nil

	case models.SectionUnits:
		listing, err := sites.ListUnits(ctx, sel.Site, services.DefaultCriteria())
		if err != nil {
			return nil, err
		}
		return UnitsSectionView{Section: sel.Section, UnitListing: listing}, nil

	case models.SectionGallery:
		return GallerySectionView{
			Section:     sel.Section,
			GalleryView: services.BuildGallery(site.Gallery, services.GalleryAll),
		}, nil

	case models.SectionAmenities:
		return AmenitiesSectionView{
			Section: sel.Section,
			AmenitiesResponse: AmenitiesResponse{
				Site:      site.Name,
				Amenities: site.Amenities,
				Count:     len(site.Amenities),
			},
		}, nil

	case models.SectionEnquiry:
		return EnquirySectionView{Section: sel.Section, Site: site.Name, Flats: site.Flats.Numbers()}, nil

	case models.SectionMembers:
		return MembersSectionView{
			Section: sel.Section,
			MembersResponse: MembersResponse{
				Site:    site.Name,
				Members: site.ProjectMembers,
				Count:   len(site.ProjectMembers),
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", services.ErrInvalidSection, sel.Section)
}
