package services

import (
	"fmt"

	"github.com/drcity/portal/api/internal/models"
)

// SiteLookup is the read side of the catalog used by the services.
type SiteLookup interface {
	Names() []string
	Site(name string) (*models.Site, bool)
	DefaultSite() string
}

// InitialSelection is the state a new visitor starts in.
func InitialSelection(sites SiteLookup) models.Selection {
	return models.Selection{
		Site:    sites.DefaultSite(),
		Section: models.SectionBuilding,
	}
}

// SelectSite switches to the named site. The selected flat is kept when the
// new site has it, otherwise it moves to the new site's first flat, or to no
// flat when the site has none. The section is unchanged.
func SelectSite(sites SiteLookup, current models.Selection, name string) (models.Selection, error) {
	site, ok := sites.Site(name)
	if !ok {
		return current, fmt.Errorf("%w: %q", ErrSiteNotFound, name)
	}

	next := current
	next.Site = name
	if current.Flat == nil || !site.Flats.Has(*current.Flat) {
		next.Flat = nil
		if first, ok := site.Flats.First(); ok {
			next.Flat = models.StringPtr(first)
		}
	}
	next.Version++
	return next, nil
}

// SelectSection changes only the section.
func SelectSection(current models.Selection, section models.Section) (models.Selection, error) {
	if !section.Valid() {
		return current, fmt.Errorf("%w: %q", ErrInvalidSection, section)
	}
	next := current
	next.Section = section
	next.Version++
	return next, nil
}

// SelectUnit sets the flat and switches to the flat section in one step.
// The flat must belong to the active site; otherwise the state is returned
// unchanged with ErrFlatNotFound.
func SelectUnit(sites SiteLookup, current models.Selection, flatNumber string) (models.Selection, error) {
	site, ok := sites.Site(current.Site)
	if !ok {
		return current, fmt.Errorf("%w: %q", ErrSiteNotFound, current.Site)
	}
	if !site.Flats.Has(flatNumber) {
		return current, fmt.Errorf("%w: %q in %q", ErrFlatNotFound, flatNumber, current.Site)
	}

	next := current
	next.Flat = models.StringPtr(flatNumber)
	next.Section = models.SectionFlat
	next.Version++
	return next, nil
}
