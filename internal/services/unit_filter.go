package services

import (
	"strings"

	"github.com/drcity/portal/api/internal/models"
	"golang.org/x/text/cases"
)

// FilterAll is the sentinel that disables the type or status filter.
const FilterAll = "all"

// FilterCriteria narrows the units list.
type FilterCriteria struct {
	Search string `json:"search"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// DefaultCriteria matches every flat.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{Type: FilterAll, Status: FilterAll}
}

// WithDefaults replaces an empty type or status with FilterAll.
func (c FilterCriteria) WithDefaults() FilterCriteria {
	if c.Type == "" {
		c.Type = FilterAll
	}
	if c.Status == "" {
		c.Status = FilterAll
	}
	return c
}

// FilterUnits returns the numbers of the flats matching criteria, in catalog order.
// Search matches the flat number or type label as a case-insensitive substring.
// Type and status compare exactly unless set to FilterAll.
func FilterUnits(flats models.FlatMap, criteria FilterCriteria) []string {
	// A Caser keeps state and is not safe to share.
	fold := cases.Fold()
	search := fold.String(criteria.Search)

	matched := make([]string, 0, flats.Len())
	flats.Each(func(number string, flat models.Flat) {
		if search != "" &&
			!strings.Contains(fold.String(number), search) &&
			!strings.Contains(fold.String(flat.Type), search) {
			return
		}
		if criteria.Type != FilterAll && flat.Type != criteria.Type {
			return
		}
		if criteria.Status != FilterAll && flat.Status != criteria.Status {
			return
		}
		matched = append(matched, number)
	})
	return matched
}

// TypeOptions lists FilterAll followed by each distinct flat type in order of first appearance.
func TypeOptions(flats models.FlatMap) []string {
	options := []string{FilterAll}
	seen := make(map[string]struct{})
	flats.Each(func(_ string, flat models.Flat) {
		if _, ok := seen[flat.Type]; ok {
			return
		}
		seen[flat.Type] = struct{}{}
		options = append(options, flat.Type)
	})
	return options
}

// StatusOptions lists the availability values offered by the status filter.
func StatusOptions() []string {
	return []string{FilterAll, models.StatusAvailable, models.StatusLimited, models.StatusSold}
}
