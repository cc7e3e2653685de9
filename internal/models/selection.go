package models

import "fmt"

// Section is a navigation target of the dashboard.
type Section string

// Dashboard sections.
const (
	SectionBuilding  Section = "building"
	SectionFlat      Section = "flat"
	SectionUnits     Section = "units"
	SectionGallery   Section = "gallery"
	SectionAmenities Section = "amenities"
	SectionEnquiry   Section = "enquiry"
	SectionMembers   Section = "members"
)

var sections = []Section{
	SectionBuilding,
	SectionFlat,
	SectionUnits,
	SectionGallery,
	SectionAmenities,
	SectionEnquiry,
	SectionMembers,
}

// Sections returns every section in sidebar order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	for _, known := range sections {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSection converts raw into a Section, rejecting unknown values.
func ParseSection(raw string) (Section, error) {
	s := Section(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown section %q", raw)
	}
	return s, nil
}

// Selection is what a visitor currently has on screen. A Selection value is
// never modified in place; transitions return a new value.
type Selection struct {
	Site    string  `json:"site"`
	Section Section `json:"section"`
	Flat    *string `json:"flat"`
	Version uint64  `json:"version"`
}

// FlatNumber returns the selected flat number, or "" when none is selected.
func (s Selection) FlatNumber() string {
	if s.Flat == nil {
		return ""
	}
	return *s.Flat
}

// StringPtr returns a pointer to a copy of v.
func StringPtr(v string) *string {
	return &v
}
