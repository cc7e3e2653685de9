package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Site is one real-estate project in the catalog.
// Sites are decoded once at startup and never mutated afterwards.
type Site struct {
	Name             string           `json:"name"`
	Tagline          string           `json:"tagline"`
	Maharera         string           `json:"maharera"`
	BuildingDetails  BuildingDetails  `json:"buildingDetails"`
	BuildingFeatures BuildingFeatures `json:"buildingFeatures"`
	Gallery          Gallery          `json:"gallery"`
	Amenities        []string         `json:"amenities"`
	ProjectMembers   []ProjectMember  `json:"projectMembers"`
	ThreeDModel      *ThreeDModel     `json:"threeDModel,omitempty"`
	Flats            FlatMap          `json:"flats"`
}

// BuildingDetails is the descriptive metadata shown on the building page.
type BuildingDetails struct {
	Location      string     `json:"location"`
	Possession    string     `json:"possession"`
	Contractor    string     `json:"contractor"`
	LaunchYear    FlexString `json:"launchYear"`
	CurrentStatus string     `json:"currentStatus"`
}

// BuildingFeatures holds the structural counts of a building. Values are kept
// as text because the source data mixes numbers with labels such as "G+12".
type BuildingFeatures struct {
	Floors       FlexString `json:"floors"`
	TotalFlats   FlexString `json:"totalFlats"`
	Elevators    FlexString `json:"elevators"`
	ParkingLevel FlexString `json:"parkingLevel"`
}

// Gallery is the ordered site-level media.
type Gallery struct {
	Images []string `json:"images"`
	Videos []string `json:"videos"`
}

// ProjectMember is one entry of the project team page.
type ProjectMember struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Experience string `json:"experience"`
	Photo      string `json:"photo,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Flat is one sellable unit of a site.
type Flat struct {
	FlatNumber  string       `json:"flatNumber"`
	Type        string       `json:"type"`
	Area        string       `json:"area"`
	Price       string       `json:"price"`
	Status      string       `json:"status"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Facing      string       `json:"facing"`
	Amenities   []string     `json:"amenities"`
	Images      []string     `json:"images"`
	Videos      []string     `json:"videos"`
	ThreeDModel *ThreeDModel `json:"threeDModel,omitempty"`
}

// Availability values used by the catalog and the status filter.
const (
	StatusAvailable = "Available"
	StatusLimited   = "Limited Availability"
	StatusSold      = "Sold"
)

// StatusClass is the normalised availability of a flat.
type StatusClass string

// Status classes. StatusClassUnknown covers any value outside the three known ones.
const (
	StatusClassAvailable StatusClass = "available"
	StatusClassLimited   StatusClass = "limited"
	StatusClassSold      StatusClass = "sold"
	StatusClassUnknown   StatusClass = "unknown"
)

// ClassifyStatus maps a raw status string to its class, ignoring case.
func ClassifyStatus(status string) StatusClass {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "available":
		return StatusClassAvailable
	case "limited availability":
		return StatusClassLimited
	case "sold":
		return StatusClassSold
	default:
		return StatusClassUnknown
	}
}

// FlexString decodes from a JSON string or number and always encodes as a string.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", trimmed)
	}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// FlatMap is the ordered mapping from flat number to Flat.
// The zero value is an empty mapping.
type FlatMap struct {
	numbers []string
	flats   map[string]Flat
}

// NewFlatMap builds a FlatMap from flats in the given order. The flat number of
// each record is used as its key; a repeated number is an error.
func NewFlatMap(flats ...Flat) (FlatMap, error) {
	m := FlatMap{flats: make(map[string]Flat, len(flats))}
	for _, flat := range flats {
		if err := m.add(flat.FlatNumber, flat); err != nil {
			return FlatMap{}, err
		}
	}
	return m, nil
}

func (m *FlatMap) add(number string, flat Flat) error {
	if number == "" {
		return fmt.Errorf("flat number must not be empty")
	}
	if _, exists := m.flats[number]; exists {
		return fmt.Errorf("duplicate flat number %q", number)
	}
	if m.flats == nil {
		m.flats = make(map[string]Flat)
	}
	// The mapping key is authoritative.
	flat.FlatNumber = number
	m.numbers = append(m.numbers, number)
	m.flats[number] = flat
	return nil
}

// Len returns the number of flats.
func (m FlatMap) Len() int { return len(m.numbers) }

// Numbers returns the flat numbers in catalog order.
func (m FlatMap) Numbers() []string {
	out := make([]string, len(m.numbers))
	copy(out, m.numbers)
	return out
}

// Get looks up a flat by number.
func (m FlatMap) Get(number string) (Flat, bool) {
	flat, ok := m.flats[number]
	return flat, ok
}

// Has reports whether number is a key of the mapping.
func (m FlatMap) Has(number string) bool {
	_, ok := m.flats[number]
	return ok
}

// First returns the first flat number in catalog order.
func (m FlatMap) First() (string, bool) {
	if len(m.numbers) == 0 {
		return "", false
	}
	return m.numbers[0], true
}

// Each calls fn for every flat in catalog order.
func (m FlatMap) Each(fn func(number string, flat Flat)) {
	for _, number := range m.numbers {
		fn(number, m.flats[number])
	}
}

// UnmarshalJSON decodes a JSON object, keeping member order.
func (m *FlatMap) UnmarshalJSON(data []byte) error {
	decoded := FlatMap{flats: make(map[string]Flat)}
	if strings.TrimSpace(string(data)) == "null" {
		*m = decoded
		return nil
	}

	err := EachMember(data, func(number string, raw json.RawMessage) error {
		var flat Flat
		if err := json.Unmarshal(raw, &flat); err != nil {
			return fmt.Errorf("flat %q: %w", number, err)
		}
		return decoded.add(number, flat.normalized())
	})
	if err != nil {
		return err
	}

	*m = decoded
	return nil
}

// MarshalJSON encodes the mapping as a JSON object in catalog order.
func (m FlatMap) MarshalJSON() ([]byte, error) {
	return writeOrderedObject(m.numbers, func(number string) (interface{}, error) {
		return m.flats[number], nil
	})
}

func (f Flat) normalized() Flat {
	f.Amenities = nonNil(f.Amenities)
	f.Images = nonNil(f.Images)
	f.Videos = nonNil(f.Videos)
	return f
}

// Normalize replaces absent lists with empty ones so the API never emits null arrays.
func (s *Site) Normalize() {
	s.Amenities = nonNil(s.Amenities)
	s.Gallery.Images = nonNil(s.Gallery.Images)
	s.Gallery.Videos = nonNil(s.Gallery.Videos)
	if s.ProjectMembers == nil {
		s.ProjectMembers = []ProjectMember{}
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
