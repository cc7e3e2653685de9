// Package catalog holds the read-only site catalog the portal serves.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drcity/portal/api/internal/models"
)

// ErrInvalidCatalog is returned when a catalog document fails validation or decoding.
var ErrInvalidCatalog = errors.New("invalid catalog document")

//go:embed data/sites.json
var defaultDocument []byte

// DefaultDocument returns a copy of the catalog bundled with the binary.
func DefaultDocument() []byte {
	out := make([]byte, len(defaultDocument))
	copy(out, defaultDocument)
	return out
}

// Source supplies the raw catalog document.
type Source interface {
	Name() string
	LoadDocument(ctx context.Context) ([]byte, error)
}

// Catalog is an ordered, immutable mapping from site name to Site.
type Catalog struct {
	names       []string
	sites       map[string]*models.Site
	defaultSite string
}

// Load reads the document from src and parses it.
func Load(ctx context.Context, src Source, defaultSite string) (*Catalog, error) {
	data, err := src.LoadDocument(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", src.Name(), err)
	}
	return Parse(data, defaultSite)
}

// Parse validates and decodes a catalog document. Site order follows the
// document. When defaultSite is not in the catalog the first site becomes
// the default.
func Parse(data []byte, defaultSite string) (*Catalog, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	c := &Catalog{sites: make(map[string]*models.Site)}
	err := models.EachMember(data, func(name string, raw json.RawMessage) error {
		if _, exists := c.sites[name]; exists {
			return fmt.Errorf("duplicate site %q", name)
		}
		var site models.Site
		if err := json.Unmarshal(raw, &site); err != nil {
			return fmt.Errorf("site %q: %w", name, err)
		}
		if site.Name == "" {
			site.Name = name
		}
		site.Normalize()

		c.names = append(c.names, name)
		c.sites[name] = &site
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c.defaultSite = defaultSite
	if _, ok := c.sites[defaultSite]; !ok {
		c.defaultSite = c.names[0]
	}
	return c, nil
}

// Names returns site names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Site looks up a site by its catalog key.
func (c *Catalog) Site(name string) (*models.Site, bool) {
	site, ok := c.sites[name]
	return site, ok
}

// Has reports whether name is a site of the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.sites[name]
	return ok
}

// DefaultSite is the site new visitors start on.
func (c *Catalog) DefaultSite() string { return c.defaultSite }

// Len returns the number of sites.
func (c *Catalog) Len() int { return len(c.names) }
