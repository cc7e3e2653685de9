package services

import (
	"sync"
	"testing"

	"github.com/drcity/portal/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialSelection(t *testing.T) {
	sel := InitialSelection(testCatalog(t))
	assert.Equal(t, "Vista Imperia", sel.Site)
	assert.Equal(t, models.SectionBuilding, sel.Section)
	assert.Nil(t, sel.Flat)
	assert.Zero(t, sel.Version)
}

func TestSelectSite(t *testing.T) {
	c := testCatalog(t)

	t.Run("keeps a flat that exists in the new site", func(t *testing.T) {
		start := models.Selection{Site: "A", Section: models.SectionUnits, Flat: models.StringPtr("101")}
		next, err := SelectSite(c, start, "Vista Imperia")
		require.NoError(t, err)
		assert.Equal(t, "Vista Imperia", next.Site)
		assert.Equal(t, "101", next.FlatNumber())
		assert.Equal(t, models.SectionUnits, next.Section)
		assert.Equal(t, start.Version+1, next.Version)
	})

	t.Run("falls back to the first flat in catalog order", func(t *testing.T) {
		start := models.Selection{Site: "A", Section: models.SectionFlat, Flat: models.StringPtr("102")}
		next, err := SelectSite(c, start, "Vista Imperia")
		require.NoError(t, err)
		assert.Equal(t, "204", next.FlatNumber())
		assert.Equal(t, models.SectionFlat, next.Section)
	})

	t.Run("no flat selected picks the first flat", func(t *testing.T) {
		next, err := SelectSite(c, InitialSelection(c), "A")
		require.NoError(t, err)
		assert.Equal(t, "101", next.FlatNumber())
	})

	t.Run("site without flats clears the flat", func(t *testing.T) {
		start := models.Selection{Site: "A", Section: models.SectionFlat, Flat: models.StringPtr("101")}
		next, err := SelectSite(c, start, "Empty Plot")
		require.NoError(t, err)
		assert.Nil(t, next.Flat)
	})

	t.Run("unknown site leaves the state unchanged", func(t *testing.T) {
		start := models.Selection{Site: "A", Section: models.SectionGallery, Flat: models.StringPtr("101"), Version: 4}
		next, err := SelectSite(c, start, "Nowhere")
		assert.ErrorIs(t, err, ErrSiteNotFound)
		assert.Equal(t, start, next)
	})

	t.Run("does not alias the previous flat pointer", func(t *testing.T) {
		flat := "101"
		start := models.Selection{Site: "A", Flat: &flat}
		next, err := SelectSite(c, start, "Vista Imperia")
		require.NoError(t, err)
		next2, err := SelectUnit(c, next, "305")
		require.NoError(t, err)
		assert.Equal(t, "101", *start.Flat)
		assert.Equal(t, "305", next2.FlatNumber())
	})
}

func TestSelectSection(t *testing.T) {
	start := models.Selection{Site: "A", Section: models.SectionBuilding, Flat: models.StringPtr("101")}

	for _, section := range models.Sections() {
		next, err := SelectSection(start, section)
		require.NoError(t, err)
		assert.Equal(t, section, next.Section)
		assert.Equal(t, start.Site, next.Site)
		assert.Equal(t, start.Flat, next.Flat)
	}

	next, err := SelectSection(start, models.Section("pricing"))
	assert.ErrorIs(t, err, ErrInvalidSection)
	assert.Equal(t, start, next)
}

func TestSelectUnit(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		start models.Selection
		flat  string
	}{
		{start: models.Selection{Site: "Vista Imperia", Section: models.SectionBuilding}, flat: "204"},
		{start: models.Selection{Site: "Vista Imperia", Section: models.SectionUnits, Flat: models.StringPtr("101")}, flat: "1201"},
		{start: models.Selection{Site: "A", Section: models.SectionMembers, Flat: models.StringPtr("102"), Version: 9}, flat: "101"},
	}

	for _, tt := range tests {
		next, err := SelectUnit(c, tt.start, tt.flat)
		require.NoError(t, err)
		assert.Equal(t, tt.flat, next.FlatNumber())
		assert.Equal(t, models.SectionFlat, next.Section)
		assert.Equal(t, tt.start.Site, next.Site)
		assert.Equal(t, tt.start.Version+1, next.Version)
	}
}

func TestSelectUnit_FlatMustBelongToSite(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name  string
		start models.Selection
		flat  string
		want  error
	}{
		{
			name:  "flat of another site",
			start: models.Selection{Site: "A", Section: models.SectionUnits, Flat: models.StringPtr("101"), Version: 2},
			flat:  "204",
			want:  ErrFlatNotFound,
		},
		{
			name:  "unknown number",
			start: models.Selection{Site: "Vista Imperia", Section: models.SectionBuilding},
			flat:  "999",
			want:  ErrFlatNotFound,
		},
		{
			name:  "site without flats",
			start: models.Selection{Site: "Empty Plot", Section: models.SectionUnits},
			flat:  "101",
			want:  ErrFlatNotFound,
		},
		{
			name:  "unknown active site",
			start: models.Selection{Site: "Nowhere", Section: models.SectionBuilding},
			flat:  "101",
			want:  ErrSiteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := SelectUnit(c, tt.start, tt.flat)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.start, next)
		})
	}
}

// TestSelectUnit_ReadersNeverSeeHalfState runs readers against a session
// while units are selected from other sections.
func TestSelectUnit_ReadersNeverSeeHalfState(t *testing.T) {
	c := testCatalog(t)
	store := NewSessionStore()
	session := store.Create(InitialSelection(c), InitialCapture())

	const rounds = 200
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			_, err := store.Update(session.ID, func(s Session) (Session, error) {
				sel, err := SelectSection(s.Selection, models.SectionUnits)
				s.Selection = sel
				return s, err
			})
			assert.NoError(t, err)
			_, err = store.Update(session.ID, func(s Session) (Session, error) {
				sel, err := SelectUnit(c, s.Selection, "204")
				s.Selection = sel
				return s, err
			})
			assert.NoError(t, err)
		}
	}()

	violations := 0
	go func() {
		defer wg.Done()
		for i := 0; i < rounds*4; i++ {
			got, err := store.Get(session.ID)
			if err != nil {
				continue
			}
			sel := got.Selection
			// Flat 204 is only ever set together with the flat section.
			if sel.FlatNumber() == "204" && sel.Section != models.SectionFlat && sel.Section != models.SectionUnits {
				violations++
			}
			if sel.Section == models.SectionFlat && sel.FlatNumber() != "204" {
				violations++
			}
		}
	}()

	wg.Wait()
	assert.Zero(t, violations)
}
