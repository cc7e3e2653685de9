package services

import (
	"context"
	"testing"

	"github.com/drcity/portal/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSiteService(t *testing.T) SiteService {
	return NewSiteService(testCatalog(t), testLogger())
}

func TestSiteService_ListSites(t *testing.T) {
	list := newTestSiteService(t).ListSites(context.Background())
	assert.Equal(t, []string{"Vista Imperia", "A", "Empty Plot"}, list.Sites)
	assert.Equal(t, "Vista Imperia", list.Default)
}

func TestSiteService_GetSite(t *testing.T) {
	svc := newTestSiteService(t)

	site, err := svc.GetSite(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "A", site.Name)

	_, err = svc.GetSite(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, ErrSiteNotFound)
}

func TestSiteService_ListUnits(t *testing.T) {
	svc := newTestSiteService(t)
	ctx := context.Background()

	t.Run("empty criteria lists every unit", func(t *testing.T) {
		listing, err := svc.ListUnits(ctx, "Vista Imperia", FilterCriteria{})
		require.NoError(t, err)
		assert.Equal(t, DefaultCriteria(), listing.Criteria)
		assert.Equal(t, 4, listing.Count)
		assert.Equal(t, 4, listing.Total)
		assert.Equal(t, "204", listing.Units[0].FlatNumber)
		assert.Equal(t, models.StatusClassLimited, listing.Units[0].StatusClass)
		assert.Equal(t, []string{"all", "2BHK", "4BHK Penthouse", "3BHK"}, listing.TypeOptions)
		assert.Equal(t, StatusOptions(), listing.StatusOptions)
	})

	t.Run("filters by type", func(t *testing.T) {
		listing, err := svc.ListUnits(ctx, "A", FilterCriteria{Type: "2BHK"})
		require.NoError(t, err)
		require.Equal(t, 1, listing.Count)
		assert.Equal(t, "101", listing.Units[0].FlatNumber)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		listing, err := svc.ListUnits(ctx, "Empty Plot", FilterCriteria{Search: "2"})
		require.NoError(t, err)
		assert.Equal(t, 0, listing.Count)
		assert.NotNil(t, listing.Units)
	})

	t.Run("unknown site", func(t *testing.T) {
		_, err := svc.ListUnits(ctx, "Nowhere", FilterCriteria{})
		assert.ErrorIs(t, err, ErrSiteNotFound)
	})
}

func TestSiteService_GetFlat(t *testing.T) {
	svc := newTestSiteService(t)
	ctx := context.Background()

	detail, err := svc.GetFlat(ctx, "Vista Imperia", "204")
	require.NoError(t, err)
	assert.Equal(t, "204", detail.Flat.FlatNumber)
	assert.Len(t, detail.Media, 4)

	_, err = svc.GetFlat(ctx, "Vista Imperia", "102")
	assert.ErrorIs(t, err, ErrFlatNotFound)

	_, err = svc.GetFlat(ctx, "Nowhere", "101")
	assert.ErrorIs(t, err, ErrSiteNotFound)
}

func TestSiteService_GetGallery(t *testing.T) {
	svc := newTestSiteService(t)
	ctx := context.Background()

	view, err := svc.GetGallery(ctx, "Vista Imperia", "")
	require.NoError(t, err)
	assert.Equal(t, GalleryAll, view.Category)
	assert.Len(t, view.Items, 3)

	view, err = svc.GetGallery(ctx, "Vista Imperia", "videos")
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)

	_, err = svc.GetGallery(ctx, "Vista Imperia", "panoramas")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.GetGallery(ctx, "Nowhere", "all")
	assert.ErrorIs(t, err, ErrSiteNotFound)
}
