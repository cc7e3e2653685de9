package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoSites = `{
	"Site B": {"flats": {"2": {"type": "1BHK", "status": "Sold"}}},
	"Site A": {"name": "Site A", "flats": {
		"101": {"type": "2BHK", "status": "Available"},
		"102": {"type": "3BHK", "status": "Sold"}
	}}
}`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(twoSites), "Site A")
	require.NoError(t, err)

	assert.Equal(t, []string{"Site B", "Site A"}, c.Names())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "Site A", c.DefaultSite())

	site, ok := c.Site("Site A")
	require.True(t, ok)
	assert.Equal(t, []string{"101", "102"}, site.Flats.Numbers())

	// Name falls back to the catalog key.
	b, ok := c.Site("Site B")
	require.True(t, ok)
	assert.Equal(t, "Site B", b.Name)
	assert.NotNil(t, b.Amenities)

	assert.True(t, c.Has("Site B"))
	assert.False(t, c.Has("Site C"))
}

func TestParse_DefaultFallsBackToFirstSite(t *testing.T) {
	c, err := Parse([]byte(twoSites), "Vista Imperia")
	require.NoError(t, err)
	assert.Equal(t, "Site B", c.DefaultSite())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{"Site A": `},
		{name: "empty catalog", data: `{}`},
		{name: "top-level array", data: `[]`},
		{name: "missing flats", data: `{"Site A": {"name": "Site A"}}`},
		{name: "flat without status", data: `{"Site A": {"flats": {"101": {"type": "2BHK"}}}}`},
		{name: "fractional bedrooms", data: `{"Site A": {"flats": {"101": {"type": "2BHK", "status": "Sold", "bedrooms": 2.5}}}}`},
		{name: "image list of numbers", data: `{"Site A": {"gallery": {"images": [1, 2]}, "flats": {}}}`},
		{name: "bad vector", data: `{"Site A": {"threeDModel": {"path": "/m.glb", "viewerConfig": {"camera": {"position": [1, 2]}}}, "flats": {}}}`},
		{name: "duplicate flat", data: `{"Site A": {"flats": {"1": {"type": "x", "status": "Sold"}, "1": {"type": "y", "status": "Sold"}}}}`},
		{name: "duplicate site", data: `{"Site A": {"flats": {}}, "Site A": {"flats": {}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog), "expected ErrInvalidCatalog, got %v", err)
		})
	}
}

func TestDefaultDocument(t *testing.T) {
	c, err := Parse(DefaultDocument(), "Vista Imperia")
	require.NoError(t, err)

	assert.Equal(t, []string{"Vista Imperia", "Shree Gajanan Enclave"}, c.Names())
	assert.Equal(t, "Vista Imperia", c.DefaultSite())

	vista, ok := c.Site("Vista Imperia")
	require.True(t, ok)
	assert.Equal(t, []string{"101", "102", "204", "1201"}, vista.Flats.Numbers())
	assert.Equal(t, "2023", string(vista.BuildingDetails.LaunchYear))
	assert.Equal(t, "G+12", string(vista.BuildingFeatures.Floors))
	require.NotNil(t, vista.ThreeDModel)
	assert.True(t, vista.ThreeDModel.ViewerConfig.Controls.AutoRotate)
	assert.Equal(t, 0.5, vista.ThreeDModel.ViewerConfig.Lights.AmbientLight.Intensity)

	flat, ok := vista.Flats.Get("101")
	require.True(t, ok)
	require.NotNil(t, flat.ThreeDModel)
	assert.Equal(t, 50.0, flat.ThreeDModel.ViewerConfig.Camera.FOV)
}

func TestDefaultDocumentIsCopy(t *testing.T) {
	doc := DefaultDocument()
	doc[0] = 'x'
	assert.Equal(t, byte('{'), DefaultDocument()[0])
}

type stubSource struct {
	data []byte
	err  error
}

func (s stubSource) Name() string { return "stub" }

func (s stubSource) LoadDocument(ctx context.Context) ([]byte, error) {
	return s.data, s.err
}

func TestLoad(t *testing.T) {
	t.Run("parses the source document", func(t *testing.T) {
		c, err := Load(context.Background(), stubSource{data: []byte(twoSites)}, "Site A")
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("wraps source errors", func(t *testing.T) {
		sourceErr := errors.New("connection refused")
		_, err := Load(context.Background(), stubSource{err: sourceErr}, "Site A")
		require.Error(t, err)
		assert.ErrorIs(t, err, sourceErr)
		assert.Contains(t, err.Error(), "stub")
	})
}
