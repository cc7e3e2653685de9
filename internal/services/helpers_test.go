package services

import (
	"io"
	"testing"

	"github.com/drcity/portal/api/internal/catalog"
	"github.com/drcity/portal/api/internal/logger"
	"github.com/stretchr/testify/require"
)

// testCatalogJSON has Site "A" from the two-flat scenario, a richer Vista
// Imperia, and a site without flats.
const testCatalogJSON = `{
	"Vista Imperia": {
		"name": "Vista Imperia",
		"gallery": {
			"images": ["/g/elevation.jpg", "/g/lobby.jpg"],
			"videos": ["/g/walkthrough.mp4"]
		},
		"flats": {
			"204": {"type": "2BHK", "status": "Limited Availability",
				"images": ["/f/204-a.jpg", "/f/204-b.jpg"], "videos": ["/f/204.MP4", "https://cdn/video/204"]},
			"1201": {"type": "4BHK Penthouse", "status": "Available"},
			"305": {"type": "3BHK", "status": "Sold"},
			"101": {"type": "2BHK", "status": "Available"}
		}
	},
	"A": {
		"flats": {
			"101": {"type": "2BHK", "status": "Available"},
			"102": {"type": "3BHK", "status": "Sold"}
		}
	},
	"Empty Plot": {
		"flats": {}
	}
}`

func testCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalogJSON), "Vista Imperia")
	require.NoError(t, err)
	return c
}

func testLogger() *logger.Logger {
	return logger.NewWithLevel("production", "", io.Discard)
}
