package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drcity/portal/api/internal/catalog"
	apierrors "github.com/drcity/portal/api/internal/errors"
	"github.com/drcity/portal/api/internal/logger"
	"github.com/drcity/portal/api/internal/middleware"
	"github.com/drcity/portal/api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const handlerCatalogJSON = `{
	"Vista Imperia": {
		"name": "Vista Imperia",
		"tagline": "Live above the city",
		"maharera": "P51700000001",
		"buildingDetails": {"location": "Thane West", "launchYear": 2023},
		"buildingFeatures": {"floors": "G+12", "totalFlats": 48},
		"gallery": {
			"images": ["/g/elevation.jpg", "/g/lobby.jpg"],
			"videos": ["/g/walkthrough.mp4"]
		},
		"amenities": ["Clubhouse", "Gym", "Pool"],
		"projectMembers": [
			{"name": "R. Kulkarni", "role": "Architect", "experience": "20 years"}
		],
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

// testEnv is a fully wired router over the handler test catalog.
type testEnv struct {
	router  *gin.Engine
	catalog *catalog.Catalog
	store   *services.SessionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	sites, err := catalog.Parse([]byte(handlerCatalogJSON), "Vista Imperia")
	require.NoError(t, err)

	log := logger.NewWithLevel("production", "", io.Discard)
	store := services.NewSessionStore()
	siteService := services.NewSiteService(sites, log)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	RegisterRoutes(router, Handlers{
		Health:   NewHealthHandler(sites, nil, "test"),
		Sites:    NewSiteHandler(siteService),
		Enquiry:  NewEnquiryHandler(services.NewEnquiryService(sites, 0, log)),
		Sessions: NewSessionHandler(services.NewSessionService(sites, store, log), siteService),
		Capture:  NewCaptureHandler(services.NewCaptureService(store, log)),
	})

	return &testEnv{router: router, catalog: sites, store: store}
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			data, err := json.Marshal(b)
			if err != nil {
				panic(err)
			}
			reader = bytes.NewReader(data)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// createSession opens a session and returns its ID.
func (e *testEnv) createSession(t *testing.T) string {
	t.Helper()
	w := e.do(http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var response struct {
		Session services.Session `json:"session"`
	}
	decodeBody(t, w, &response)
	require.NotEmpty(t, response.Session.ID)
	return response.Session.ID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.ErrorDetail {
	t.Helper()
	var response apierrors.ErrorResponse
	decodeBody(t, w, &response)
	return response.Error
}
