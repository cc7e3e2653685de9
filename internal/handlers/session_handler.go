package handlers

import (
	"net/http"

	"github.com/drcity/portal/api/internal/middleware"
	"github.com/drcity/portal/api/internal/models"
	"github.com/drcity/portal/api/internal/services"
	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the dashboard selection state of a visitor.
type SessionHandler struct {
	sessions services.SessionService
	sites    services.SiteService
}

// NewSessionHandler creates a new SessionHandler instance.
func NewSessionHandler(sessions services.SessionService, sites services.SiteService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		sites:    sites,
	}
}

// SessionURI identifies a session in the request path.
type SessionURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// SelectSiteRequest is the body of PUT /sessions/:id/site.
type SelectSiteRequest struct {
	Site string `json:"site" binding:"required"`
}

// SelectSectionRequest is the body of PUT /sessions/:id/section.
type SelectSectionRequest struct {
	Section string `json:"section" binding:"required,section"`
}

// SelectUnitRequest is the body of PUT /sessions/:id/unit.
type SelectUnitRequest struct {
	Flat string `json:"flat" binding:"required"`
}

// SessionResponse is a session with the section it currently shows.
type SessionResponse struct {
	Session services.Session `json:"session"`
	View    interface{}      `json:"view"`
}

func (h *SessionHandler) respond(c *gin.Context, status int, session services.Session) {
	view, err := composeView(c.Request.Context(), h.sites, session.Selection)
	if err != nil {
		respondServiceError(c, err, "Failed to compose view")
		return
	}

	c.Header(middleware.SessionIDHeader, session.ID)
	c.JSON(status, SessionResponse{Session: session, View: view})
}

// Create handles POST /api/v1/sessions endpoint.
func (h *SessionHandler) Create(c *gin.Context) {
	session, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to create session")
		return
	}

	h.respond(c, http.StatusCreated, session)
}

// Get handles GET /api/v1/sessions/:id endpoint.
func (h *SessionHandler) Get(c *gin.Context) {
	var uri SessionURI
	if !bindURI(c, &uri) {
		return
	}

	session, err := h.sessions.Get(c.Request.Context(), uri.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to load session")
		return
	}

	h.respond(c, http.StatusOK, session)
}

// SelectSite handles PUT /api/v1/sessions/:id/site endpoint.
func (h *SessionHandler) SelectSite(c *gin.Context) {
	var uri SessionURI
	if !bindURI(c, &uri) {
		return
	}
	var req SelectSiteRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.sessions.SelectSite(c.Request.Context(), uri.ID, req.Site)
	if err != nil {
		respondServiceError(c, err, "Failed to select site")
		return
	}

	h.respond(c, http.StatusOK, session)
}

// SelectSection handles PUT /api/v1/sessions/:id/section endpoint.
func (h *SessionHandler) SelectSection(c *gin.Context) {
	var uri SessionURI
	if !bindURI(c, &uri) {
		return
	}
	var req SelectSectionRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.sessions.SelectSection(c.Request.Context(), uri.ID, models.Section(req.Section))
	if err != nil {
		respondServiceError(c, err, "Failed to select section")
		return
	}

	h.respond(c, http.StatusOK, session)
}

// SelectUnit handles PUT /api/v1/sessions/:id/unit endpoint.
// A flat outside the active site is rejected with 404 and the session is
// left as it was.
func (h *SessionHandler) SelectUnit(c *gin.Context) {
	var uri SessionURI
	if !bindURI(c, &uri) {
		return
	}
	var req SelectUnitRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.sessions.SelectUnit(c.Request.Context(), uri.ID, req.Flat)
	if err != nil {
		respondServiceError(c, err, "Failed to select unit")
		return
	}

	h.respond(c, http.StatusOK, session)
}
