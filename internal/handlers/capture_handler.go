package handlers

import (
	"net/http"

	"github.com/drcity/portal/api/internal/models"
	"github.com/drcity/portal/api/internal/services"
	"github.com/gin-gonic/gin"
)

// CaptureHandler serves the coordinate capture page.
type CaptureHandler struct {
	service services.CaptureService
}

// NewCaptureHandler creates a new CaptureHandler instance.
func NewCaptureHandler(service services.CaptureService) *CaptureHandler {
	return &CaptureHandler{
		service: service,
	}
}

// HotspotURI identifies a hotspot of a session's capture page.
type HotspotURI struct {
	ID    string `uri:"id" binding:"required,uuid"`
	Label string `uri:"label" binding:"required"`
}

// SelectTabRequest is the body of PUT /sessions/:id/capture/tab.
type SelectTabRequest struct {
	Tab string `json:"tab" binding:"required,capturetab"`
}

// CaptureCameraRequest is the camera placement reported by the viewer.
type CaptureCameraRequest struct {
	Position *models.Vec3 `json:"position" binding:"required"`
	Target   *models.Vec3 `json:"target" binding:"required"`
}

// CapturePointRequest is the model-space hit of a click. A null point means
// the click missed the model.
type CapturePointRequest struct {
	Point *models.Vec3 `json:"point"`
}

// HotspotsResponse lists the camera presets.
type HotspotsResponse struct {
	Hotspots []models.Hotspot `json:"hotspots"`
	Count    int              `json:"count"`
}

// CaptureResponse is the capture page state, with the dialog produced by the
// last action when there is one.
type CaptureResponse struct {
	Tab                  models.CaptureTab      `json:"tab"`
	Camera               models.CameraView      `json:"camera"`
	OrbitControlsEnabled bool                   `json:"orbitControlsEnabled"`
	Message              *models.CaptureMessage `json:"message,omitempty"`
}

func captureResponse(state models.CaptureState, message *models.CaptureMessage) CaptureResponse {
	return CaptureResponse{
		Tab:                  state.Tab,
		Camera:               state.Camera,
		OrbitControlsEnabled: state.OrbitControlsEnabled(),
		Message:              message,
	}
}

// Hotspots handles GET /api/v1/capture/hotspots endpoint.
func (h *CaptureHandler) Hotspots(c *gin.Context) {
	hotspots := h.service.Hotspots(c.Request.Context())
	c.JSON(http.StatusOK, HotspotsResponse{Hotspots: hotspots, Count: len(hotspots)})
}

// State handles GET /api/v1/sessions/:id/capture endpoint.
func (h *CaptureHandler) State(c *gin.Context) {
	var uri SessionURI
	if !bindURI(c, &uri) {
		return
	}

	state, err := h.service.State(c.Request.Context(), uri.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to load capture state")
		return
	}

	c.JSON(http.StatusOK, captureResponse(state, nil))
}

// SelectTab handles PUT /api/v1/sessions/:id/capture/tab endpoint.
func (h *CaptureHandler) SelectTab(c *gin.Context) {
	var uri SessionURI
	if !bindURI(c, &uri) {
		return
	}
	var req SelectTabRequest
	if !bindJSON(c, &req) {
		return
	}

	state, err := h.service.SelectTab(c.Request.Context(), uri.ID, models.CaptureTab(req.Tab))
	if err != nil {
		respondServiceError(c, err, "Failed to select capture tab")
		return
	}

	c.JSON(http.StatusOK, captureResponse(state, nil))
}

// ResetView handles POST /api/v1/sessions/:id/capture/reset endpoint.
func (h *CaptureHandler) ResetView(c *gin.Context) {
	var uri SessionURI
	if !bindURI(c, &uri) {
		return
	}

	state, err := h.service.ResetView(c.Request.Context(), uri.ID)
	if err != nil {
		respondServiceError(c, err, "Failed to reset view")
		return
	}

	c.JSON(http.StatusOK, captureResponse(state, nil))
}

// JumpToHotspot handles POST /api/v1/sessions/:id/capture/hotspots/:label endpoint.
func (h *CaptureHandler) JumpToHotspot(c *gin.Context) {
	var uri HotspotURI
	if !bindURI(c, &uri) {
		return
	}

	state, err := h.service.JumpToHotspot(c.Request.Context(), uri.ID, uri.Label)
	if err != nil {
		respondServiceError(c, err, "Failed to move camera")
		return
	}

	c.JSON(http.StatusOK, captureResponse(state, nil))
}

// CaptureCamera handles POST /api/v1/sessions/:id/capture/camera endpoint.
// It is only available on the captureCamera tab.
func (h *CaptureHandler) CaptureCamera(c *gin.Context) {
	var uri SessionURI
	if !bindURI(c, &uri) {
		return
	}
	var req CaptureCameraRequest
	if !bindJSON(c, &req) {
		return
	}

	state, message, err := h.service.CaptureCamera(c.Request.Context(), uri.ID, models.CameraView{
		Position: *req.Position,
		Target:   *req.Target,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to capture camera view")
		return
	}

	c.JSON(http.StatusOK, captureResponse(state, &message))
}

// CapturePoint handles POST /api/v1/sessions/:id/capture/point endpoint.
// It is only available on the captureClick tab.
func (h *CaptureHandler) CapturePoint(c *gin.Context) {
	var uri SessionURI
	if !bindURI(c, &uri) {
		return
	}
	var req CapturePointRequest
	if !bindJSON(c, &req) {
		return
	}

	state, message, err := h.service.CapturePoint(c.Request.Context(), uri.ID, req.Point)
	if err != nil {
		respondServiceError(c, err, "Failed to capture point")
		return
	}

	c.JSON(http.StatusOK, captureResponse(state, &message))
}
