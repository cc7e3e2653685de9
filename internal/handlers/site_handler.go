package handlers

import (
	"net/http"

	apierrors "github.com/drcity/portal/api/internal/errors"
	"github.com/drcity/portal/api/internal/middleware"
	"github.com/drcity/portal/api/internal/models"
	"github.com/drcity/portal/api/internal/services"
	"github.com/gin-gonic/gin"
)

// SiteHandler serves the read-only catalog endpoints.
type SiteHandler struct {
	service services.SiteService
}

// NewSiteHandler creates a new SiteHandler instance.
func NewSiteHandler(service services.SiteService) *SiteHandler {
	return &SiteHandler{
		service: service,
	}
}

// UnitsQuery represents the query parameters of the units endpoint.
type UnitsQuery struct {
	Search string `form:"search" binding:"max=100"`
	Type   string `form:"type" binding:"max=100"`
	Status string `form:"status" binding:"max=100"`
}

// MediaQuery selects the carousel position of a media list.
type MediaQuery struct {
	Media *int `form:"media" binding:"omitempty,min=0"`
}

// GalleryQuery represents the query parameters of the gallery endpoint.
type GalleryQuery struct {
	Category string `form:"category" binding:"omitempty,oneof=all images videos"`
	Index    *int   `form:"index" binding:"omitempty,min=0"`
}

// BuildingResponse is the building section of a site.
type BuildingResponse struct {
	Name             string                  `json:"name"`
	Tagline          string                  `json:"tagline"`
	Maharera         string                  `json:"maharera"`
	BuildingDetails  models.BuildingDetails  `json:"buildingDetails"`
	BuildingFeatures models.BuildingFeatures `json:"buildingFeatures"`
	ThreeDModel      *models.ThreeDModel     `json:"threeDModel"`
	FlatCount        int                     `json:"flatCount"`
}

// FlatResponse is a resolved flat with its optional carousel.
type FlatResponse struct {
	services.FlatDetail
	Carousel *services.Carousel `json:"carousel,omitempty"`
}

// GalleryResponse is a gallery view with its optional carousel.
type GalleryResponse struct {
	services.GalleryView
	Carousel *services.Carousel `json:"carousel,omitempty"`
}

// AmenitiesResponse lists the site-level amenities.
type AmenitiesResponse struct {
	Site      string   `json:"site"`
	Amenities []string `json:"amenities"`
	Count     int      `json:"count"`
}

// MembersResponse lists the project team.
type MembersResponse struct {
	Site    string                 `json:"site"`
	Members []models.ProjectMember `json:"members"`
	Count   int                    `json:"count"`
}

func buildingResponse(site *models.Site) BuildingResponse {
	return BuildingResponse{
		Name:             site.Name,
		Tagline:          site.Tagline,
		Maharera:         site.Maharera,
		BuildingDetails:  site.BuildingDetails,
		BuildingFeatures: site.BuildingFeatures,
		ThreeDModel:      site.ThreeDModel,
		FlatCount:        site.Flats.Len(),
	}
}

// openCarousel attaches a carousel when index is set. Indexes wrap around the
// list; asking for a carousel over an empty list is rejected.
func openCarousel(c *gin.Context, media []models.MediaItem, index *int) (*services.Carousel, bool) {
	if index == nil {
		return nil, true
	}
	carousel, ok := services.OpenCarousel(media, *index)
	if !ok {
		apierrors.BadRequest(c, "No media to display", map[string]interface{}{
			"index": *index,
		})
		return nil, false
	}
	return &carousel, true
}

// List handles GET /api/v1/sites endpoint.
func (h *SiteHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListSites(c.Request.Context()))
}

// Get handles GET /api/v1/sites/:site endpoint.
func (h *SiteHandler) Get(c *gin.Context) {
	site, err := h.service.GetSite(c.Request.Context(), c.Param("site"))
	if err != nil {
		respondServiceError(c, err, "Failed to load site")
		return
	}

	c.JSON(http.StatusOK, buildingResponse(site))
}

// Units handles GET /api/v1/sites/:site/units endpoint.
// Empty type and status parameters mean all.
func (h *SiteHandler) Units(c *gin.Context) {
	var req UnitsQuery
	if !bindQuery(c, &req) {
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Debug("Processing units request", map[string]interface{}{
			"site":   c.Param("site"),
			"search": req.Search,
			"type":   req.Type,
			"status": req.Status,
		})
	}

	listing, err := h.service.ListUnits(c.Request.Context(), c.Param("site"), services.FilterCriteria{
		Search: req.Search,
		Type:   req.Type,
		Status: req.Status,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to list units")
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Flat handles GET /api/v1/sites/:site/flats/:flat endpoint.
func (h *SiteHandler) Flat(c *gin.Context) {
	var req MediaQuery
	if !bindQuery(c, &req) {
		return
	}

	detail, err := h.service.GetFlat(c.Request.Context(), c.Param("site"), c.Param("flat"))
	if err != nil {
		respondServiceError(c, err, "Failed to load flat")
		return
	}

	carousel, ok := openCarousel(c, detail.Media, req.Media)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, FlatResponse{FlatDetail: detail, Carousel: carousel})
}

// Gallery handles GET /api/v1/sites/:site/gallery endpoint.
func (h *SiteHandler) Gallery(c *gin.Context) {
	var req GalleryQuery
	if !bindQuery(c, &req) {
		return
	}

	view, err := h.service.GetGallery(c.Request.Context(), c.Param("site"), req.Category)
	if err != nil {
		respondServiceError(c, err, "Failed to load gallery")
		return
	}

	carousel, ok := openCarousel(c, view.Items, req.Index)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, GalleryResponse{GalleryView: view, Carousel: carousel})
}

// Amenities handles GET /api/v1/sites/:site/amenities endpoint.
func (h *SiteHandler) Amenities(c *gin.Context) {
	site, err := h.service.GetSite(c.Request.Context(), c.Param("site"))
	if err != nil {
		respondServiceError(c, err, "Failed to load amenities")
		return
	}

	c.JSON(http.StatusOK, AmenitiesResponse{
		Site:      site.Name,
		Amenities: site.Amenities,
		Count:     len(site.Amenities),
	})
}

// Members handles GET /api/v1/sites/:site/members endpoint.
func (h *SiteHandler) Members(c *gin.Context) {
	site, err := h.service.GetSite(c.Request.Context(), c.Param("site"))
	if err != nil {
		respondServiceError(c, err, "Failed to load project members")
		return
	}

	c.JSON(http.StatusOK, MembersResponse{
		Site:    site.Name,
		Members: site.ProjectMembers,
		Count:   len(site.ProjectMembers),
	})
}
