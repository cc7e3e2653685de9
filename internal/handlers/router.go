package handlers

import "github.com/gin-gonic/gin"

// Handlers groups the HTTP handlers mounted by RegisterRoutes.
type Handlers struct {
	Health   *HealthHandler
	Sites    *SiteHandler
	Enquiry  *EnquiryHandler
	Sessions *SessionHandler
	Capture  *CaptureHandler
}

// RegisterRoutes mounts the health checks and the v1 API on router.
func RegisterRoutes(router gin.IRouter, h Handlers) {
	router.GET("/health", h.Health.Health)
	router.GET("/health/ready", h.Health.Ready)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/info", h.Health.Info)

		sites := v1.Group("/sites")
		{
			sites.GET("", h.Sites.List)
			sites.GET("/:site", h.Sites.Get)
			sites.GET("/:site/units", h.Sites.Units)
			sites.GET("/:site/flats/:flat", h.Sites.Flat)
			sites.GET("/:site/gallery", h.Sites.Gallery)
			sites.GET("/:site/amenities", h.Sites.Amenities)
			sites.GET("/:site/members", h.Sites.Members)
			sites.POST("/:site/enquiries", h.Enquiry.Submit)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", h.Sessions.Create)
			sessions.GET("/:id", h.Sessions.Get)
			sessions.PUT("/:id/site", h.Sessions.SelectSite)
			sessions.PUT("/:id/section", h.Sessions.SelectSection)
			sessions.PUT("/:id/unit", h.Sessions.SelectUnit)

			sessions.GET("/:id/capture", h.Capture.State)
			sessions.PUT("/:id/capture/tab", h.Capture.SelectTab)
			sessions.POST("/:id/capture/reset", h.Capture.ResetView)
			sessions.POST("/:id/capture/hotspots/:label", h.Capture.JumpToHotspot)
			sessions.POST("/:id/capture/camera", h.Capture.CaptureCamera)
			sessions.POST("/:id/capture/point", h.Capture.CapturePoint)
		}

		v1.GET("/capture/hotspots", h.Capture.Hotspots)
	}
}
