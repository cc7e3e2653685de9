package handlers

import (
	"net/http"

	"github.com/drcity/portal/api/internal/middleware"
	"github.com/drcity/portal/api/internal/services"
	"github.com/gin-gonic/gin"
)

// EnquiryHandler accepts contact form submissions.
type EnquiryHandler struct {
	service services.EnquiryService
}

// NewEnquiryHandler creates a new EnquiryHandler instance.
func NewEnquiryHandler(service services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{
		service: service,
	}
}

// EnquiryRequest is the body of POST /sites/:site/enquiries.
type EnquiryRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required,min=7,max=20"`
	Subject        string `json:"subject" binding:"required,max=200"`
	Message        string `json:"message" binding:"required,max=2000"`
	InterestedFlat string `json:"interestedFlat" binding:"max=50"`
}

// Submit handles POST /api/v1/sites/:site/enquiries endpoint.
func (h *EnquiryHandler) Submit(c *gin.Context) {
	var req EnquiryRequest
	if !bindJSON(c, &req) {
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Processing enquiry", map[string]interface{}{
			"site":            c.Param("site"),
			"interested_flat": req.InterestedFlat,
		})
	}

	receipt, err := h.service.Submit(c.Request.Context(), c.Param("site"), services.Enquiry{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Subject:        req.Subject,
		Message:        req.Message,
		InterestedFlat: req.InterestedFlat,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to submit enquiry")
		return
	}

	c.JSON(http.StatusCreated, receipt)
}
