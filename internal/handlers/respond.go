package handlers

import (
	"context"
	"errors"

	apierrors "github.com/drcity/portal/api/internal/errors"
	"github.com/drcity/portal/api/internal/services"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service error to its HTTP response. Errors
// without a mapping become a 500 with fallback as the message.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrSiteNotFound):
		apierrors.NotFound(c, "Site not found")
	case errors.Is(err, services.ErrFlatNotFound):
		apierrors.NotFound(c, "Flat not found")
	case errors.Is(err, services.ErrSessionNotFound):
		apierrors.NotFound(c, "Session not found")
	case errors.Is(err, services.ErrHotspotNotFound):
		apierrors.NotFound(c, "Hotspot not found")
	case errors.Is(err, services.ErrInvalidSection),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidTab):
		apierrors.BadRequest(c, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidInterestedFlat):
		apierrors.BadRequest(c, "Interested flat is not part of this site", nil)
	case errors.Is(err, services.ErrWrongTab):
		apierrors.Conflict(c, err.Error(), nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		apierrors.ServiceUnavailable(c, "Request cancelled before it completed", err)
	default:
		apierrors.InternalServerError(c, fallback, err)
	}
}
