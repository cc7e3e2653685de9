package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/drcity/portal/api/internal/errors"
	"github.com/drcity/portal/api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{err: fmt.Errorf("%w: %q", services.ErrSiteNotFound, "x"), status: http.StatusNotFound, code: apierrors.ErrNotFound},
		{err: services.ErrFlatNotFound, status: http.StatusNotFound, code: apierrors.ErrNotFound},
		{err: services.ErrSessionNotFound, status: http.StatusNotFound, code: apierrors.ErrNotFound},
		{err: services.ErrHotspotNotFound, status: http.StatusNotFound, code: apierrors.ErrNotFound},
		{err: services.ErrInvalidSection, status: http.StatusBadRequest, code: apierrors.ErrBadRequest},
		{err: services.ErrInvalidCategory, status: http.StatusBadRequest, code: apierrors.ErrBadRequest},
		{err: services.ErrInvalidInterestedFlat, status: http.StatusBadRequest, code: apierrors.ErrBadRequest},
		{err: services.ErrWrongTab, status: http.StatusConflict, code: apierrors.ErrConflict},
		{err: fmt.Errorf("enquiry submission cancelled: %w", context.Canceled), status: http.StatusServiceUnavailable, code: apierrors.ErrServiceUnavailable},
		{err: errors.New("disk on fire"), status: http.StatusInternalServerError, code: apierrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondServiceError(c, tt.err, "fallback")

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}
