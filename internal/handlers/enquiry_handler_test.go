package handlers

import (
	"net/http"
	"testing"

	apierrors "github.com/drcity/portal/api/internal/errors"
	"github.com/drcity/portal/api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnquiry() EnquiryRequest {
	return EnquiryRequest{
		Name:    "Asha Patil",
		Email:   "asha@example.com",
		Phone:   "+91 98200 00000",
		Subject: "Site visit",
		Message: "Is a Saturday visit possible?",
	}
}

func TestEnquiryHandler_Submit(t *testing.T) {
	env := newTestEnv(t)

	t.Run("accepted without interested flat", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/sites/Vista%20Imperia/enquiries", validEnquiry())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var receipt services.EnquiryReceipt
		decodeBody(t, w, &receipt)
		assert.NotEmpty(t, receipt.ID)
		assert.Equal(t, "Vista Imperia", receipt.Site)
		assert.Nil(t, receipt.InterestedFlat)
		assert.False(t, receipt.SubmittedAt.IsZero())
	})

	t.Run("accepted with interested flat", func(t *testing.T) {
		req := validEnquiry()
		req.InterestedFlat = "1201"

		w := env.do(http.MethodPost, "/api/v1/sites/Vista%20Imperia/enquiries", req)
		require.Equal(t, http.StatusCreated, w.Code)

		var receipt services.EnquiryReceipt
		decodeBody(t, w, &receipt)
		require.NotNil(t, receipt.InterestedFlat)
		assert.Equal(t, "1201", *receipt.InterestedFlat)
	})

	t.Run("interested flat outside the site", func(t *testing.T) {
		req := validEnquiry()
		req.InterestedFlat = "102"

		w := env.do(http.MethodPost, "/api/v1/sites/Vista%20Imperia/enquiries", req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Interested flat is not part of this site", decodeError(t, w).Message)
	})

	t.Run("unknown site", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/v1/sites/Nowhere/enquiries", validEnquiry())
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEnquiryHandler_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		mutate func(*EnquiryRequest)
		field  string
	}{
		{name: "missing name", mutate: func(r *EnquiryRequest) { r.Name = "" }, field: "name"},
		{name: "invalid email", mutate: func(r *EnquiryRequest) { r.Email = "asha-at-example" }, field: "email"},
		{name: "short phone", mutate: func(r *EnquiryRequest) { r.Phone = "123" }, field: "phone"},
		{name: "missing subject", mutate: func(r *EnquiryRequest) { r.Subject = "" }, field: "subject"},
		{name: "missing message", mutate: func(r *EnquiryRequest) { r.Message = "" }, field: "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validEnquiry()
			tt.mutate(&req)

			w := env.do(http.MethodPost, "/api/v1/sites/A/enquiries", req)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			detail := decodeError(t, w)
			assert.Equal(t, apierrors.ErrValidation, detail.Code)
			assert.Contains(t, detail.Details, tt.field)
		})
	}
}
