package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/brand-snap/internal/service"
	"github.com/MKhiriev/brand-snap/internal/store"
	"github.com/MKhiriev/brand-snap/internal/synthesizer"
	"github.com/MKhiriev/brand-snap/internal/utils"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"validation", fmt.Errorf("%w: title is required", service.ErrValidation), http.StatusBadRequest, "validation failed: title is required"},
		{"empty body", fmt.Errorf("%w: %w", ErrMalformedBody, utils.ErrEmptyBody), http.StatusBadRequest, "request body is empty"},
		{"malformed body", fmt.Errorf("%w: unexpected EOF", ErrMalformedBody), http.StatusBadRequest, "invalid JSON was passed"},
		{"invalid id", fmt.Errorf("%w: id=\"x\"", ErrInvalidID), http.StatusBadRequest, "invalid identifier: id=\"x\""},
		{"bad credential", utils.ErrMalformedCredential, http.StatusBadRequest, "Invalid credential format"},
		{"no email", utils.ErrCredentialMissingEmail, http.StatusBadRequest, "Could not extract email from credential"},
		{"bad password", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"bad token", service.ErrInvalidToken, http.StatusUnauthorized, service.ErrInvalidToken.Error()},
		{"provider conflict", service.ErrProviderConflict, http.StatusUnauthorized, "Google authentication failed: " + service.ErrProviderConflict.Error()},
		{"username taken", service.ErrUsernameExists, http.StatusBadRequest, "Username already exists"},
		{"email taken", service.ErrEmailExists, http.StatusBadRequest, "Email already exists"},
		{"csrf", ErrCSRFTokenMismatch, http.StatusForbidden, ErrCSRFTokenMismatch.Error()},
		{"not found", service.ErrCampaignNotFound, http.StatusNotFound, "campaign not found"},
		{"synthesis", fmt.Errorf("asset generation failed: %w", synthesizer.ErrSynthesisFailed), http.StatusBadGateway, "Image generation failed"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "Gateway Timeout"},
		{"store failure", store.ErrExecutingQuery, http.StatusInternalServerError, "Internal Server Error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrAssetNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"asset not found"}`, rr.Body.String())
}
