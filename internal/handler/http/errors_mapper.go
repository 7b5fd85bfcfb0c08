package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/brand-snap/internal/app"
	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/service"
	"github.com/MKhiriev/brand-snap/internal/synthesizer"
	"github.com/MKhiriev/brand-snap/internal/utils"
)

// errorStatus maps a sentinel to a status code. An empty message means the
// error text itself is sent to the client.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first matching target wins.
var errorStatusMap = []errorStatus{
	{target: service.ErrValidation, status: http.StatusBadRequest},
	{target: utils.ErrEmptyBody, status: http.StatusBadRequest, message: utils.ErrEmptyBody.Error()},
	{target: ErrMalformedBody, status: http.StatusBadRequest, message: ErrMalformedBody.Error()},
	{target: ErrInvalidID, status: http.StatusBadRequest},
	{target: utils.ErrMalformedCredential, status: http.StatusBadRequest, message: app.MsgInvalidCredentialFormat},
	{target: utils.ErrCredentialMissingEmail, status: http.StatusBadRequest, message: app.MsgCredentialMissingEmail},

	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, message: app.MsgInvalidCredentials},
	{target: service.ErrInvalidToken, status: http.StatusUnauthorized},
	{target: service.ErrProviderConflict, status: http.StatusUnauthorized, message: app.MsgGoogleAuthFailed + service.ErrProviderConflict.Error()},

	{target: service.ErrUsernameExists, status: http.StatusBadRequest, message: app.MsgUsernameExists},
	{target: service.ErrEmailExists, status: http.StatusBadRequest, message: app.MsgEmailExists},

	{target: ErrCSRFTokenMismatch, status: http.StatusForbidden},

	{target: service.ErrNotFound, status: http.StatusNotFound},

	{target: synthesizer.ErrSynthesisFailed, status: http.StatusBadGateway, message: app.MsgImageGenerationFailed},
	{target: context.DeadlineExceeded, status: http.StatusGatewayTimeout, message: http.StatusText(http.StatusGatewayTimeout)},
}

// statusFromError returns the status code and client message for err.
// Unknown errors are answered with 500 and a generic message.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			if e.message == "" {
				return e.status, err.Error()
			}
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and answers with {"message": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteMessage(w, message, status)
}
