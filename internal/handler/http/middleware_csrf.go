package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/utils"
	"github.com/MKhiriev/brand-snap/models"
)

const (
	csrfCookieName    = "XSRF-TOKEN"
	csrfHeaderName    = "X-XSRF-TOKEN"
	csrfParameterName = "_csrf"
)

// withCSRF implements the double-submit cookie check. A state-changing
// request that carries the XSRF-TOKEN cookie must send the same value in the
// X-XSRF-TOKEN header. Requests without the cookie (bearer-only API clients)
// pass through.
func (h *Handler) withCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isSafeMethod(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		cookie, err := r.Cookie(csrfCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(csrfHeaderName)
		if subtle.ConstantTimeCompare([]byte(header), []byte(cookie.Value)) != 1 {
			writeError(w, r, ErrCSRFTokenMismatch)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// csrfToken handles GET /api/csrf-token. An existing cookie is reused so that
// tabs sharing it stay valid.
func (h *Handler) csrfToken(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(csrfCookieName); err == nil {
		token = cookie.Value
	}

	if token == "" {
		var err error
		if token, err = utils.NewRandomToken(); err != nil {
			logger.FromRequest(r).Err(err).Msg("csrf token generation failed")
			writeError(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.CSRFToken{
		Token:         token,
		HeaderName:    csrfHeaderName,
		ParameterName: csrfParameterName,
	}, http.StatusOK)
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
