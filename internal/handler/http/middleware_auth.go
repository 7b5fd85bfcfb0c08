package http

import (
	"net/http"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/service"
	"github.com/MKhiriev/brand-snap/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The token is verified via [service.TokenService.Verify]; its subject is
// resolved to a user with [service.AuthService.LoadForAuthentication]
// (username first, then email). On success the user's ID is stored in the
// request context under [utils.UserIDCtxKey].
//
// Requests without a header, with a malformed header, with an invalid or
// expired token, or whose subject no longer exists are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteMessage(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		subject, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token rejected")
			utils.WriteMessage(w, service.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.LoadForAuthentication(ctx, subject)
		if err != nil {
			log.Debug().Err(err).Str("subject", subject).Msg("token subject not resolved")
			utils.WriteMessage(w, service.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, user.ID)))
	})
}
