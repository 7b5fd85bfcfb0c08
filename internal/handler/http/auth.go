package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/service"
	"github.com/MKhiriev/brand-snap/internal/utils"
	"github.com/MKhiriev/brand-snap/internal/validators"
	"github.com/MKhiriev/brand-snap/models"
)

const (
	tokenType = "Bearer"
	roleUser  = "ROLE_USER"
)

var requestValidator = validators.NewRequestValidator()

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.TokenService.IssueFromAuthenticated(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, jwtResponse(token, user, []string{}), http.StatusOK)
}

// googleLogin signs in with a Google ID token. The token payload is decoded
// without signature verification.
func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.GoogleLoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := requestValidator.Validate(ctx, req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrValidation, err))
		return
	}

	identity, err := utils.DecodeGoogleCredential(req.Credential)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.FindOrCreateFederated(ctx, identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.TokenService.Issue(ctx, user.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, jwtResponse(token, user, []string{roleUser}), http.StatusOK)
}

func jwtResponse(token models.Token, user models.User, roles []string) models.JWTResponse {
	return models.JWTResponse{
		Token:    token.SignedString,
		Type:     tokenType,
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    roles,
	}
}
