package utils

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/brand-snap/models"
)

var (
	// ErrMalformedCredential is returned when the credential is not a
	// three-segment token with a decodable JSON payload.
	ErrMalformedCredential = errors.New("invalid credential format")
	// ErrCredentialMissingEmail is returned when the payload has no email claim.
	ErrCredentialMissingEmail = errors.New("could not extract email from credential")
)

type googleClaims struct {
	Email   string `json:"email"`
	Subject string `json:"sub"`
	Name    string `json:"name"`
}

// DecodeGoogleCredential reads the email, sub and name claims from the
// payload segment of a Google ID token. The signature is NOT verified.
func DecodeGoogleCredential(credential string) (models.FederatedIdentity, error) {
	segments := strings.Split(strings.TrimSpace(credential), ".")
	if len(segments) != 3 {
		return models.FederatedIdentity{}, ErrMalformedCredential
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(segments[1], "="))
	if err != nil {
		return models.FederatedIdentity{}, fmt.Errorf("%w: %w", ErrMalformedCredential, err)
	}

	var claims googleClaims
	if err = json.Unmarshal(payload, &claims); err != nil {
		return models.FederatedIdentity{}, fmt.Errorf("%w: %w", ErrMalformedCredential, err)
	}

	if claims.Email == "" {
		return models.FederatedIdentity{}, ErrCredentialMissingEmail
	}

	return models.FederatedIdentity{
		Email:   claims.Email,
		Name:    claims.Name,
		Subject: claims.Subject,
	}, nil
}
