// Package service holds the business logic of brand-snap: account and token
// handling, the project/campaign/asset hierarchy and ownership checks.
//
// Every operation on the hierarchy takes the id of the authenticated user
// (actorID). Entities owned by somebody else are reported as not found.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/brand-snap/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// FindOrCreateFederated returns the GOOGLE user with the identity's
	// email, creating it on first sign-in.
	FindOrCreateFederated(ctx context.Context, identity models.FederatedIdentity) (models.User, error)
	// LoadForAuthentication resolves a token subject: username first, then
	// email.
	LoadForAuthentication(ctx context.Context, principal string) (models.User, error)
}

type TokenService interface {
	Issue(ctx context.Context, subject string) (models.Token, error)
	IssueFromAuthenticated(ctx context.Context, user models.User) (models.Token, error)
	// Verify returns the subject of a valid token.
	Verify(ctx context.Context, tokenString string) (string, error)
}

type ProjectService interface {
	Create(ctx context.Context, actorID int64, project models.Project) (models.Project, error)
	ListByUser(ctx context.Context, actorID, userID int64) ([]models.Project, error)
	Get(ctx context.Context, actorID, id int64) (models.Project, error)
	Update(ctx context.Context, actorID int64, project models.Project) (models.Project, error)
	Delete(ctx context.Context, actorID, id int64) error
}

type CampaignService interface {
	Create(ctx context.Context, actorID int64, campaign models.Campaign) (models.Campaign, error)
	ListByProject(ctx context.Context, actorID, projectID int64) ([]models.Campaign, error)
	Get(ctx context.Context, actorID, id int64) (models.Campaign, error)
	Update(ctx context.Context, actorID int64, campaign models.Campaign) (models.Campaign, error)
	Delete(ctx context.Context, actorID, id int64) error
}

type AssetService interface {
	Generate(ctx context.Context, actorID int64, req models.GenerateAssetRequest) (models.Asset, error)
	List(ctx context.Context, actorID, campaignID int64) ([]models.Asset, error)
	Update(ctx context.Context, actorID, assetID int64, req models.UpdateAssetRequest) (models.Asset, error)
	// Delete is idempotent: absent assets are not an error.
	Delete(ctx context.Context, actorID, assetID int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}

// ImageSynthesizer turns a prompt and an optional reference image into an
// image data URL.
type ImageSynthesizer interface {
	Synthesize(ctx context.Context, prompt, reference string) (string, error)
}
