package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/brand-snap/internal/validators"
	"github.com/MKhiriev/brand-snap/models"
)

// AuthServiceWrapper, ProjectServiceWrapper, CampaignServiceWrapper and
// AssetServiceWrapper decorate a service with additional behavior such as
// validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService
}

type CampaignServiceWrapper interface {
	Wrap(CampaignService) CampaignService
}

type AssetServiceWrapper interface {
	Wrap(AssetService) AssetService
}

// AuthValidationService checks registration and login payloads before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) FindOrCreateFederated(ctx context.Context, identity models.FederatedIdentity) (models.User, error) {
	if err := v.validator.Validate(ctx, models.RegisterRequest{Email: identity.Email}, validators.FieldEmail); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.FindOrCreateFederated(ctx, identity)
}

func (v *AuthValidationService) LoadForAuthentication(ctx context.Context, principal string) (models.User, error) {
	return v.inner.LoadForAuthentication(ctx, principal)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// ProjectValidationService requires a title on create and update.
type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService() ProjectServiceWrapper {
	return &ProjectValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *ProjectValidationService) Create(ctx context.Context, actorID int64, project models.Project) (models.Project, error) {
	if err := v.validator.Validate(ctx, project); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Create(ctx, actorID, project)
}

func (v *ProjectValidationService) ListByUser(ctx context.Context, actorID, userID int64) ([]models.Project, error) {
	return v.inner.ListByUser(ctx, actorID, userID)
}

func (v *ProjectValidationService) Get(ctx context.Context, actorID, id int64) (models.Project, error) {
	return v.inner.Get(ctx, actorID, id)
}

func (v *ProjectValidationService) Update(ctx context.Context, actorID int64, project models.Project) (models.Project, error) {
	if err := v.validator.Validate(ctx, project, validators.FieldTitle); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Update(ctx, actorID, project)
}

func (v *ProjectValidationService) Delete(ctx context.Context, actorID, id int64) error {
	return v.inner.Delete(ctx, actorID, id)
}

func (v *ProjectValidationService) Wrap(inner ProjectService) ProjectService {
	v.inner = inner
	return v
}

// CampaignValidationService requires a purpose on create and update.
type CampaignValidationService struct {
	inner     CampaignService
	validator validators.Validator
}

func NewCampaignValidationService() CampaignServiceWrapper {
	return &CampaignValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *CampaignValidationService) Create(ctx context.Context, actorID int64, campaign models.Campaign) (models.Campaign, error) {
	if err := v.validator.Validate(ctx, campaign); err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Create(ctx, actorID, campaign)
}

func (v *CampaignValidationService) ListByProject(ctx context.Context, actorID, projectID int64) ([]models.Campaign, error) {
	return v.inner.ListByProject(ctx, actorID, projectID)
}

func (v *CampaignValidationService) Get(ctx context.Context, actorID, id int64) (models.Campaign, error) {
	return v.inner.Get(ctx, actorID, id)
}

func (v *CampaignValidationService) Update(ctx context.Context, actorID int64, campaign models.Campaign) (models.Campaign, error) {
	if err := v.validator.Validate(ctx, campaign, validators.FieldPurpose); err != nil {
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Update(ctx, actorID, campaign)
}

func (v *CampaignValidationService) Delete(ctx context.Context, actorID, id int64) error {
	return v.inner.Delete(ctx, actorID, id)
}

func (v *CampaignValidationService) Wrap(inner CampaignService) CampaignService {
	v.inner = inner
	return v
}

// AssetValidationService requires a prompt and a campaign id.
type AssetValidationService struct {
	inner     AssetService
	validator validators.Validator
}

func NewAssetValidationService() AssetServiceWrapper {
	return &AssetValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AssetValidationService) Generate(ctx context.Context, actorID int64, req models.GenerateAssetRequest) (models.Asset, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Generate(ctx, actorID, req)
}

func (v *AssetValidationService) List(ctx context.Context, actorID, campaignID int64) ([]models.Asset, error) {
	return v.inner.List(ctx, actorID, campaignID)
}

func (v *AssetValidationService) Update(ctx context.Context, actorID, assetID int64, req models.UpdateAssetRequest) (models.Asset, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Asset{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Update(ctx, actorID, assetID, req)
}

func (v *AssetValidationService) Delete(ctx context.Context, actorID, assetID int64) error {
	return v.inner.Delete(ctx, actorID, assetID)
}

func (v *AssetValidationService) Wrap(inner AssetService) AssetService {
	v.inner = inner
	return v
}
