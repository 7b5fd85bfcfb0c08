package service

import (
	"fmt"

	"github.com/MKhiriev/brand-snap/internal/config"
	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/store"
)

type Services struct {
	AuthService     AuthService
	TokenService    TokenService
	ProjectService  ProjectService
	CampaignService CampaignService
	AssetService    AssetService
	AppInfoService  AppInfoService
}

// NewServices wires every service to its repositories. Services that accept
// client input are wrapped in their validation decorators.
func NewServices(storages *store.Storages, synthesizer ImageSynthesizer, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages.HealthChecker, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthValidationService().Wrap(
			NewAuthService(storages.UserRepository, cfg.App, logger),
		),
		TokenService: NewTokenService(cfg.Auth, logger),
		ProjectService: NewProjectValidationService().Wrap(
			NewProjectService(storages.ProjectRepository, storages.UserRepository, logger),
		),
		CampaignService: NewCampaignValidationService().Wrap(
			NewCampaignService(storages.CampaignRepository, storages.ProjectRepository, logger),
		),
		AssetService: NewAssetValidationService().Wrap(
			NewAssetService(storages.AssetRepository, storages.CampaignRepository, synthesizer, logger),
		),
		AppInfoService: appInfoService,
	}, nil
}
