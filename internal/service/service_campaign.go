package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/store"
	"github.com/MKhiriev/brand-snap/models"
)

type campaignService struct {
	campaignRepository store.CampaignRepository
	projectRepository  store.ProjectRepository

	logger *logger.Logger
}

func NewCampaignService(campaignRepository store.CampaignRepository, projectRepository store.ProjectRepository, logger *logger.Logger) CampaignService {
	return &campaignService{
		campaignRepository: campaignRepository,
		projectRepository:  projectRepository,
		logger:             logger,
	}
}

// Create adds campaign to the owned project campaign.ProjectID.
func (s *campaignService) Create(ctx context.Context, actorID int64, campaign models.Campaign) (models.Campaign, error) {
	if err := authorize(ctx, s.projectRepository.Owner, campaign.ProjectID, actorID, ErrProjectNotFound); err != nil {
		return models.Campaign{}, err
	}

	campaign.ID = 0
	created, err := s.campaignRepository.Create(ctx, campaign)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("project_id", campaign.ProjectID).Msg("campaign creation failed")
		return models.Campaign{}, translate(err, ErrProjectNotFound)
	}

	return created, nil
}

func (s *campaignService) ListByProject(ctx context.Context, actorID, projectID int64) ([]models.Campaign, error) {
	if err := authorize(ctx, s.projectRepository.Owner, projectID, actorID, ErrProjectNotFound); err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepository.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns failed: %w", err)
	}

	return campaigns, nil
}

func (s *campaignService) Get(ctx context.Context, actorID, id int64) (models.Campaign, error) {
	if err := authorize(ctx, s.campaignRepository.Owner, id, actorID, ErrCampaignNotFound); err != nil {
		return models.Campaign{}, err
	}

	campaign, err := s.campaignRepository.FindByID(ctx, id)
	if err != nil {
		return models.Campaign{}, translate(err, ErrCampaignNotFound)
	}

	return campaign, nil
}

// Update changes the purpose of an owned campaign.
func (s *campaignService) Update(ctx context.Context, actorID int64, campaign models.Campaign) (models.Campaign, error) {
	if err := authorize(ctx, s.campaignRepository.Owner, campaign.ID, actorID, ErrCampaignNotFound); err != nil {
		return models.Campaign{}, err
	}

	updated, err := s.campaignRepository.Update(ctx, campaign)
	if err != nil {
		return models.Campaign{}, translate(err, ErrCampaignNotFound)
	}

	return updated, nil
}

// Delete removes an owned campaign together with its assets.
func (s *campaignService) Delete(ctx context.Context, actorID, id int64) error {
	if err := authorize(ctx, s.campaignRepository.Owner, id, actorID, ErrCampaignNotFound); err != nil {
		return err
	}

	if err := s.campaignRepository.Delete(ctx, id); err != nil {
		return translate(err, ErrCampaignNotFound)
	}

	return nil
}
