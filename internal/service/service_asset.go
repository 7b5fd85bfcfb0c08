package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/store"
	"github.com/MKhiriev/brand-snap/models"
)

// assetService generates images through an ImageSynthesizer and keeps them
// as assets of a campaign.
type assetService struct {
	assetRepository    store.AssetRepository
	campaignRepository store.CampaignRepository

	synthesizer ImageSynthesizer

	logger *logger.Logger
}

func NewAssetService(
	assetRepository store.AssetRepository,
	campaignRepository store.CampaignRepository,
	synthesizer ImageSynthesizer,
	logger *logger.Logger,
) AssetService {
	return &assetService{
		assetRepository:    assetRepository,
		campaignRepository: campaignRepository,
		synthesizer:        synthesizer,
		logger:             logger,
	}
}

// Generate loads the campaign, synthesizes the image and inserts the asset,
// in that order. Nothing is inserted when synthesis returns an error, which
// includes cancellation of ctx.
func (s *assetService) Generate(ctx context.Context, actorID int64, req models.GenerateAssetRequest) (models.Asset, error) {
	log := logger.FromContext(ctx)
	campaignID := req.CampaignID.Int64()

	if err := authorize(ctx, s.campaignRepository.Owner, campaignID, actorID, ErrCampaignNotFound); err != nil {
		return models.Asset{}, err
	}

	image, err := s.synthesizer.Synthesize(ctx, req.Prompt, req.InputImage)
	if err != nil {
		log.Err(err).Int64("campaign_id", campaignID).Msg("asset not generated")
		return models.Asset{}, fmt.Errorf("asset generation failed: %w", err)
	}

	asset, err := s.assetRepository.Create(ctx, models.Asset{
		ImageData:  image,
		Prompt:     req.Prompt,
		CampaignID: campaignID,
	})
	if err != nil {
		log.Err(err).Int64("campaign_id", campaignID).Msg("asset creation failed")
		return models.Asset{}, translate(err, ErrCampaignNotFound)
	}

	log.Info().Int64("asset_id", asset.ID).Int64("campaign_id", campaignID).Msg("asset generated")
	return asset, nil
}

// List returns the campaign's assets in insertion order.
func (s *assetService) List(ctx context.Context, actorID, campaignID int64) ([]models.Asset, error) {
	if err := authorize(ctx, s.campaignRepository.Owner, campaignID, actorID, ErrCampaignNotFound); err != nil {
		return nil, err
	}

	assets, err := s.assetRepository.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("listing assets failed: %w", err)
	}

	return assets, nil
}

// Update regenerates the image from the new prompt. The reference image of
// the first generation is not stored, so none is sent.
func (s *assetService) Update(ctx context.Context, actorID, assetID int64, req models.UpdateAssetRequest) (models.Asset, error) {
	log := logger.FromContext(ctx)

	if err := authorize(ctx, s.assetRepository.Owner, assetID, actorID, ErrAssetNotFound); err != nil {
		return models.Asset{}, err
	}

	asset, err := s.assetRepository.FindByID(ctx, assetID)
	if err != nil {
		return models.Asset{}, translate(err, ErrAssetNotFound)
	}

	image, err := s.synthesizer.Synthesize(ctx, req.Prompt, "")
	if err != nil {
		log.Err(err).Int64("asset_id", assetID).Msg("asset not regenerated")
		return models.Asset{}, fmt.Errorf("asset regeneration failed: %w", err)
	}

	asset.Prompt = req.Prompt
	asset.ImageData = image

	updated, err := s.assetRepository.Update(ctx, asset)
	if err != nil {
		return models.Asset{}, translate(err, ErrAssetNotFound)
	}

	return updated, nil
}

// Delete removes an owned asset. Absent assets and assets of other users are
// left alone and reported as success.
func (s *assetService) Delete(ctx context.Context, actorID, assetID int64) error {
	err := authorize(ctx, s.assetRepository.Owner, assetID, actorID, ErrAssetNotFound)
	switch {
	case errors.Is(err, ErrAssetNotFound):
		return nil
	case err != nil:
		return err
	}

	if err = s.assetRepository.Delete(ctx, assetID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("asset deletion failed: %w", err)
	}

	return nil
}
