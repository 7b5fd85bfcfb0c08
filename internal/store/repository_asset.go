package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/models"
)

// prompt is nullable in the schema; it is always read back as a string.
var assetColumns = []string{"id", "image_data", "COALESCE(prompt, '')", "campaign_id"}

type assetRepository struct {
	*DB
	logger *logger.Logger
}

// NewAssetRepository constructs an [AssetRepository] over the "assets" table.
func NewAssetRepository(db *DB, logger *logger.Logger) AssetRepository {
	logger.Debug().Msg("creating asset repository")
	return &assetRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts asset. A campaign_id without a matching campaign yields
// [ErrIntegrity].
func (r *assetRepository) Create(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(asset.TableName()).
		Columns("image_data", "prompt", "campaign_id").
		Values(asset.ImageData, asset.Prompt, asset.CampaignID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "assetRepository.Create").Msg("failed to build query")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&asset.ID); err != nil {
		return models.Asset{}, r.wrapError(ctx, "assetRepository.Create", err)
	}

	return asset, nil
}

func (r *assetRepository) FindByID(ctx context.Context, id int64) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(assetColumns...).
		From(models.Asset{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "assetRepository.FindByID").Msg("failed to build query")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var a models.Asset
	if err = r.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.ImageData, &a.Prompt, &a.CampaignID); err != nil {
		return models.Asset{}, r.wrapError(ctx, "assetRepository.FindByID", err)
	}

	return a, nil
}

func (r *assetRepository) ListByCampaign(ctx context.Context, campaignID int64) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(assetColumns...).
		From(models.Asset{}.TableName()).
		Where(sq.Eq{"campaign_id": campaignID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "assetRepository.ListByCampaign").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrapError(ctx, "assetRepository.ListByCampaign", err)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0)
	for rows.Next() {
		var a models.Asset
		if err = rows.Scan(&a.ID, &a.ImageData, &a.Prompt, &a.CampaignID); err != nil {
			log.Err(err).Str("func", "assetRepository.ListByCampaign").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		assets = append(assets, a)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapError(ctx, "assetRepository.ListByCampaign", err)
	}

	return assets, nil
}

// Update writes prompt and image data in a single statement so readers never
// see one without the other.
func (r *assetRepository) Update(ctx context.Context, asset models.Asset) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(asset.TableName()).
		Set("prompt", asset.Prompt).
		Set("image_data", asset.ImageData).
		Where(sq.Eq{"id": asset.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "assetRepository.Update").Msg("failed to build query")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Asset{}, r.wrapError(ctx, "assetRepository.Update", err)
	}
	if err = requireAffected(result); err != nil {
		return models.Asset{}, fmt.Errorf("assetRepository.Update: %w", err)
	}

	return r.FindByID(ctx, asset.ID)
}

func (r *assetRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(models.Asset{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "assetRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return r.wrapError(ctx, "assetRepository.Delete", err)
	}
	if err = requireAffected(result); err != nil {
		return fmt.Errorf("assetRepository.Delete: %w", err)
	}

	return nil
}

// Owner walks asset -> campaign -> project to the owning user.
func (r *assetRepository) Owner(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("p.user_id").
		From("assets a").
		Join("campaigns c ON c.id = a.campaign_id").
		Join("projects p ON p.id = c.project_id").
		Where(sq.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "assetRepository.Owner").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var owner int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&owner); err != nil {
		return 0, r.wrapError(ctx, "assetRepository.Owner", err)
	}

	return owner, nil
}
