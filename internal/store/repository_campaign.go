package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/models"
)

var campaignColumns = []string{"id", "purpose", "project_id"}

type campaignRepository struct {
	*DB
	logger *logger.Logger
}

// NewCampaignRepository constructs a [CampaignRepository] over the
// "campaigns" table.
func NewCampaignRepository(db *DB, logger *logger.Logger) CampaignRepository {
	logger.Debug().Msg("creating campaign repository")
	return &campaignRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts campaign. A project_id without a matching project yields
// [ErrIntegrity].
func (r *campaignRepository) Create(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(campaign.TableName()).
		Columns("purpose", "project_id").
		Values(campaign.Purpose, campaign.ProjectID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.Create").Msg("failed to build query")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&campaign.ID); err != nil {
		return models.Campaign{}, r.wrapError(ctx, "campaignRepository.Create", err)
	}

	return campaign, nil
}

func (r *campaignRepository) FindByID(ctx context.Context, id int64) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(campaignColumns...).
		From(models.Campaign{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.FindByID").Msg("failed to build query")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var c models.Campaign
	if err = r.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Purpose, &c.ProjectID); err != nil {
		return models.Campaign{}, r.wrapError(ctx, "campaignRepository.FindByID", err)
	}

	return c, nil
}

func (r *campaignRepository) ListByProject(ctx context.Context, projectID int64) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(campaignColumns...).
		From(models.Campaign{}.TableName()).
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.ListByProject").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrapError(ctx, "campaignRepository.ListByProject", err)
	}
	defer rows.Close()

	campaigns := make([]models.Campaign, 0)
	for rows.Next() {
		var c models.Campaign
		if err = rows.Scan(&c.ID, &c.Purpose, &c.ProjectID); err != nil {
			log.Err(err).Str("func", "campaignRepository.ListByProject").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		campaigns = append(campaigns, c)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapError(ctx, "campaignRepository.ListByProject", err)
	}

	return campaigns, nil
}

// Update changes the purpose. The campaign stays in its project.
func (r *campaignRepository) Update(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(campaign.TableName()).
		Set("purpose", campaign.Purpose).
		Where(sq.Eq{"id": campaign.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.Update").Msg("failed to build query")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Campaign{}, r.wrapError(ctx, "campaignRepository.Update", err)
	}
	if err = requireAffected(result); err != nil {
		return models.Campaign{}, fmt.Errorf("campaignRepository.Update: %w", err)
	}

	return r.FindByID(ctx, campaign.ID)
}

func (r *campaignRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(models.Campaign{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return r.wrapError(ctx, "campaignRepository.Delete", err)
	}
	if err = requireAffected(result); err != nil {
		return fmt.Errorf("campaignRepository.Delete: %w", err)
	}

	return nil
}

// Owner resolves the campaign's project owner in one query.
func (r *campaignRepository) Owner(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("p.user_id").
		From("campaigns c").
		Join("projects p ON p.id = c.project_id").
		Where(sq.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.Owner").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var owner int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&owner); err != nil {
		return 0, r.wrapError(ctx, "campaignRepository.Owner", err)
	}

	return owner, nil
}
