package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/models"
)

var projectColumns = []string{"id", "title", "description", "user_id", "created_at"}

type projectRepository struct {
	*DB
	logger *logger.Logger
}

// NewProjectRepository constructs a [ProjectRepository] over the "projects"
// table.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts project. A user_id without a matching user yields
// [ErrIntegrity].
func (r *projectRepository) Create(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.builder.
		Insert(project.TableName()).
		Columns("title", "description", "user_id", "created_at").
		Values(project.Title, project.Description, project.UserID, project.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "projectRepository.Create").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.QueryRowContext(ctx, query, args...).Scan(&project.ID); err != nil {
		return models.Project{}, r.wrapError(ctx, "projectRepository.Create", err)
	}

	return project, nil
}

func (r *projectRepository) FindByID(ctx context.Context, id int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "projectRepository.FindByID").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Project
	err = r.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Title, &p.Description, &p.UserID, &p.CreatedAt)
	if err != nil {
		return models.Project{}, r.wrapError(ctx, "projectRepository.FindByID", err)
	}

	return p, nil
}

// ListByUser returns the user's projects in creation order. The result is
// never nil.
func (r *projectRepository) ListByUser(ctx context.Context, userID int64) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(projectColumns...).
		From(models.Project{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "projectRepository.ListByUser").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.wrapError(ctx, "projectRepository.ListByUser", err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0)
	for rows.Next() {
		var p models.Project
		if err = rows.Scan(&p.ID, &p.Title, &p.Description, &p.UserID, &p.CreatedAt); err != nil {
			log.Err(err).Str("func", "projectRepository.ListByUser").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, r.wrapError(ctx, "projectRepository.ListByUser", err)
	}

	return projects, nil
}

// Update replaces title and description. Ownership and creation time never
// change.
func (r *projectRepository) Update(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(project.TableName()).
		Set("title", project.Title).
		Set("description", project.Description).
		Where(sq.Eq{"id": project.ID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "projectRepository.Update").Msg("failed to build query")
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Project{}, r.wrapError(ctx, "projectRepository.Update", err)
	}
	if err = requireAffected(result); err != nil {
		return models.Project{}, fmt.Errorf("projectRepository.Update: %w", err)
	}

	return r.FindByID(ctx, project.ID)
}

// Delete removes the project together with its campaigns and assets.
func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(models.Project{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "projectRepository.Delete").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return r.wrapError(ctx, "projectRepository.Delete", err)
	}
	if err = requireAffected(result); err != nil {
		return fmt.Errorf("projectRepository.Delete: %w", err)
	}

	return nil
}

func (r *projectRepository) Owner(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("user_id").
		From(models.Project{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "projectRepository.Owner").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var owner int64
	if err = r.QueryRowContext(ctx, query, args...).Scan(&owner); err != nil {
		return 0, r.wrapError(ctx, "projectRepository.Owner", err)
	}

	return owner, nil
}
