package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/store"
	"github.com/MKhiriev/brand-snap/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	userRepository    store.UserRepository

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, userRepository store.UserRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

// Create persists project for project.UserID, which must be the actor.
func (s *projectService) Create(ctx context.Context, actorID int64, project models.Project) (models.Project, error) {
	if project.UserID != actorID {
		return models.Project{}, ErrUserNotFound
	}

	project.ID = 0
	created, err := s.projectRepository.Create(ctx, project)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", actorID).Msg("project creation failed")
		return models.Project{}, translate(err, ErrUserNotFound)
	}

	return created, nil
}

// ListByUser returns the projects of userID, who must be the actor and must
// exist.
func (s *projectService) ListByUser(ctx context.Context, actorID, userID int64) ([]models.Project, error) {
	if userID != actorID {
		return nil, ErrUserNotFound
	}

	if _, err := s.userRepository.FindByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	projects, err := s.projectRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects failed: %w", err)
	}

	return projects, nil
}

func (s *projectService) Get(ctx context.Context, actorID, id int64) (models.Project, error) {
	project, err := s.projectRepository.FindByID(ctx, id)
	if err != nil {
		return models.Project{}, translate(err, ErrProjectNotFound)
	}

	if project.UserID != actorID {
		return models.Project{}, ErrProjectNotFound
	}

	return project, nil
}

// Update replaces title and description of an owned project.
func (s *projectService) Update(ctx context.Context, actorID int64, project models.Project) (models.Project, error) {
	if err := authorize(ctx, s.projectRepository.Owner, project.ID, actorID, ErrProjectNotFound); err != nil {
		return models.Project{}, err
	}

	updated, err := s.projectRepository.Update(ctx, project)
	if err != nil {
		return models.Project{}, translate(err, ErrProjectNotFound)
	}

	return updated, nil
}

// Delete removes an owned project and, through the foreign keys, its
// campaigns and assets.
func (s *projectService) Delete(ctx context.Context, actorID, id int64) error {
	if err := authorize(ctx, s.projectRepository.Owner, id, actorID, ErrProjectNotFound); err != nil {
		return err
	}

	if err := s.projectRepository.Delete(ctx, id); err != nil {
		return translate(err, ErrProjectNotFound)
	}

	logger.FromContext(ctx).Info().Int64("project_id", id).Msg("project deleted")
	return nil
}
