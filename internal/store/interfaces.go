// Package store is the persistence gateway of brand-snap: one repository per
// entity over a shared [DB] connection pool.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/brand-snap/models"
)

// UserRepository persists accounts. Username and email uniqueness is enforced
// by the database; violations surface as ErrUsernameTaken / ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, user models.User) (models.User, error)
}

// ProjectRepository persists projects. Deleting a project cascades to its
// campaigns and assets.
type ProjectRepository interface {
	Create(ctx context.Context, project models.Project) (models.Project, error)
	FindByID(ctx context.Context, id int64) (models.Project, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Project, error)
	Update(ctx context.Context, project models.Project) (models.Project, error)
	Delete(ctx context.Context, id int64) error
	// Owner returns the id of the user owning the project.
	Owner(ctx context.Context, id int64) (int64, error)
}

// CampaignRepository persists campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	FindByID(ctx context.Context, id int64) (models.Campaign, error)
	ListByProject(ctx context.Context, projectID int64) ([]models.Campaign, error)
	Update(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	Delete(ctx context.Context, id int64) error
	// Owner returns the id of the user owning the campaign's project.
	Owner(ctx context.Context, id int64) (int64, error)
}

// AssetRepository persists generated assets.
type AssetRepository interface {
	Create(ctx context.Context, asset models.Asset) (models.Asset, error)
	FindByID(ctx context.Context, id int64) (models.Asset, error)
	ListByCampaign(ctx context.Context, campaignID int64) ([]models.Asset, error)
	// Update replaces prompt and image data in a single statement.
	Update(ctx context.Context, asset models.Asset) (models.Asset, error)
	Delete(ctx context.Context, id int64) error
	// Owner returns the id of the user owning the asset's project.
	Owner(ctx context.Context, id int64) (int64, error)
}

// HealthChecker reports whether the database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
