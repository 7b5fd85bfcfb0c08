package store

import "github.com/MKhiriev/brand-snap/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	ProjectRepository  ProjectRepository
	CampaignRepository CampaignRepository
	AssetRepository    AssetRepository
	HealthChecker      HealthChecker
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		ProjectRepository:  NewProjectRepository(db, log),
		CampaignRepository: NewCampaignRepository(db, log),
		AssetRepository:    NewAssetRepository(db, log),
		HealthChecker:      db,
	}
}
