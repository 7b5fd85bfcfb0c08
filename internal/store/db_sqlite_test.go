package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/brand-snap/internal/config"
	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/models"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	ctx := context.Background()

	db, err := NewDB(ctx, config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	return NewStorages(db, logger.Nop())
}

func seedUser(t *testing.T, s *Storages, name string) models.User {
	t.Helper()
	u, err := s.UserRepository.Create(context.Background(), models.User{
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: strPtr("hash"),
		Provider:     models.ProviderLocal,
	})
	require.NoError(t, err)
	return u
}

func TestSQLite_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	alice := seedUser(t, s, "alice")

	found, err := s.UserRepository.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
	assert.Equal(t, models.ProviderLocal, found.Provider)
	assert.False(t, found.CreatedAt.IsZero())

	_, err = s.UserRepository.Create(ctx, models.User{Username: "alice", Email: "other@example.com", Provider: models.ProviderLocal})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = s.UserRepository.Create(ctx, models.User{Username: "alice2", Email: "alice@example.com", Provider: models.ProviderLocal})
	assert.ErrorIs(t, err, ErrEmailTaken)

	found.ProviderID = strPtr("google-sub")
	_, err = s.UserRepository.Update(ctx, found)
	require.NoError(t, err)

	reloaded, err := s.UserRepository.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ProviderID)
	assert.Equal(t, "google-sub", *reloaded.ProviderID)
}

func TestSQLite_ConcurrentRegistrationKeepsUsernamesUnique(t *testing.T) {
	s := newSQLiteStorages(t)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UserRepository.Create(context.Background(), models.User{
				Username: "same",
				Email:    fmt.Sprintf("same%d@example.com", i),
				Provider: models.ProviderLocal,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrUsernameTaken):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)
}

func TestSQLite_ForeignKeysAreEnforced(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.ProjectRepository.Create(ctx, models.Project{Title: "orphan", UserID: 404})
	assert.ErrorIs(t, err, ErrIntegrity)

	_, err = s.CampaignRepository.Create(ctx, models.Campaign{Purpose: "orphan", ProjectID: 404})
	assert.ErrorIs(t, err, ErrIntegrity)

	_, err = s.AssetRepository.Create(ctx, models.Asset{ImageData: "data:x", Prompt: "p", CampaignID: 404})
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestSQLite_DeleteProjectCascades(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	owner := seedUser(t, s, "owner")

	project, err := s.ProjectRepository.Create(ctx, models.Project{Title: "Brand", UserID: owner.ID})
	require.NoError(t, err)
	campaign, err := s.CampaignRepository.Create(ctx, models.Campaign{Purpose: "Launch", ProjectID: project.ID})
	require.NoError(t, err)
	asset, err := s.AssetRepository.Create(ctx, models.Asset{ImageData: "data:x", Prompt: "logo", CampaignID: campaign.ID})
	require.NoError(t, err)

	assetOwner, err := s.AssetRepository.Owner(ctx, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, assetOwner)

	campaignOwner, err := s.CampaignRepository.Owner(ctx, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, campaignOwner)

	require.NoError(t, s.ProjectRepository.Delete(ctx, project.ID))

	_, err = s.CampaignRepository.FindByID(ctx, campaign.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.AssetRepository.FindByID(ctx, asset.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.ProjectRepository.Delete(ctx, project.ID), ErrNotFound)
}

func TestSQLite_ListsAreScopedAndOrdered(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	a := seedUser(t, s, "a")
	b := seedUser(t, s, "b")

	for _, title := range []string{"first", "second"} {
		_, err := s.ProjectRepository.Create(ctx, models.Project{Title: title, UserID: a.ID})
		require.NoError(t, err)
	}
	_, err := s.ProjectRepository.Create(ctx, models.Project{Title: "foreign", UserID: b.ID})
	require.NoError(t, err)

	projects, err := s.ProjectRepository.ListByUser(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "first", projects[0].Title)
	assert.Equal(t, "second", projects[1].Title)

	empty, err := s.CampaignRepository.ListByProject(ctx, projects[0].ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSQLite_AssetUpdate(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	u := seedUser(t, s, "u")
	p, err := s.ProjectRepository.Create(ctx, models.Project{Title: "P", UserID: u.ID})
	require.NoError(t, err)
	c, err := s.CampaignRepository.Create(ctx, models.Campaign{Purpose: "C", ProjectID: p.ID})
	require.NoError(t, err)
	a, err := s.AssetRepository.Create(ctx, models.Asset{ImageData: "data:old", Prompt: "old", CampaignID: c.ID})
	require.NoError(t, err)

	updated, err := s.AssetRepository.Update(ctx, models.Asset{ID: a.ID, ImageData: "data:new", Prompt: "new"})
	require.NoError(t, err)
	assert.Equal(t, models.Asset{ID: a.ID, ImageData: "data:new", Prompt: "new", CampaignID: c.ID}, updated)
}

func TestNewDB_UnsupportedDSN(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{DSN: "mysql://localhost"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{":memory:", "file::memory:?_foreign_keys=1"},
		{"sqlite://brand.db", "file:brand.db?_foreign_keys=1"},
		{"file:brand.db?cache=shared", "file:brand.db?cache=shared&_foreign_keys=1"},
		{"file:brand.db?_foreign_keys=0", "file:brand.db?_foreign_keys=0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.in))
		})
	}
}
