package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/mock"
	"github.com/MKhiriev/brand-snap/internal/store"
	"github.com/MKhiriev/brand-snap/models"
)

func newTestCampaignSvc(t *testing.T) (CampaignService, *mock.MockCampaignRepository, *mock.MockProjectRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	campaigns := mock.NewMockCampaignRepository(ctrl)
	projects := mock.NewMockProjectRepository(ctrl)
	return NewCampaignService(campaigns, projects, logger.Nop()), campaigns, projects
}

func TestCampaignService_Create(t *testing.T) {
	t.Run("in owned project", func(t *testing.T) {
		svc, campaigns, projects := newTestCampaignSvc(t)
		ctx := context.Background()

		gomock.InOrder(
			projects.EXPECT().Owner(ctx, int64(1)).Return(int64(1), nil),
			campaigns.EXPECT().Create(ctx, models.Campaign{Purpose: "Launch", ProjectID: 1}).
				Return(models.Campaign{ID: 1, Purpose: "Launch", ProjectID: 1}, nil),
		)

		c, err := svc.Create(ctx, 1, models.Campaign{Purpose: "Launch", ProjectID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(1), c.ProjectID)
	})

	t.Run("missing project", func(t *testing.T) {
		svc, _, projects := newTestCampaignSvc(t)
		ctx := context.Background()

		projects.EXPECT().Owner(ctx, int64(9)).Return(int64(0), store.ErrNotFound)

		_, err := svc.Create(ctx, 1, models.Campaign{Purpose: "Launch", ProjectID: 9})
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})

	t.Run("project deleted meanwhile", func(t *testing.T) {
		svc, campaigns, projects := newTestCampaignSvc(t)
		ctx := context.Background()

		projects.EXPECT().Owner(ctx, int64(1)).Return(int64(1), nil)
		campaigns.EXPECT().Create(ctx, gomock.Any()).Return(models.Campaign{}, store.ErrIntegrity)

		_, err := svc.Create(ctx, 1, models.Campaign{Purpose: "Launch", ProjectID: 1})
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}

func TestCampaignService_ListByProject(t *testing.T) {
	svc, campaigns, projects := newTestCampaignSvc(t)
	ctx := context.Background()

	projects.EXPECT().Owner(ctx, int64(1)).Return(int64(1), nil)
	campaigns.EXPECT().ListByProject(ctx, int64(1)).Return([]models.Campaign{{ID: 1, ProjectID: 1}}, nil)
	projects.EXPECT().Owner(ctx, int64(2)).Return(int64(5), nil)

	list, err := svc.ListByProject(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListByProject(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestCampaignService_GetUpdateDelete(t *testing.T) {
	svc, campaigns, _ := newTestCampaignSvc(t)
	ctx := context.Background()

	campaigns.EXPECT().Owner(ctx, int64(4)).Return(int64(1), nil).Times(3)
	campaigns.EXPECT().FindByID(ctx, int64(4)).Return(models.Campaign{ID: 4, Purpose: "a", ProjectID: 1}, nil)
	campaigns.EXPECT().Update(ctx, models.Campaign{ID: 4, Purpose: "b"}).Return(models.Campaign{ID: 4, Purpose: "b", ProjectID: 1}, nil)
	campaigns.EXPECT().Delete(ctx, int64(4)).Return(nil)

	c, err := svc.Get(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "a", c.Purpose)

	c, err = svc.Update(ctx, 1, models.Campaign{ID: 4, Purpose: "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", c.Purpose)

	assert.NoError(t, svc.Delete(ctx, 1, 4))
}

func TestCampaignService_Get_Foreign(t *testing.T) {
	svc, campaigns, _ := newTestCampaignSvc(t)
	ctx := context.Background()

	campaigns.EXPECT().Owner(ctx, int64(4)).Return(int64(2), nil)

	_, err := svc.Get(ctx, 1, 4)
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}
