package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/brand-snap/internal/logger"
	"github.com/MKhiriev/brand-snap/internal/mock"
	"github.com/MKhiriev/brand-snap/internal/store"
	"github.com/MKhiriev/brand-snap/models"
)

type assetMocks struct {
	assets      *mock.MockAssetRepository
	campaigns   *mock.MockCampaignRepository
	synthesizer *mock.MockImageSynthesizer
}

func newTestAssetSvc(t *testing.T) (AssetService, assetMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := assetMocks{
		assets:      mock.NewMockAssetRepository(ctrl),
		campaigns:   mock.NewMockCampaignRepository(ctrl),
		synthesizer: mock.NewMockImageSynthesizer(ctrl),
	}
	return NewAssetService(m.assets, m.campaigns, m.synthesizer, logger.Nop()), m
}

// ── Generate ─────────────────────────────────────────────────────────────────

func TestAssetService_Generate_Ordered(t *testing.T) {
	svc, m := newTestAssetSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.campaigns.EXPECT().Owner(ctx, int64(1)).Return(int64(1), nil),
		m.synthesizer.EXPECT().Synthesize(ctx, "logo on beach", "ref").Return("data:image/png;base64,AAAA", nil),
		m.assets.EXPECT().Create(ctx, models.Asset{ImageData: "data:image/png;base64,AAAA", Prompt: "logo on beach", CampaignID: 1}).
			Return(models.Asset{ID: 1, ImageData: "data:image/png;base64,AAAA", Prompt: "logo on beach", CampaignID: 1}, nil),
	)

	asset, err := svc.Generate(ctx, 1, models.GenerateAssetRequest{CampaignID: 1, Prompt: "logo on beach", InputImage: "ref"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), asset.CampaignID)
	assert.Equal(t, "data:image/png;base64,AAAA", asset.ImageData)
}

func TestAssetService_Generate_MissingCampaignSkipsSynthesis(t *testing.T) {
	svc, m := newTestAssetSvc(t)
	ctx := context.Background()

	m.campaigns.EXPECT().Owner(ctx, int64(9)).Return(int64(0), store.ErrNotFound)

	_, err := svc.Generate(ctx, 1, models.GenerateAssetRequest{CampaignID: 9, Prompt: "p"})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestAssetService_Generate_ForeignCampaign(t *testing.T) {
	svc, m := newTestAssetSvc(t)
	ctx := context.Background()

	m.campaigns.EXPECT().Owner(ctx, int64(1)).Return(int64(2), nil)

	_, err := svc.Generate(ctx, 1, models.GenerateAssetRequest{CampaignID: 1, Prompt: "p"})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

// TestAssetService_Generate_CancelledNothingPersisted verifies that a failed
// synthesis (such as an abandoned request) does not insert an asset.
func TestAssetService_Generate_CancelledNothingPersisted(t *testing.T) {
	svc, m := newTestAssetSvc(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.campaigns.EXPECT().Owner(ctx, int64(1)).Return(int64(1), nil)
	m.synthesizer.EXPECT().Synthesize(ctx, "p", "").Return("", context.Canceled)

	_, err := svc.Generate(ctx, 1, models.GenerateAssetRequest{CampaignID: 1, Prompt: "p"})
	assert.ErrorIs(t, err, context.Canceled)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestAssetService_List(t *testing.T) {
	svc, m := newTestAssetSvc(t)
	ctx := context.Background()

	m.campaigns.EXPECT().Owner(ctx, int64(1)).Return(int64(1), nil)
	m.assets.EXPECT().ListByCampaign(ctx, int64(1)).Return([]models.Asset{{ID: 1}, {ID: 2}}, nil)

	assets, err := svc.List(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, assets, 2)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestAssetService_Update_RegeneratesWithoutReference(t *testing.T) {
	svc, m := newTestAssetSvc(t)
	ctx := context.Background()
	stored := models.Asset{ID: 5, ImageData: "data:old", Prompt: "logo on beach", CampaignID: 1}
	want := models.Asset{ID: 5, ImageData: "data:new", Prompt: "logo on mountain", CampaignID: 1}

	gomock.InOrder(
		m.assets.EXPECT().Owner(ctx, int64(5)).Return(int64(1), nil),
		m.assets.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil),
		m.synthesizer.EXPECT().Synthesize(ctx, "logo on mountain", "").Return("data:new", nil),
		m.assets.EXPECT().Update(ctx, want).Return(want, nil),
	)

	asset, err := svc.Update(ctx, 1, 5, models.UpdateAssetRequest{Prompt: "logo on mountain"})
	require.NoError(t, err)
	assert.Equal(t, want, asset)
}

func TestAssetService_Update_Missing(t *testing.T) {
	svc, m := newTestAssetSvc(t)
	ctx := context.Background()

	m.assets.EXPECT().Owner(ctx, int64(5)).Return(int64(0), store.ErrNotFound)

	_, err := svc.Update(ctx, 1, 5, models.UpdateAssetRequest{Prompt: "p"})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestAssetService_Delete_Idempotent(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx context.Context, m assetMocks)
	}{
		{
			name: "existing",
			setup: func(ctx context.Context, m assetMocks) {
				m.assets.EXPECT().Owner(ctx, int64(5)).Return(int64(1), nil)
				m.assets.EXPECT().Delete(ctx, int64(5)).Return(nil)
			},
		},
		{
			name: "absent",
			setup: func(ctx context.Context, m assetMocks) {
				m.assets.EXPECT().Owner(ctx, int64(5)).Return(int64(0), store.ErrNotFound)
			},
		},
		{
			name: "deleted concurrently",
			setup: func(ctx context.Context, m assetMocks) {
				m.assets.EXPECT().Owner(ctx, int64(5)).Return(int64(1), nil)
				m.assets.EXPECT().Delete(ctx, int64(5)).Return(store.ErrNotFound)
			},
		},
		{
			name: "foreign is left alone",
			setup: func(ctx context.Context, m assetMocks) {
				m.assets.EXPECT().Owner(ctx, int64(5)).Return(int64(2), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAssetSvc(t)
			ctx := context.Background()
			tt.setup(ctx, m)

			assert.NoError(t, svc.Delete(ctx, 1, 5))
		})
	}
}

func TestAssetService_Delete_DatabaseError(t *testing.T) {
	svc, m := newTestAssetSvc(t)
	ctx := context.Background()

	m.assets.EXPECT().Owner(ctx, int64(5)).Return(int64(0), errors.New("db down"))

	assert.Error(t, svc.Delete(ctx, 1, 5))
}
