package matching_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/cosigner/internal/matching"
)

func TestService_Record(t *testing.T) {
	appID := uuid.New()

	type testCase struct {
		name       string
		params     matching.RecordParams
		setupMock  func(m *matching.MockRepository)
		wantErr    error
		wantAnyErr bool
	}

	tests := []testCase{
		{
			name:   "Success",
			params: matching.RecordParams{CosignerName: " Leaseguard ", Outcome: "approved", RecordedBy: "rev-1"},
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().
					CreateRecommendation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *matching.Recommendation) error {
						assert.Equal(t, appID, r.ApplicationID)
						assert.Equal(t, "Leaseguard", r.CosignerName)
						assert.NotEqual(t, uuid.Nil, r.ID)
						return nil
					})
			},
		},
		{
			name:    "EmptyOutcome",
			params:  matching.RecordParams{CosignerName: "Leaseguard", Outcome: "   "},
			wantErr: matching.ErrEmptyRecommendation,
		},
		{
			name:   "RepoError",
			params: matching.RecordParams{Outcome: "declined"},
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().CreateRecommendation(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := matching.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := matching.NewService(repo)
			got, err := svc.Record(context.Background(), appID, tt.params)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.False(t, got.Empty())
			}
		})
	}
}

func TestService_Latest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	appID := uuid.New()
	repo := matching.NewMockRepository(ctrl)
	repo.EXPECT().LatestRecommendation(gomock.Any(), appID).Return(nil, matching.ErrNotFound)

	svc := matching.NewService(repo)
	_, err := svc.Latest(context.Background(), appID)
	assert.ErrorIs(t, err, matching.ErrNotFound)
}

func TestRecommendation_Empty(t *testing.T) {
	var nilRec *matching.Recommendation
	assert.True(t, nilRec.Empty())
	assert.True(t, (&matching.Recommendation{CosignerName: "x"}).Empty())
	assert.False(t, (&matching.Recommendation{Outcome: "approved"}).Empty())
}
