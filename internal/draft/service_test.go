package draft_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/cosigner/internal/apperror"
	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/draft"
	"github.com/MrJamesThe3rd/cosigner/internal/draft/cache"
)

func newRedisCache(t *testing.T) *cache.Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return cache.New(client, time.Hour)
}

// memRows backs a MockRepository with a map so saves are visible to later loads.
func memRows(repo *draft.MockRepository) map[draft.Step][]byte {
	rows := map[draft.Step][]byte{}

	repo.EXPECT().
		UpsertStep(gomock.Any(), "user-1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, step draft.Step, payload []byte) error {
			rows[step] = payload
			return nil
		}).AnyTimes()

	repo.EXPECT().
		LoadSteps(gomock.Any(), "user-1").
		DoAndReturn(func(context.Context, string) ([]draft.Entry, error) {
			var out []draft.Entry
			for _, s := range draft.Steps {
				if raw, ok := rows[s]; ok {
					out = append(out, draft.Entry{Step: s, Payload: raw, UpdatedAt: time.Now()})
				}
			}
			return out, nil
		}).AnyTimes()

	return rows
}

func TestService_SaveStep_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := draft.NewMockRepository(ctrl)
	memRows(repo)

	svc := draft.NewService(repo, newRedisCache(t))
	ctx := context.Background()

	personal := draft.PersonalInfo{FirstName: "Ana", LastName: "Rivera"}
	require.NoError(t, svc.SaveStep(ctx, "user-1", draft.StepPersonal, personal))

	d, err := svc.LoadDraft(ctx, "user-1")
	require.NoError(t, err)

	got, ok := d.Personal()
	require.True(t, ok)
	assert.Equal(t, personal, got)
	assert.Empty(t, d.Unsynced)
}

func TestService_SaveStep_LastWriteWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := draft.NewMockRepository(ctrl)
	memRows(repo)

	svc := draft.NewService(repo, newRedisCache(t))
	ctx := context.Background()

	require.NoError(t, svc.SaveStep(ctx, "user-1", draft.StepEmployment, draft.EmploymentInfo{Status: draft.EmploymentEmployed}))
	require.NoError(t, svc.SaveStep(ctx, "user-1", draft.StepEmployment, draft.EmploymentInfo{Status: draft.EmploymentStudent, School: "IST"}))

	d, err := svc.LoadDraft(ctx, "user-1")
	require.NoError(t, err)

	emp, ok := d.Employment()
	require.True(t, ok)
	assert.Equal(t, draft.EmploymentStudent, emp.Status)
	assert.Equal(t, "IST", emp.School)
}

func TestService_SaveStep_Rejects(t *testing.T) {
	type testCase struct {
		name    string
		userID  string
		step    draft.Step
		payload draft.Payload
		wantErr error
	}

	tests := []testCase{
		{
			name:    "Unauthenticated",
			userID:  "",
			step:    draft.StepPersonal,
			payload: draft.PersonalInfo{},
			wantErr: auth.ErrUnauthenticated,
		},
		{
			name:    "UnknownStep",
			userID:  "user-1",
			step:    draft.Step("pets"),
			payload: draft.PersonalInfo{},
			wantErr: draft.ErrUnknownStep,
		},
		{
			name:    "Mismatch",
			userID:  "user-1",
			step:    draft.StepRental,
			payload: draft.PersonalInfo{},
			wantErr: draft.ErrStepMismatch,
		},
		{
			name:    "NilPayload",
			userID:  "user-1",
			step:    draft.StepRental,
			payload: nil,
			wantErr: draft.ErrStepMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := draft.NewService(draft.NewMockRepository(ctrl), draft.NewMockCache(ctrl))
			err := svc.SaveStep(context.Background(), tt.userID, tt.step, tt.payload)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_SaveStep_DurableFailureKeepsCachedCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := draft.NewMockRepository(ctrl)
	svc := draft.NewService(repo, newRedisCache(t))
	ctx := context.Background()

	rental := draft.RentalInfo{City: "Porto", MoveInDate: "2026-09-01"}

	gomock.InOrder(
		repo.EXPECT().UpsertStep(gomock.Any(), "user-1", draft.StepRental, gomock.Any()).Return(errors.New("db down")),
		// retried by the first load, still down
		repo.EXPECT().UpsertStep(gomock.Any(), "user-1", draft.StepRental, gomock.Any()).Return(errors.New("db down")),
		// retried by the second load, recovered
		repo.EXPECT().UpsertStep(gomock.Any(), "user-1", draft.StepRental, gomock.Any()).Return(nil),
	)

	err := svc.SaveStep(ctx, "user-1", draft.StepRental, rental)
	require.Error(t, err)
	assert.True(t, apperror.IsTransient(err))

	repo.EXPECT().LoadSteps(gomock.Any(), "user-1").Return(nil, nil)

	d, err := svc.LoadDraft(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, d.Steps)
	assert.Equal(t, rental, d.Unsynced[draft.StepRental])

	raw := []byte(`{"city":"Porto","moveInDate":"2026-09-01"}`)
	repo.EXPECT().LoadSteps(gomock.Any(), "user-1").
		Return([]draft.Entry{{Step: draft.StepRental, Payload: raw, UpdatedAt: time.Now()}}, nil)

	d, err = svc.LoadDraft(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, d.Unsynced)

	got, ok := d.Rental()
	require.True(t, ok)
	assert.Equal(t, rental, got)
}

func TestService_SaveStep_CacheFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := draft.NewMockRepository(ctrl)
	c := draft.NewMockCache(ctrl)

	c.EXPECT().Put(gomock.Any(), "user-1", draft.StepReview, gomock.Any()).Return(errors.New("redis down"))
	repo.EXPECT().UpsertStep(gomock.Any(), "user-1", draft.StepReview, gomock.Any()).Return(nil)
	c.EXPECT().ClearUnsynced(gomock.Any(), "user-1", draft.StepReview).Return(errors.New("redis down"))

	svc := draft.NewService(repo, c)
	assert.NoError(t, svc.SaveStep(context.Background(), "user-1", draft.StepReview, draft.ReviewInfo{Confirmed: true}))
}

func TestService_LoadDraft_UnsyncedStepWithoutPayloadIsCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := draft.NewMockRepository(ctrl)
	c := draft.NewMockCache(ctrl)

	c.EXPECT().Unsynced(gomock.Any(), "user-1").Return([]draft.Step{draft.StepRental}, nil)
	c.EXPECT().Get(gomock.Any(), "user-1").Return(map[draft.Step][]byte{}, nil)
	c.EXPECT().ClearUnsynced(gomock.Any(), "user-1", draft.StepRental).Return(nil)
	repo.EXPECT().UpsertStep(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().LoadSteps(gomock.Any(), "user-1").Return(nil, nil)

	svc := draft.NewService(repo, c)
	d, err := svc.LoadDraft(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, d.Unsynced)
	assert.Empty(t, d.Steps)
}

func TestService_LoadDraft(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(repo *draft.MockRepository)
		wantErr   bool
		wantSteps int
	}

	tests := []testCase{
		{
			name: "UnknownUserGetsEmptyDraft",
			setupMock: func(repo *draft.MockRepository) {
				repo.EXPECT().LoadSteps(gomock.Any(), "user-1").Return(nil, nil)
			},
			wantSteps: 0,
		},
		{
			name: "DurableStepsLoaded",
			setupMock: func(repo *draft.MockRepository) {
				repo.EXPECT().LoadSteps(gomock.Any(), "user-1").Return([]draft.Entry{
					{Step: draft.StepPersonal, Payload: []byte(`{"firstName":"A","lastName":"B"}`)},
					{Step: draft.StepEmployment, Payload: []byte(`{"status":"retired"}`)},
				}, nil)
			},
			wantSteps: 2,
		},
		{
			name: "RepoErrorIsTransient",
			setupMock: func(repo *draft.MockRepository) {
				repo.EXPECT().LoadSteps(gomock.Any(), "user-1").Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
		{
			name: "CorruptPayload",
			setupMock: func(repo *draft.MockRepository) {
				repo.EXPECT().LoadSteps(gomock.Any(), "user-1").Return([]draft.Entry{
					{Step: draft.StepPersonal, Payload: []byte(`{not json`)},
				}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := draft.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := draft.NewService(repo, newRedisCache(t))
			d, err := svc.LoadDraft(context.Background(), "user-1")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "user-1", d.UserID)
			assert.Len(t, d.Steps, tt.wantSteps)
		})
	}
}

func TestService_Discard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := draft.NewMockRepository(ctrl)
	memRows(repo)

	c := newRedisCache(t)
	svc := draft.NewService(repo, c)
	ctx := context.Background()

	require.NoError(t, svc.SaveStep(ctx, "user-1", draft.StepPersonal, draft.PersonalInfo{FirstName: "A"}))
	require.NoError(t, svc.Discard(ctx, "user-1"))

	cached, err := c.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cached)
}
