package pickservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/eventlock"
)

func NewTestMock(t *testing.T) (*Service, *MockChallengeRepo, *MockPickRepo, *eventlock.Memory) {
	ctrl := gomock.NewController(t)
	challengeRepo := NewMockChallengeRepo(ctrl)
	pickRepo := NewMockPickRepo(ctrl)
	locker := eventlock.NewMemory(eventlock.DefaultTTL)
	service := New(challengeRepo, pickRepo, locker)
	defer ctrl.Finish()
	return service, challengeRepo, pickRepo, locker
}

func activeChallenge() *domain.Challenge {
	return &domain.Challenge{
		ID:     7,
		UserID: 1,
		TierID: 2,
		Phase:  domain.PhaseOne,
		Status: domain.StatusActive,

		Balance:      100000,
		StartBalance: 100000,
		PeakBalance:  100000,
	}
}

func validParams() PlaceParams {
	return PlaceParams{
		Sport:      "football",
		League:     "epl",
		EventID:    "ev_20260901_ars_che",
		MarketType: "moneyline",
		Selection:  "home",
		Odds:       decimal.RequireFromString("1.95"),
		Stake:      5000,
	}
}

func TestPlacePick(t *testing.T) {
	tests := []struct {
		name        string
		userID      int
		params      func() PlaceParams
		prepareMock func(challengeRepo *MockChallengeRepo, pickRepo *MockPickRepo, locker *eventlock.Memory)
		wantErr     error
	}{
		{
			name:   "Places pick without touching the balance",
			userID: 1,
			params: validParams,
			prepareMock: func(challengeRepo *MockChallengeRepo, pickRepo *MockPickRepo, _ *eventlock.Memory) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil)
				pickRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, pick *domain.Pick) error {
						pick.ID = 31
						return nil
					})
			},
		},
		{
			name:   "Funded challenge can still place",
			userID: 1,
			params: validParams,
			prepareMock: func(challengeRepo *MockChallengeRepo, pickRepo *MockPickRepo, _ *eventlock.Memory) {
				ch := activeChallenge()
				ch.Phase = domain.PhaseFunded
				ch.Status = domain.StatusFunded
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(ch, nil)
				pickRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Unknown challenge",
			userID: 1,
			params: validParams,
			prepareMock: func(challengeRepo *MockChallengeRepo, _ *MockPickRepo, _ *eventlock.Memory) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(nil, nil)
			},
			wantErr: ErrChallengeNotFound,
		},
		{
			name:   "Foreign challenge",
			userID: 2,
			params: validParams,
			prepareMock: func(challengeRepo *MockChallengeRepo, _ *MockPickRepo, _ *eventlock.Memory) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil)
			},
			wantErr: ErrNotOwner,
		},
		{
			name:   "Failed challenge rejects placement",
			userID: 1,
			params: validParams,
			prepareMock: func(challengeRepo *MockChallengeRepo, _ *MockPickRepo, _ *eventlock.Memory) {
				ch := activeChallenge()
				ch.Status = domain.StatusFailed
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(ch, nil)
			},
			wantErr: ErrChallengeNotActive,
		},
		{
			name:   "Stake below minimum",
			userID: 1,
			params: func() PlaceParams {
				p := validParams()
				p.Stake = 50
				return p
			},
			prepareMock: func(challengeRepo *MockChallengeRepo, _ *MockPickRepo, _ *eventlock.Memory) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil)
			},
			wantErr: ErrStakeOutOfRange,
		},
		{
			name:   "Stake over the balance cap",
			userID: 1,
			params: func() PlaceParams {
				p := validParams()
				p.Stake = 5001 // 5% of 100000 is 5000
				return p
			},
			prepareMock: func(challengeRepo *MockChallengeRepo, _ *MockPickRepo, _ *eventlock.Memory) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil)
			},
			wantErr: ErrStakeOutOfRange,
		},
		{
			name:   "Odds below one",
			userID: 1,
			params: func() PlaceParams {
				p := validParams()
				p.Odds = decimal.RequireFromString("0.99")
				return p
			},
			prepareMock: func(challengeRepo *MockChallengeRepo, _ *MockPickRepo, _ *eventlock.Memory) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil)
			},
			wantErr: ErrInvalidOdds,
		},
		{
			name:   "Locked market",
			userID: 1,
			params: validParams,
			prepareMock: func(challengeRepo *MockChallengeRepo, _ *MockPickRepo, locker *eventlock.Memory) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil)
				_, err := locker.Acquire(context.Background(), 7, "ev_20260901_ars_che:moneyline:home")
				assert.NoError(t, err)
			},
			wantErr: ErrEventLocked,
		},
		{
			name:   "Save failure",
			userID: 1,
			params: validParams,
			prepareMock: func(challengeRepo *MockChallengeRepo, pickRepo *MockPickRepo, _ *eventlock.Memory) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil)
				pickRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, challengeRepo, pickRepo, locker := NewTestMock(t)
			tt.prepareMock(challengeRepo, pickRepo, locker)

			pick, balance, err := service.PlacePick(context.Background(), tt.userID, 7, tt.params())
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, pick)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(100000), balance)
			assert.Equal(t, domain.PickPending, pick.Status)
			assert.Equal(t, int64(9750), pick.PotentialPayout)
			assert.WithinDuration(t, time.Now(), pick.PlacedAt, time.Second)
		})
	}
}

func TestPlacePick_PayoutRoundsDown(t *testing.T) {
	service, challengeRepo, pickRepo, _ := NewTestMock(t)
	challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil)
	pickRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	params := validParams()
	params.Odds = decimal.RequireFromString("1.333")
	params.Stake = 1000

	pick, _, err := service.PlacePick(context.Background(), 1, 7, params)
	assert.NoError(t, err)
	assert.Equal(t, int64(1333), pick.PotentialPayout)
}

func TestPlacePick_ReleasesLockAfterSave(t *testing.T) {
	service, challengeRepo, pickRepo, locker := NewTestMock(t)
	challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil).Times(2)
	pickRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, _, err := service.PlacePick(context.Background(), 1, 7, validParams())
	assert.NoError(t, err)

	// The lock guards only the write; the same market is free again.
	_, _, err = service.PlacePick(context.Background(), 1, 7, validParams())
	assert.NoError(t, err)
	_ = locker
}

func TestListPicks(t *testing.T) {
	tests := []struct {
		name        string
		userID      int
		prepareMock func(challengeRepo *MockChallengeRepo, pickRepo *MockPickRepo)
		wantErr     error
		wantLen     int
	}{
		{
			name:   "Returns picks",
			userID: 1,
			prepareMock: func(challengeRepo *MockChallengeRepo, pickRepo *MockPickRepo) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil)
				pickRepo.EXPECT().FindByChallengeID(gomock.Any(), 7).Return([]domain.Pick{{ID: 1}, {ID: 2}}, nil)
			},
			wantLen: 2,
		},
		{
			name:   "Foreign challenge",
			userID: 2,
			prepareMock: func(challengeRepo *MockChallengeRepo, _ *MockPickRepo) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(activeChallenge(), nil)
			},
			wantErr: ErrNotOwner,
		},
		{
			name:   "Unknown challenge",
			userID: 1,
			prepareMock: func(challengeRepo *MockChallengeRepo, _ *MockPickRepo) {
				challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(nil, nil)
			},
			wantErr: ErrChallengeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, challengeRepo, pickRepo, _ := NewTestMock(t)
			tt.prepareMock(challengeRepo, pickRepo)

			picks, err := service.ListPicks(context.Background(), tt.userID, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, picks, tt.wantLen)
		})
	}
}
