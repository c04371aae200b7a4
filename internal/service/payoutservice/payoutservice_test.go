package payoutservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/notify"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/pg"
)

type mocks struct {
	challengeRepo *MockChallengeRepo
	payoutRepo    *MockPayoutRepo
	tierRepo      *MockTierRepo
	userRepo      *MockUserRepo
	txManager     *pg.MockTXManager
}

func NewTestMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		challengeRepo: NewMockChallengeRepo(ctrl),
		payoutRepo:    NewMockPayoutRepo(ctrl),
		tierRepo:      NewMockTierRepo(ctrl),
		userRepo:      NewMockUserRepo(ctrl),
		txManager:     pg.NewMockTXManager(ctrl),
	}
	service := New(m.challengeRepo, m.payoutRepo, m.tierRepo, m.userRepo, m.txManager, notify.Noop{})
	defer ctrl.Finish()
	return service, m
}

func fundedChallenge() *domain.Challenge {
	return &domain.Challenge{
		ID:           7,
		UserID:       1,
		TierID:       2,
		Phase:        domain.PhaseFunded,
		Status:       domain.StatusFunded,
		Balance:      160000,
		StartBalance: 100000,
		PeakBalance:  160000,
	}
}

func proTier() *domain.Tier {
	return &domain.Tier{
		ID:             2,
		Name:           "pro",
		Fee:            9900,
		FundedBankroll: 100000,
		ProfitSplitPct: 75,
		MinPicks:       15,
	}
}

func verifiedUser() *domain.User {
	return &domain.User{ID: 1, Login: "trader1", KYCApproved: true}
}

func TestRequestPayout(t *testing.T) {
	tests := []struct {
		name        string
		userID      int
		prepareMock func(m *mocks)
		wantErr     error
		wantAmount  int64
	}{
		{
			name:   "Pays 75 percent of gross profit",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(fundedChallenge(), nil)
				m.userRepo.EXPECT().GetByID(gomock.Any(), 1).Return(verifiedUser(), nil)
				m.tierRepo.EXPECT().GetByID(gomock.Any(), 2).Return(proTier(), nil)
				m.payoutRepo.EXPECT().HasPendingWithdrawal(gomock.Any(), 7).Return(false, nil)
				m.payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
						p.ID = 12
						return p, nil
					})
			},
			// floor((160000-100000) * 75 / 100)
			wantAmount: 45000,
		},
		{
			name:   "Unknown challenge",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(nil, nil)
			},
			wantErr: ErrChallengeNotFound,
		},
		{
			name:   "Foreign challenge",
			userID: 2,
			prepareMock: func(m *mocks) {
				m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(fundedChallenge(), nil)
			},
			wantErr: ErrNotOwner,
		},
		{
			name:   "Evaluation phase has no payouts",
			userID: 1,
			prepareMock: func(m *mocks) {
				ch := fundedChallenge()
				ch.Phase = domain.PhaseOne
				ch.Status = domain.StatusActive
				m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(ch, nil)
			},
			wantErr: ErrChallengeNotFunded,
		},
		{
			name:   "Unverified identity",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(fundedChallenge(), nil)
				m.userRepo.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.User{ID: 1, KYCApproved: false}, nil)
			},
			wantErr: ErrKYCNotApproved,
		},
		{
			name:   "Balance at baseline has no profit",
			userID: 1,
			prepareMock: func(m *mocks) {
				ch := fundedChallenge()
				ch.Balance = ch.StartBalance
				m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(ch, nil)
				m.userRepo.EXPECT().GetByID(gomock.Any(), 1).Return(verifiedUser(), nil)
				m.tierRepo.EXPECT().GetByID(gomock.Any(), 2).Return(proTier(), nil)
			},
			wantErr: ErrProfitZero,
		},
		{
			name:   "Second concurrent withdrawal is refused",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(fundedChallenge(), nil)
				m.userRepo.EXPECT().GetByID(gomock.Any(), 1).Return(verifiedUser(), nil)
				m.tierRepo.EXPECT().GetByID(gomock.Any(), 2).Return(proTier(), nil)
				m.payoutRepo.EXPECT().HasPendingWithdrawal(gomock.Any(), 7).Return(true, nil)
			},
			wantErr: ErrPendingPayoutExists,
		},
		{
			name:   "Create failure",
			userID: 1,
			prepareMock: func(m *mocks) {
				m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(fundedChallenge(), nil)
				m.userRepo.EXPECT().GetByID(gomock.Any(), 1).Return(verifiedUser(), nil)
				m.tierRepo.EXPECT().GetByID(gomock.Any(), 2).Return(proTier(), nil)
				m.payoutRepo.EXPECT().HasPendingWithdrawal(gomock.Any(), 7).Return(false, nil)
				m.payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewTestMock(t)
			tt.prepareMock(m)

			payout, err := service.RequestPayout(context.Background(), tt.userID, 7, "bank_transfer")
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, payout)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantAmount, payout.Amount)
			assert.Equal(t, 75, payout.SplitPct)
			assert.Equal(t, domain.PayoutPending, payout.Status)
			assert.False(t, payout.IsRollover)
		})
	}
}

func TestRollover(t *testing.T) {
	t.Run("Creates record and moves baseline atomically", func(t *testing.T) {
		service, m := NewTestMock(t)
		m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(fundedChallenge(), nil)
		m.userRepo.EXPECT().GetByID(gomock.Any(), 1).Return(verifiedUser(), nil)
		m.tierRepo.EXPECT().GetByID(gomock.Any(), 2).Return(proTier(), nil)
		m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
		m.payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
				p.ID = 13
				return p, nil
			})
		m.challengeRepo.EXPECT().RebaseStartBalance(gomock.Any(), 7).Return(nil)

		payout, err := service.Rollover(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.True(t, payout.IsRollover)
		assert.Equal(t, "rollover", payout.Method)
		assert.Equal(t, domain.PayoutPaid, payout.Status)
		assert.Equal(t, int64(45000), payout.Amount)
	})

	t.Run("Rebase failure rolls the record back", func(t *testing.T) {
		service, m := NewTestMock(t)
		m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(fundedChallenge(), nil)
		m.userRepo.EXPECT().GetByID(gomock.Any(), 1).Return(verifiedUser(), nil)
		m.tierRepo.EXPECT().GetByID(gomock.Any(), 2).Return(proTier(), nil)
		m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(ctx)
			})
		m.payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Payout{}, nil)
		m.challengeRepo.EXPECT().RebaseStartBalance(gomock.Any(), 7).Return(errors.New("db error"))

		payout, err := service.Rollover(context.Background(), 1, 7)
		assert.Error(t, err)
		assert.Nil(t, payout)
	})

	t.Run("No profit after a previous rollover", func(t *testing.T) {
		service, m := NewTestMock(t)
		ch := fundedChallenge()
		ch.StartBalance = ch.Balance // baseline already moved
		m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(ch, nil)
		m.userRepo.EXPECT().GetByID(gomock.Any(), 1).Return(verifiedUser(), nil)
		m.tierRepo.EXPECT().GetByID(gomock.Any(), 2).Return(proTier(), nil)

		payout, err := service.Rollover(context.Background(), 1, 7)
		assert.ErrorIs(t, err, ErrProfitZero)
		assert.Nil(t, payout)
	})
}

func TestListPayouts(t *testing.T) {
	t.Run("Returns payout history", func(t *testing.T) {
		service, m := NewTestMock(t)
		m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(fundedChallenge(), nil)
		m.payoutRepo.EXPECT().FindByChallengeID(gomock.Any(), 7).Return([]domain.Payout{{ID: 12}}, nil)

		payouts, err := service.ListPayouts(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Len(t, payouts, 1)
	})

	t.Run("Foreign challenge", func(t *testing.T) {
		service, m := NewTestMock(t)
		m.challengeRepo.EXPECT().GetByID(gomock.Any(), 7).Return(fundedChallenge(), nil)

		payouts, err := service.ListPayouts(context.Background(), 2, 7)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Nil(t, payouts)
	})
}
