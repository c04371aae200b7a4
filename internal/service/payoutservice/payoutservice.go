package payoutservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/metrics"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/notify"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/pg"
)

type ChallengeRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Challenge, error)
	RebaseStartBalance(ctx context.Context, challengeID int) error
}

type PayoutRepo interface {
	Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	HasPendingWithdrawal(ctx context.Context, challengeID int) (bool, error)
	FindByChallengeID(ctx context.Context, challengeID int) ([]domain.Payout, error)
}

type TierRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Tier, error)
}

type UserRepo interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
}

var (
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrNotOwner            = errors.New("challenge belongs to another user")
	ErrChallengeNotFunded  = errors.New("challenge is not funded")
	ErrKYCNotApproved      = errors.New("identity verification not approved")
	ErrProfitZero          = errors.New("no distributable profit")
	ErrPendingPayoutExists = errors.New("a pending payout already exists")
)

type Service struct {
	challengeRepo ChallengeRepo
	payoutRepo    PayoutRepo
	tierRepo      TierRepo
	userRepo      UserRepo
	txManager     pg.TXManager
	notifier      notify.Notifier
}

func New(challengeRepo ChallengeRepo, payoutRepo PayoutRepo, tierRepo TierRepo, userRepo UserRepo, txManager pg.TXManager, notifier notify.Notifier) *Service {
	return &Service{
		challengeRepo: challengeRepo,
		payoutRepo:    payoutRepo,
		tierRepo:      tierRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		notifier:      notifier,
	}
}

// distributable loads the challenge, enforces the funded/KYC/ownership
// gates, and returns the challenge with its payable profit share.
func (s *Service) distributable(ctx context.Context, userID, challengeID int) (*domain.Challenge, *domain.Tier, int64, error) {
	ch, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, nil, 0, err
	}
	if ch == nil {
		return nil, nil, 0, ErrChallengeNotFound
	}
	if ch.UserID != userID {
		return nil, nil, 0, ErrNotOwner
	}
	if ch.Status != domain.StatusFunded {
		return nil, nil, 0, ErrChallengeNotFunded
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, 0, err
	}
	if user == nil || !user.KYCApproved {
		return nil, nil, 0, ErrKYCNotApproved
	}

	tier, err := s.tierRepo.GetByID(ctx, ch.TierID)
	if err != nil {
		return nil, nil, 0, err
	}

	grossProfit := ch.Balance - ch.StartBalance
	if grossProfit <= 0 {
		return nil, nil, 0, ErrProfitZero
	}
	amount := grossProfit * int64(tier.ProfitSplitPct) / 100
	if amount == 0 {
		return nil, nil, 0, ErrProfitZero
	}
	return ch, tier, amount, nil
}

// RequestPayout creates a pending withdrawal for the trader's share of the
// profit. At most one non-rollover payout may be pending per challenge.
func (s *Service) RequestPayout(ctx context.Context, userID, challengeID int, method string) (*domain.Payout, error) {
	ch, tier, amount, err := s.distributable(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}

	pending, err := s.payoutRepo.HasPendingWithdrawal(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrPendingPayoutExists
	}

	payout := &domain.Payout{
		ChallengeID: ch.ID,
		Amount:      amount,
		SplitPct:    tier.ProfitSplitPct,
		Method:      method,
		Status:      domain.PayoutPending,
		RequestedAt: time.Now(),
	}
	if _, err := s.payoutRepo.Create(ctx, payout); err != nil {
		zap.L().Error("failed to create payout", zap.Error(err))
		return nil, err
	}

	metrics.PayoutsTotal.WithLabelValues("withdrawal").Inc()
	s.notifier.Publish(notify.TransitionEvent{
		Type:        notify.EventPayoutRequested,
		ChallengeID: ch.ID,
		UserID:      userID,
		Amount:      amount,
		OccurredAt:  payout.RequestedAt,
	})
	zap.L().Info("payout requested",
		zap.Int("challengeID", ch.ID),
		zap.Int64("amount", amount))
	return payout, nil
}

// Rollover converts the distributable profit into a new baseline instead
// of a withdrawal. The bookkeeping record and the baseline move commit
// atomically: both or neither.
func (s *Service) Rollover(ctx context.Context, userID, challengeID int) (*domain.Payout, error) {
	ch, tier, amount, err := s.distributable(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}

	payout := &domain.Payout{
		ChallengeID: ch.ID,
		Amount:      amount,
		SplitPct:    tier.ProfitSplitPct,
		Method:      "rollover",
		Status:      domain.PayoutPaid,
		IsRollover:  true,
		RequestedAt: time.Now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.payoutRepo.Create(ctx, payout); err != nil {
			return err
		}
		return s.challengeRepo.RebaseStartBalance(ctx, ch.ID)
	})
	if err != nil {
		zap.L().Error("rollover failed", zap.Error(err))
		return nil, err
	}

	metrics.PayoutsTotal.WithLabelValues("rollover").Inc()
	s.notifier.Publish(notify.TransitionEvent{
		Type:        notify.EventRolloverApplied,
		ChallengeID: ch.ID,
		UserID:      userID,
		Amount:      amount,
		OccurredAt:  payout.RequestedAt,
	})
	return payout, nil
}

func (s *Service) ListPayouts(ctx context.Context, userID, challengeID int) ([]domain.Payout, error) {
	ch, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, ErrChallengeNotFound
	}
	if ch.UserID != userID {
		return nil, ErrNotOwner
	}

	payouts, err := s.payoutRepo.FindByChallengeID(ctx, challengeID)
	if err != nil {
		zap.L().Error("failed to list payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}
