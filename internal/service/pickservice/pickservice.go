package pickservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/eventlock"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/metrics"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/risk"
)

type ChallengeRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Challenge, error)
}

type PickRepo interface {
	Save(ctx context.Context, pick *domain.Pick) error
	FindByChallengeID(ctx context.Context, challengeID int) ([]domain.Pick, error)
}

var (
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrNotOwner           = errors.New("challenge belongs to another user")
	ErrChallengeNotActive = errors.New("challenge is not active")
	ErrStakeOutOfRange    = errors.New("stake out of range")
	ErrInvalidOdds        = errors.New("odds must be at least 1.0")
	ErrEventLocked        = errors.New("event is locked by another placement")
)

// PlaceParams describes one placement request against a market.
type PlaceParams struct {
	Sport      string
	League     string
	EventID    string
	MarketType string
	Selection  string
	Odds       decimal.Decimal
	Stake      int64
}

type Service struct {
	challengeRepo ChallengeRepo
	pickRepo      PickRepo
	locker        eventlock.Locker
}

func New(challengeRepo ChallengeRepo, pickRepo PickRepo, locker eventlock.Locker) *Service {
	return &Service{
		challengeRepo: challengeRepo,
		pickRepo:      pickRepo,
		locker:        locker,
	}
}

// PlacePick validates a placement against the live balance and the event
// lock, then persists the pending pick. The stake is not deducted here;
// exposure is bounded by re-evaluating the 5% cap against the current
// balance on every placement.
func (s *Service) PlacePick(ctx context.Context, userID, challengeID int, params PlaceParams) (*domain.Pick, int64, error) {
	ch, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		zap.L().Error("failed to get challenge", zap.Error(err))
		return nil, 0, err
	}
	if ch == nil {
		return nil, 0, ErrChallengeNotFound
	}
	if ch.UserID != userID {
		return nil, 0, ErrNotOwner
	}
	if ch.Status != domain.StatusActive && ch.Status != domain.StatusFunded {
		return nil, 0, ErrChallengeNotActive
	}

	if params.Odds.LessThan(decimal.NewFromInt(1)) {
		return nil, 0, ErrInvalidOdds
	}
	if params.Stake < risk.MinStake || params.Stake > risk.MaxStakeFor(ch.Balance) {
		return nil, 0, ErrStakeOutOfRange
	}

	pick := &domain.Pick{
		ChallengeID: challengeID,
		Sport:       params.Sport,
		League:      params.League,
		EventID:     params.EventID,
		MarketType:  params.MarketType,
		Selection:   params.Selection,
		Odds:        params.Odds,
		Stake:       params.Stake,
		Status:      domain.PickPending,
		PlacedAt:    time.Now(),
	}
	pick.PotentialPayout = potentialPayout(params.Stake, params.Odds)

	// Held only while the pick is persisted, not for its pending life.
	release, err := s.locker.Acquire(ctx, challengeID, pick.MarketKey())
	if err != nil {
		if errors.Is(err, eventlock.ErrAlreadyLocked) {
			return nil, 0, ErrEventLocked
		}
		zap.L().Error("failed to acquire event lock", zap.Error(err))
		return nil, 0, err
	}
	defer release()

	if err := s.pickRepo.Save(ctx, pick); err != nil {
		zap.L().Error("failed to save pick", zap.Error(err))
		return nil, 0, err
	}

	metrics.PicksPlacedTotal.Inc()
	return pick, ch.Balance, nil
}

func (s *Service) ListPicks(ctx context.Context, userID, challengeID int) ([]domain.Pick, error) {
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

	picks, err := s.pickRepo.FindByChallengeID(ctx, challengeID)
	if err != nil {
		zap.L().Error("failed to list picks", zap.Error(err))
		return nil, err
	}
	return picks, nil
}

// potentialPayout is stake times odds, floored to minor units.
func potentialPayout(stake int64, odds decimal.Decimal) int64 {
	return decimal.NewFromInt(stake).Mul(odds).Floor().IntPart()
}
