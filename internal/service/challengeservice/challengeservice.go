package challengeservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/metrics"
)

type ChallengeRepo interface {
	CreateIdempotent(ctx context.Context, ch *domain.Challenge) (*domain.Challenge, bool, error)
	GetByID(ctx context.Context, id int) (*domain.Challenge, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Challenge, error)
	ResetDailyBaselines(ctx context.Context) (int64, error)
}

type TierRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Tier, error)
}

var (
	ErrTierNotFound      = errors.New("tier not found")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrNotOwner          = errors.New("challenge belongs to another user")
)

type Service struct {
	challengeRepo ChallengeRepo
	tierRepo      TierRepo
}

func New(challengeRepo ChallengeRepo, tierRepo TierRepo) *Service {
	return &Service{
		challengeRepo: challengeRepo,
		tierRepo:      tierRepo,
	}
}

// CreateFromPayment creates a challenge for a confirmed payment or an
// accepted gift token. The provider transaction reference keys
// idempotency: a redelivered notification returns the original challenge.
func (s *Service) CreateFromPayment(ctx context.Context, userID, tierID int, providerRef string) (*domain.Challenge, bool, error) {
	tier, err := s.tierRepo.GetByID(ctx, tierID)
	if err != nil {
		zap.L().Error("failed to load tier", zap.Error(err))
		return nil, false, err
	}
	if tier == nil {
		return nil, false, ErrTierNotFound
	}

	ch := &domain.Challenge{
		UserID:      userID,
		TierID:      tierID,
		ProviderRef: providerRef,
		Phase:       domain.PhaseOne,
		Status:      domain.StatusActive,
		Balance:     tier.FundedBankroll,
		StartedAt:   time.Now(),
	}

	created, isNew, err := s.challengeRepo.CreateIdempotent(ctx, ch)
	if err != nil {
		zap.L().Error("failed to create challenge", zap.Error(err))
		return nil, false, err
	}
	if !isNew {
		zap.L().Info("duplicate payment notification, returning existing challenge",
			zap.String("providerRef", providerRef),
			zap.Int("challengeID", created.ID))
	}
	return created, isNew, nil
}

// GetChallenge returns the owner's challenge snapshot.
func (s *Service) GetChallenge(ctx context.Context, userID, challengeID int) (*domain.Challenge, error) {
	ch, err := s.challengeRepo.GetByID(ctx, challengeID)
	if err != nil {
		zap.L().Error("failed to get challenge", zap.Error(err))
		return nil, err
	}
	if ch == nil {
		return nil, ErrChallengeNotFound
	}
	if ch.UserID != userID {
		return nil, ErrNotOwner
	}
	return ch, nil
}

func (s *Service) ListChallenges(ctx context.Context, userID int) ([]domain.Challenge, error) {
	challenges, err := s.challengeRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list challenges", zap.Error(err))
		return nil, err
	}
	return challenges, nil
}

// DailyReset re-baselines the daily-loss reference for all active
// challenges. Safe to invoke twice in a window: setting the baseline to
// the current balance again is a no-op.
func (s *Service) DailyReset(ctx context.Context) (int64, error) {
	rows, err := s.challengeRepo.ResetDailyBaselines(ctx)
	if err != nil {
		zap.L().Error("daily reset failed", zap.Error(err))
		return 0, err
	}
	metrics.DailyResetRows.Set(float64(rows))
	zap.L().Info("daily reset completed", zap.Int64("rowsUpdated", rows))
	return rows, nil
}
