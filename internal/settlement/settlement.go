// Package settlement consumes the external results feed and resolves
// pending picks exactly once, driving the ledger, the risk evaluator and
// the challenge state machine.
package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/config"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/metrics"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/notify"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/pg"
	challengerepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/challenge-repo"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/risk"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/clients"
)

const (
	maxRetries     = 3
	retryInterval  = time.Second * 1
	resultCacheTTL = time.Second * 30
)

// processingChallenges dedups in-flight work: one goroutine per challenge
// at a time, so picks on one challenge apply sequentially.
var processingChallenges sync.Map

type ChallengeRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Challenge, error)
	ApplyDelta(ctx context.Context, challengeID int, delta int64) (*domain.Challenge, error)
	AdvanceToPhase2(ctx context.Context, challengeID int, now time.Time) error
	MarkFunded(ctx context.Context, challengeID int, now time.Time) error
	MarkFailed(ctx context.Context, challengeID int) error
}

type PickRepo interface {
	FindPending(ctx context.Context, limit uint32) ([]domain.Pick, error)
	Settle(ctx context.Context, pickID int, status domain.PickStatus, actualPayout int64, settledAt time.Time) (bool, error)
	CountSettledSince(ctx context.Context, challengeID int, since time.Time) (int, error)
}

type TierRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Tier, error)
}

// Result is one market outcome delivered by the external feed.
type Result struct {
	EventID          string `json:"event_id"`
	MarketType       string `json:"market_type"`
	Status           string `json:"status"` // pending | resolved | push | void
	WinningSelection string `json:"winning_selection,omitempty"`
}

type Service struct {
	url            string
	challengeRepo  ChallengeRepo
	pickRepo       PickRepo
	tierRepo       TierRepo
	txManager      pg.TXManager
	notifier       notify.Notifier
	client         clients.HTTPClientI
	results        *resultCache
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, challengeRepo ChallengeRepo, pickRepo PickRepo, tierRepo TierRepo, txManager pg.TXManager, notifier notify.Notifier, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.ResultsFeedAddress,
		challengeRepo:  challengeRepo,
		pickRepo:       pickRepo,
		tierRepo:       tierRepo,
		txManager:      txManager,
		notifier:       notifier,
		client:         client,
		results:        newResultCache(resultCacheTTL, clockwork.NewRealClock()),
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Settlement service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement service")
			return
		case <-ticker.C:
			s.processPending(ctx)
		}
	}
}

// processPending fans out across challenges while keeping each
// challenge's picks strictly sequential: every settlement depends on the
// balance left by the previous one.
func (s *Service) processPending(ctx context.Context) {
	picks, err := s.pickRepo.FindPending(ctx, s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch pending picks", zap.Error(err))
		return
	}

	groups := groupByChallenge(picks)

	var g errgroup.Group
	for challengeID, batch := range groups {
		challengeID, batch := challengeID, batch

		if _, loaded := processingChallenges.LoadOrStore(challengeID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingChallenges.Delete(challengeID)
				return s.settleBatch(ctx, batch)
			})
			if err != nil {
				processingChallenges.Delete(challengeID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error scheduling settlements", zap.Error(err))
	}
}

// groupByChallenge preserves placement order within each group; picks
// arrive sorted by placed_at from the repo.
func groupByChallenge(picks []domain.Pick) map[int][]domain.Pick {
	groups := make(map[int][]domain.Pick)
	for _, p := range picks {
		groups[p.ChallengeID] = append(groups[p.ChallengeID], p)
	}
	return groups
}

func (s *Service) settleBatch(ctx context.Context, picks []domain.Pick) error {
	for _, pick := range picks {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := s.fetchResult(ctx, pick.EventID, pick.MarketType)
		if err != nil {
			zap.L().Warn("Failed to fetch result, will retry next cycle",
				zap.String("eventID", pick.EventID), zap.Error(err))
			continue
		}
		if result.Status == "pending" {
			continue
		}

		if err := s.settlePick(ctx, pick, result); err != nil {
			zap.L().Error("Failed to settle pick",
				zap.Int("pickID", pick.ID),
				zap.Int("challengeID", pick.ChallengeID),
				zap.Error(err))
			return err
		}
	}
	return nil
}

// fetchResult consults the TTL cache before going to the feed, retrying
// a failed request up to maxRetries times.
func (s *Service) fetchResult(ctx context.Context, eventID, marketType string) (Result, error) {
	cacheKey := eventID + ":" + marketType
	if result, ok := s.results.get(cacheKey); ok {
		return result, nil
	}

	url := fmt.Sprintf("%s/api/events/%s/markets/%s", s.url, eventID, marketType)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, _, err := s.client.Get(ctx, url, nil)
		if err != nil {
			lastErr = err
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			return Result{}, fmt.Errorf("results feed unreachable after %d retries: %w", maxRetries, lastErr)
		}

		switch statusCode {
		case http.StatusOK:
			var result Result
			if err := json.Unmarshal(respBody, &result); err != nil {
				return Result{}, fmt.Errorf("failed to parse feed response: %w", err)
			}
			if result.EventID != eventID {
				return Result{}, fmt.Errorf("event mismatch: expected %s, got %s", eventID, result.EventID)
			}
			if result.Status != "pending" {
				s.results.put(cacheKey, result)
			}
			return result, nil
		case http.StatusNoContent, http.StatusNotFound:
			return Result{Status: "pending"}, nil
		default:
			return Result{}, fmt.Errorf("unexpected feed status code %d", statusCode)
		}
	}
	return Result{}, lastErr
}

// outcome maps a feed result onto the pick's terminal status, payout and
// ledger delta. Stakes are never deducted at placement, so push and void
// both settle with a zero delta and the stake as the recorded payout.
func outcome(pick domain.Pick, result Result) (domain.PickStatus, int64, int64) {
	switch result.Status {
	case "void":
		return domain.PickVoid, pick.Stake, 0
	case "push":
		return domain.PickPush, pick.Stake, 0
	}
	if result.WinningSelection == pick.Selection {
		return domain.PickWon, pick.PotentialPayout, pick.PotentialPayout - pick.Stake
	}
	return domain.PickLost, 0, -pick.Stake
}

// settlePick resolves one pick inside a transaction and applies the
// resulting phase/status transition. A ledger conflict retries the whole
// unit against a fresh snapshot, bounded; exhaustion surfaces as an
// error and the pick stays pending for the next cycle.
func (s *Service) settlePick(ctx context.Context, pick domain.Pick, result Result) error {
	for attempt := 1; attempt <= maxRetries; attempt++ {
		event, err := s.trySettle(ctx, pick, result)
		if errors.Is(err, challengerepo.ErrConcurrencyConflict) {
			metrics.ConcurrencyRetries.Inc()
			zap.L().Warn("Ledger conflict, retrying settlement",
				zap.Int("pickID", pick.ID), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return err
		}
		if event != nil {
			// Post-commit: the transition is the source of truth,
			// notification is best-effort.
			s.notifier.Publish(*event)
		}
		return nil
	}
	return fmt.Errorf("settlement of pick %d abandoned after %d ledger conflicts", pick.ID, maxRetries)
}

func (s *Service) trySettle(ctx context.Context, pick domain.Pick, result Result) (*notify.TransitionEvent, error) {
	var event *notify.TransitionEvent

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ch, err := s.challengeRepo.GetByID(ctx, pick.ChallengeID)
		if err != nil {
			return err
		}
		if ch == nil {
			return fmt.Errorf("challenge %d not found for pick %d", pick.ChallengeID, pick.ID)
		}

		now := time.Now()

		// A terminal challenge accepts no balance mutation: the pick is
		// voided so it does not stay pending forever.
		if ch.Status.Terminal() {
			_, err := s.pickRepo.Settle(ctx, pick.ID, domain.PickVoid, pick.Stake, now)
			return err
		}

		status, payout, delta := outcome(pick, result)

		settled, err := s.pickRepo.Settle(ctx, pick.ID, status, payout, now)
		if err != nil {
			return err
		}
		if !settled {
			// Already left pending: idempotent no-op.
			return nil
		}
		metrics.SettlementsTotal.WithLabelValues(string(status)).Inc()

		if delta != 0 {
			ch, err = s.challengeRepo.ApplyDelta(ctx, ch.ID, delta)
			if err != nil {
				return err
			}
		}

		event, err = s.applyVerdict(ctx, ch, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// applyVerdict evaluates risk on the fresh snapshot and drives the
// challenge state machine.
func (s *Service) applyVerdict(ctx context.Context, ch *domain.Challenge, now time.Time) (*notify.TransitionEvent, error) {
	tier, err := s.tierRepo.GetByID(ctx, ch.TierID)
	if err != nil {
		return nil, err
	}
	settledPicks, err := s.pickRepo.CountSettledSince(ctx, ch.ID, ch.PhaseStartedAt)
	if err != nil {
		return nil, err
	}

	verdict := risk.Evaluate(risk.State{
		Phase:              ch.Phase,
		Balance:            ch.Balance,
		PeakBalance:        ch.PeakBalance,
		DailyStartBalance:  ch.DailyStartBalance,
		Phase1StartBalance: ch.Phase1StartBalance,
		Phase2StartBalance: ch.Phase2StartBalance,
		SettledPicks:       settledPicks,
		MinPicks:           tier.MinPicks,
	})

	switch verdict {
	case risk.BreachDrawdown, risk.BreachDailyLoss:
		if err := s.challengeRepo.MarkFailed(ctx, ch.ID); err != nil {
			return nil, err
		}
		metrics.RiskBreachesTotal.WithLabelValues(verdict.String()).Inc()
		zap.L().Info("challenge failed on risk breach",
			zap.Int("challengeID", ch.ID),
			zap.String("breach", verdict.String()))
		return &notify.TransitionEvent{
			Type:        notify.EventChallengeFailed,
			ChallengeID: ch.ID,
			UserID:      ch.UserID,
			Phase:       ch.Phase,
			Status:      domain.StatusFailed,
			OccurredAt:  now,
		}, nil

	case risk.TargetMet:
		switch ch.Phase {
		case domain.PhaseOne:
			if err := s.challengeRepo.AdvanceToPhase2(ctx, ch.ID, now); err != nil {
				return nil, err
			}
			metrics.PhaseTransitionsTotal.WithLabelValues(string(domain.PhaseTwo)).Inc()
			zap.L().Info("challenge advanced to phase2", zap.Int("challengeID", ch.ID))
			return &notify.TransitionEvent{
				Type:        notify.EventPhaseAdvanced,
				ChallengeID: ch.ID,
				UserID:      ch.UserID,
				Phase:       domain.PhaseTwo,
				Status:      ch.Status,
				OccurredAt:  now,
			}, nil
		case domain.PhaseTwo:
			if err := s.challengeRepo.MarkFunded(ctx, ch.ID, now); err != nil {
				return nil, err
			}
			metrics.PhaseTransitionsTotal.WithLabelValues(string(domain.PhaseFunded)).Inc()
			zap.L().Info("challenge funded", zap.Int("challengeID", ch.ID))
			return &notify.TransitionEvent{
				Type:        notify.EventChallengeFunded,
				ChallengeID: ch.ID,
				UserID:      ch.UserID,
				Phase:       domain.PhaseFunded,
				Status:      domain.StatusFunded,
				OccurredAt:  now,
			}, nil
		}
		// Funded phase: nothing further to reach.
	}
	return nil, nil
}
