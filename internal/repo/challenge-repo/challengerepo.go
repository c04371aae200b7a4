// Package challengerepo is the balance ledger: the single writer for a
// challenge's monetary fields. Mutations are optimistic, guarded by the
// row version; a conflicting writer surfaces as ErrConcurrencyConflict
// and the caller retries against a fresh read.
package challengerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/pg"
)

var (
	ErrConcurrencyConflict = errors.New("challenge row modified concurrently")
	ErrInsufficientFunds   = errors.New("delta would take balance below zero")
)

const challengeColumns = `id, user_id, tier_id, provider_ref, phase, status,
        balance, start_balance, peak_balance, daily_start_balance,
        phase1_start_balance, phase2_start_balance, version,
        started_at, phase_started_at, funded_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanChallenge(row pgx.Row) (*domain.Challenge, error) {
	var ch domain.Challenge
	err := row.Scan(
		&ch.ID, &ch.UserID, &ch.TierID, &ch.ProviderRef, &ch.Phase, &ch.Status,
		&ch.Balance, &ch.StartBalance, &ch.PeakBalance, &ch.DailyStartBalance,
		&ch.Phase1StartBalance, &ch.Phase2StartBalance, &ch.Version,
		&ch.StartedAt, &ch.PhaseStartedAt, &ch.FundedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// CreateIdempotent inserts a challenge keyed by the provider transaction
// reference. A duplicate notification returns the existing row with
// created=false instead of creating a second challenge.
func (r *Repository) CreateIdempotent(ctx context.Context, ch *domain.Challenge) (*domain.Challenge, bool, error) {
	insert := `
        INSERT INTO challenges
            (user_id, tier_id, provider_ref, phase, status,
             balance, start_balance, peak_balance, daily_start_balance,
             phase1_start_balance, started_at, phase_started_at)
        VALUES ($1, $2, $3, $4, $5, $6, $6, $6, $6, $6, $7, $7)
        ON CONFLICT (provider_ref) DO NOTHING
        RETURNING ` + challengeColumns

	row := r.db.QueryRow(ctx, insert,
		ch.UserID, ch.TierID, ch.ProviderRef, ch.Phase, ch.Status,
		ch.Balance, ch.StartedAt)
	created, err := scanChallenge(row)
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to create challenge", zap.Error(err))
		return nil, false, err
	}

	existing, err := r.FindByProviderRef(ctx, ch.ProviderRef)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`
	ch, err := scanChallenge(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get challenge", zap.Error(err))
		return nil, err
	}
	return ch, nil
}

func (r *Repository) FindByProviderRef(ctx context.Context, ref string) (*domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE provider_ref = $1`
	ch, err := scanChallenge(r.db.QueryRow(ctx, query, ref))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to find challenge by provider ref", zap.Error(err))
		return nil, err
	}
	return ch, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Challenge, error) {
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE user_id = $1 ORDER BY started_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to list challenges", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var challenges []domain.Challenge
	for rows.Next() {
		ch, err := scanChallenge(rows)
		if err != nil {
			zap.L().Error("failed to scan challenge row", zap.Error(err))
			return nil, err
		}
		challenges = append(challenges, *ch)
	}
	return challenges, nil
}

// ApplyDelta atomically applies a signed delta to the balance and bumps
// the peak in the same statement. The version read here guards the write:
// a concurrent mutation between read and write yields
// ErrConcurrencyConflict and no change.
func (r *Repository) ApplyDelta(ctx context.Context, challengeID int, delta int64) (*domain.Challenge, error) {
	ch, err := r.GetByID(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, pgx.ErrNoRows
	}

	newBalance := ch.Balance + delta
	if newBalance < 0 {
		return nil, ErrInsufficientFunds
	}
	newPeak := ch.PeakBalance
	if newBalance > newPeak {
		newPeak = newBalance
	}

	update := `
        UPDATE challenges
        SET balance = $1, peak_balance = $2, version = version + 1
        WHERE id = $3 AND version = $4
        RETURNING ` + challengeColumns

	updated, err := scanChallenge(r.db.QueryRow(ctx, update, newBalance, newPeak, challengeID, ch.Version))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrConcurrencyConflict
	}
	if err != nil {
		zap.L().Error("failed to apply balance delta", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// AdvanceToPhase2 captures the phase 2 baseline at the current balance.
func (r *Repository) AdvanceToPhase2(ctx context.Context, challengeID int, now time.Time) error {
	query := `
        UPDATE challenges
        SET phase = $1, phase2_start_balance = balance,
            phase_started_at = $2, version = version + 1
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, domain.PhaseTwo, now, challengeID)
	if err != nil {
		zap.L().Error("failed to advance challenge to phase2", zap.Error(err))
	}
	return err
}

// MarkFunded moves the challenge to the funded phase and status.
func (r *Repository) MarkFunded(ctx context.Context, challengeID int, now time.Time) error {
	query := `
        UPDATE challenges
        SET phase = $1, status = $2, phase_started_at = $3, funded_at = $3,
            version = version + 1
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, domain.PhaseFunded, domain.StatusFunded, now, challengeID)
	if err != nil {
		zap.L().Error("failed to mark challenge funded", zap.Error(err))
	}
	return err
}

// MarkFailed sets the terminal failed status.
func (r *Repository) MarkFailed(ctx context.Context, challengeID int) error {
	query := `
        UPDATE challenges
        SET status = $1, version = version + 1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, domain.StatusFailed, challengeID)
	if err != nil {
		zap.L().Error("failed to mark challenge failed", zap.Error(err))
	}
	return err
}

// RebaseStartBalance moves the profit baseline to the live balance in a
// single self-referential statement, so a concurrent settlement cannot
// slip between read and write. Used only by rollover.
func (r *Repository) RebaseStartBalance(ctx context.Context, challengeID int) error {
	query := `
        UPDATE challenges
        SET start_balance = balance, version = version + 1
        WHERE id = $1
    `
	_, err := r.db.Exec(ctx, query, challengeID)
	if err != nil {
		zap.L().Error("failed to rebase start balance", zap.Error(err))
	}
	return err
}

// ResetDailyBaselines re-baselines the daily-loss reference for every
// active challenge. Bulk and idempotent; returns rows touched.
func (r *Repository) ResetDailyBaselines(ctx context.Context) (int64, error) {
	query := `
        UPDATE challenges
        SET daily_start_balance = balance
        WHERE status = $1
    `
	tag, err := r.db.Exec(ctx, query, domain.StatusActive)
	if err != nil {
		zap.L().Error("failed to reset daily baselines", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
