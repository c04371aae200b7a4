package payoutrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error) {
	query := `
        INSERT INTO payouts (challenge_id, amount, split_pct, method, status, is_rollover, requested_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		payout.ChallengeID, payout.Amount, payout.SplitPct, payout.Method,
		payout.Status, payout.IsRollover, payout.RequestedAt,
	).Scan(&payout.ID)
	if err != nil {
		zap.L().Error("failed to save payout", zap.Error(err))
		return nil, err
	}
	return payout, nil
}

// HasPendingWithdrawal reports whether a non-rollover payout is still
// pending for the challenge.
func (r *Repository) HasPendingWithdrawal(ctx context.Context, challengeID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM payouts
            WHERE challenge_id = $1 AND status = $2 AND NOT is_rollover
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, challengeID, domain.PayoutPending).Scan(&exists)
	if err != nil {
		zap.L().Error("failed to check pending payout", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) FindByChallengeID(ctx context.Context, challengeID int) ([]domain.Payout, error) {
	query := `
        SELECT id, challenge_id, amount, split_pct, method, status, is_rollover, requested_at
        FROM payouts
        WHERE challenge_id = $1
        ORDER BY requested_at DESC
    `
	rows, err := r.db.Query(ctx, query, challengeID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		err := rows.Scan(&p.ID, &p.ChallengeID, &p.Amount, &p.SplitPct,
			&p.Method, &p.Status, &p.IsRollover, &p.RequestedAt)
		if err != nil {
			zap.L().Error("failed to scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}

	return payouts, nil
}
