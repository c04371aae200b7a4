package pickrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/pg"
)

const pickColumns = `id, challenge_id, sport, league, event_id, market_type,
        selection, odds, stake, potential_payout, actual_payout, status,
        placed_at, settled_at`

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

func scanPick(row pgx.Row) (*domain.Pick, error) {
	var p domain.Pick
	err := row.Scan(
		&p.ID, &p.ChallengeID, &p.Sport, &p.League, &p.EventID, &p.MarketType,
		&p.Selection, &p.Odds, &p.Stake, &p.PotentialPayout, &p.ActualPayout,
		&p.Status, &p.PlacedAt, &p.SettledAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Save(ctx context.Context, pick *domain.Pick) error {
	query := `
        INSERT INTO picks
            (challenge_id, sport, league, event_id, market_type, selection,
             odds, stake, potential_payout, status, placed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		pick.ChallengeID, pick.Sport, pick.League, pick.EventID,
		pick.MarketType, pick.Selection, pick.Odds, pick.Stake,
		pick.PotentialPayout, pick.Status, pick.PlacedAt,
	).Scan(&pick.ID)
	if err != nil {
		zap.L().Error("failed to save pick", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByChallengeID(ctx context.Context, challengeID int) ([]domain.Pick, error) {
	query := `SELECT ` + pickColumns + ` FROM picks WHERE challenge_id = $1 ORDER BY placed_at DESC`
	rows, err := r.db.Query(ctx, query, challengeID)
	if err != nil {
		zap.L().Error("failed to list picks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var picks []domain.Pick
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			zap.L().Error("failed to scan pick row", zap.Error(err))
			return nil, err
		}
		picks = append(picks, *p)
	}
	return picks, nil
}

// FindPending returns picks awaiting settlement, oldest first, so a
// challenge's picks are applied in placement order.
func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.Pick, error) {
	query := `
        SELECT ` + pickColumns + `
        FROM picks
        WHERE status = $1
        ORDER BY placed_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, domain.PickPending, int(limit))
	if err != nil {
		zap.L().Error("failed to fetch pending picks", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var picks []domain.Pick
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			zap.L().Error("failed to scan pending pick row", zap.Error(err))
			return nil, err
		}
		picks = append(picks, *p)
	}
	return picks, nil
}

// Settle writes the terminal status and payout exactly once. The status
// guard makes re-settlement a no-op: settled=false means the pick had
// already left pending.
func (r *Repository) Settle(ctx context.Context, pickID int, status domain.PickStatus, actualPayout int64, settledAt time.Time) (bool, error) {
	query := `
        UPDATE picks
        SET status = $1, actual_payout = $2, settled_at = $3
        WHERE id = $4 AND status = $5
    `
	tag, err := r.db.Exec(ctx, query, status, actualPayout, settledAt, pickID, domain.PickPending)
	if err != nil {
		zap.L().Error("failed to settle pick", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CountSettledSince counts picks that resolved to won, lost or push after
// the given instant. Void picks do not count toward the minimum.
func (r *Repository) CountSettledSince(ctx context.Context, challengeID int, since time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM picks
        WHERE challenge_id = $1
          AND settled_at >= $2
          AND status IN ($3, $4, $5)
    `
	var count int
	err := r.db.QueryRow(ctx, query, challengeID, since,
		domain.PickWon, domain.PickLost, domain.PickPush).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		zap.L().Error("failed to count settled picks", zap.Error(err))
		return 0, err
	}
	return count, nil
}
