package tierrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Tier, error) {
	query := `
        SELECT id, name, fee, funded_bankroll, profit_split_pct, min_picks
        FROM tiers
        WHERE id = $1
    `
	var tier domain.Tier
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tier.ID, &tier.Name, &tier.Fee, &tier.FundedBankroll,
		&tier.ProfitSplitPct, &tier.MinPicks)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get tier", zap.Error(err))
		return nil, err
	}
	return &tier, nil
}
