package repo

import (
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/pg"
	challengerepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/challenge-repo"
	payoutrepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/payout-repo"
	pickrepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/pick-repo"
	tierrepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/tier-repo"
	userrepo "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo      *userrepo.Repository
	TierRepo      *tierrepo.Repository
	ChallengeRepo *challengerepo.Repository
	PickRepo      *pickrepo.Repository
	PayoutRepo    *payoutrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:      userrepo.New(conn),
		TierRepo:      tierrepo.New(conn),
		ChallengeRepo: challengerepo.New(conn, txManager),
		PickRepo:      pickrepo.New(conn, txManager),
		PayoutRepo:    payoutrepo.New(conn),
	}
}
