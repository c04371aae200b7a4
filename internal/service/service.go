package service

import (
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/eventlock"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/auth"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/challenges"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/payouts"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/picks"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/sched"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/notify"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/pg"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/repo"
	authservice "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service/authservice"
	challengeservice "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service/challengeservice"
	payoutservice "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service/payoutservice"
	pickservice "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service/pickservice"

	pkgauth "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/auth"
)

type Services struct {
	AuthService      auth.Service
	ChallengeService challenges.Service
	PickService      picks.Service
	PayoutService    payouts.Service
	SchedService     sched.Service

	jwtService pkgauth.JWTServiceInterface
}

func New(repo *repo.Repositories, txManager pg.TXManager, locker eventlock.Locker, notifier notify.Notifier, jwtSecret string) *Services {
	jwtService := pkgauth.NewJWTService(jwtSecret)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	challengeService := challengeservice.New(repo.ChallengeRepo, repo.TierRepo)
	pickService := pickservice.New(repo.ChallengeRepo, repo.PickRepo, locker)
	payoutService := payoutservice.New(repo.ChallengeRepo, repo.PayoutRepo, repo.TierRepo, repo.UserRepo, txManager, notifier)

	return &Services{
		AuthService:      authService,
		ChallengeService: challengeService,
		PickService:      pickService,
		PayoutService:    payoutService,
		SchedService:     challengeService,

		jwtService: jwtService,
	}
}

// JWT returns the token service used to guard authenticated routes.
func (s *Services) JWT() pkgauth.JWTServiceInterface {
	return s.jwtService
}
