package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/docs"
	authhandlers "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/auth"
	challengehandlers "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/challenges"
	payouthandlers "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/payouts"
	pickhandlers "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/picks"
	schedhandlers "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/sched"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/auth"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/utils"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ChallengeHandler interface {
	PaymentWebhook(w http.ResponseWriter, r *http.Request)
	GetChallenge(w http.ResponseWriter, r *http.Request)
	ListChallenges(w http.ResponseWriter, r *http.Request)
}

type PickHandler interface {
	PlacePick(w http.ResponseWriter, r *http.Request)
	ListPicks(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	RequestPayout(w http.ResponseWriter, r *http.Request)
	Rollover(w http.ResponseWriter, r *http.Request)
	ListPayouts(w http.ResponseWriter, r *http.Request)
}

type SchedHandler interface {
	DailyReset(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	ChallengeHandler ChallengeHandler
	PickHandler      PickHandler
	PayoutHandler    PayoutHandler
	SchedHandler     SchedHandler

	jwtService   auth.JWTServiceInterface
	webhookToken string
}

func New(s *service.Services, webhookToken, schedulerToken string) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		ChallengeHandler: challengehandlers.New(s.ChallengeService),
		PickHandler:      pickhandlers.New(s.PickService),
		PayoutHandler:    payouthandlers.New(s.PayoutService),
		SchedHandler:     schedhandlers.New(s.SchedService, schedulerToken),

		jwtService:   s.JWT(),
		webhookToken: webhookToken,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.webhookAuth)
			r.Post("/webhooks/payment", h.ChallengeHandler.PaymentWebhook)
		})
		r.Post("/system/daily-reset", h.SchedHandler.DailyReset)

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware(h.jwtService))
				r.Route("/challenges", func(r chi.Router) {
					r.Get("/", h.ChallengeHandler.ListChallenges)
					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.ChallengeHandler.GetChallenge)
						r.Post("/picks", h.PickHandler.PlacePick)
						r.Get("/picks", h.PickHandler.ListPicks)
						r.Post("/payouts", h.PayoutHandler.RequestPayout)
						r.Get("/payouts", h.PayoutHandler.ListPayouts)
						r.Post("/rollover", h.PayoutHandler.Rollover)
					})
				})
			})
		})
	})

	return r
}

// webhookAuth gates payment-provider callbacks with a shared header token.
func (h *Handlers) webhookAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.webhookToken == "" || r.Header.Get("X-Webhook-Token") != h.webhookToken {
			utils.RespondWithError(w, http.StatusUnauthorized, "invalid webhook token")
			return
		}
		next.ServeHTTP(w, r)
	})
}
