package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/docs"
	authhandlers "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/auth"
	challengehandlers "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/challenges"
	payouthandlers "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/payouts"
	pickhandlers "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/picks"
	schedhandlers "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/handlers/sched"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:      authhandlers.NewMockService(ctrl),
		ChallengeService: challengehandlers.NewMockService(ctrl),
		PickService:      pickhandlers.NewMockService(ctrl),
		PayoutService:    payouthandlers.NewMockService(ctrl),
		SchedService:     schedhandlers.NewMockService(ctrl),
	}

	h := New(services, "webhook-secret", "sched-secret")
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockChallengeHandler := NewMockChallengeHandler(ctrl)
	mockPickHandler := NewMockPickHandler(ctrl)
	mockPayoutHandler := NewMockPayoutHandler(ctrl)
	mockSchedHandler := NewMockSchedHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockChallengeHandler.EXPECT().PaymentWebhook(gomock.Any(), gomock.Any()).AnyTimes()
	mockChallengeHandler.EXPECT().GetChallenge(gomock.Any(), gomock.Any()).AnyTimes()
	mockChallengeHandler.EXPECT().ListChallenges(gomock.Any(), gomock.Any()).AnyTimes()
	mockPickHandler.EXPECT().PlacePick(gomock.Any(), gomock.Any()).AnyTimes()
	mockPickHandler.EXPECT().ListPicks(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().ListPayouts(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().Rollover(gomock.Any(), gomock.Any()).AnyTimes()
	mockSchedHandler.EXPECT().DailyReset(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:      mockAuthHandler,
		ChallengeHandler: mockChallengeHandler,
		PickHandler:      mockPickHandler,
		PayoutHandler:    mockPayoutHandler,
		SchedHandler:     mockSchedHandler,
		webhookToken:     "webhook-secret",
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		header map[string]string
		status int
	}{
		{"POST", "/api/user/register", nil, http.StatusOK},
		{"POST", "/api/user/login", nil, http.StatusOK},
		{"POST", "/api/webhooks/payment", map[string]string{"X-Webhook-Token": "webhook-secret"}, http.StatusOK},
		{"POST", "/api/webhooks/payment", nil, http.StatusUnauthorized},
		{"POST", "/api/system/daily-reset", nil, http.StatusOK},
		{"GET", "/api/user/challenges", nil, http.StatusUnauthorized},
		{"GET", "/api/user/challenges/7", nil, http.StatusUnauthorized},
		{"POST", "/api/user/challenges/7/picks", nil, http.StatusUnauthorized},
		{"GET", "/api/user/challenges/7/picks", nil, http.StatusUnauthorized},
		{"POST", "/api/user/challenges/7/payouts", nil, http.StatusUnauthorized},
		{"GET", "/api/user/challenges/7/payouts", nil, http.StatusUnauthorized},
		{"POST", "/api/user/challenges/7/rollover", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
