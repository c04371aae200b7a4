package challenges

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/dto"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service/challengeservice"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/auth"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/utils"
)

type Service interface {
	CreateFromPayment(ctx context.Context, userID, tierID int, providerRef string) (*domain.Challenge, bool, error)
	GetChallenge(ctx context.Context, userID, challengeID int) (*domain.Challenge, error)
	ListChallenges(ctx context.Context, userID int) ([]domain.Challenge, error)
}

type ChallengeHandler struct {
	challengeService Service
}

func New(challengeService Service) *ChallengeHandler {
	return &ChallengeHandler{
		challengeService: challengeService,
	}
}

func toResponse(ch *domain.Challenge) dto.ChallengeResponseDTO {
	return dto.ChallengeResponseDTO{
		ID:                ch.ID,
		Phase:             string(ch.Phase),
		Status:            string(ch.Status),
		Balance:           ch.Balance,
		StartBalance:      ch.StartBalance,
		PeakBalance:       ch.PeakBalance,
		DailyStartBalance: ch.DailyStartBalance,
		StartedAt:         ch.StartedAt,
		FundedAt:          ch.FundedAt,
	}
}

// PaymentWebhook godoc
//
//	@Summary		Create a challenge from a payment confirmation
//	@Description	Consumes provider payment/gift notifications. Idempotent on the provider transaction reference.
//	@Tags			Challenges
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentWebhookDTO	true	"Provider notification"
//	@Success		201		{object}	dto.ChallengeResponseDTO	"Challenge created"
//	@Success		200		{object}	dto.ChallengeResponseDTO	"Duplicate notification, existing challenge"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Bad webhook token"
//	@Failure		422		{object}	utils.Response				"Unknown tier"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/webhooks/payment [post]
func (h *ChallengeHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentWebhookDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ch, created, err := h.challengeService.CreateFromPayment(r.Context(), req.UserID, req.TierID, req.ProviderRef)
	if err != nil {
		if errors.Is(err, challengeservice.ErrTierNotFound) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.RespondWithJSON(w, status, toResponse(ch))
}

// GetChallenge godoc
//
//	@Summary		Get one challenge snapshot
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Challenge ID"
//	@Success		200	{object}	dto.ChallengeResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Challenge not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/challenges/{id} [get]
func (h *ChallengeHandler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	challengeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	ch, err := h.challengeService.GetChallenge(r.Context(), userID, challengeID)
	if err != nil {
		switch {
		case errors.Is(err, challengeservice.ErrChallengeNotFound),
			errors.Is(err, challengeservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusNotFound, "challenge not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(ch))
}

// ListChallenges godoc
//
//	@Summary		List the user's challenges
//	@Tags			Challenges
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ChallengeResponseDTO
//	@Success		204	{object}	utils.Response	"No challenges"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/challenges [get]
func (h *ChallengeHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	challenges, err := h.challengeService.ListChallenges(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(challenges) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No challenges")
		return
	}

	response := make([]dto.ChallengeResponseDTO, len(challenges))
	for i := range challenges {
		response[i] = toResponse(&challenges[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
