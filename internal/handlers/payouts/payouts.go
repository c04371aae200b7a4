package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/dto"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service/payoutservice"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/auth"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/utils"
)

type Service interface {
	RequestPayout(ctx context.Context, userID, challengeID int, method string) (*domain.Payout, error)
	Rollover(ctx context.Context, userID, challengeID int) (*domain.Payout, error)
	ListPayouts(ctx context.Context, userID, challengeID int) ([]domain.Payout, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

func toResponse(p *domain.Payout) dto.PayoutResponseDTO {
	return dto.PayoutResponseDTO{
		ID:          p.ID,
		Amount:      p.Amount,
		SplitPct:    p.SplitPct,
		Method:      p.Method,
		Status:      string(p.Status),
		IsRollover:  p.IsRollover,
		RequestedAt: p.RequestedAt,
	}
}

func respondPayoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payoutservice.ErrChallengeNotFound),
		errors.Is(err, payoutservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusNotFound, "challenge not found")
	case errors.Is(err, payoutservice.ErrChallengeNotFunded),
		errors.Is(err, payoutservice.ErrKYCNotApproved),
		errors.Is(err, payoutservice.ErrProfitZero):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, payoutservice.ErrPendingPayoutExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// RequestPayout godoc
//
//	@Summary		Request a profit payout from a funded challenge
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Challenge ID"
//	@Param			request	body		dto.PayoutRequestDTO	true	"Payout method"
//	@Success		201		{object}	dto.PayoutResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Challenge not found"
//	@Failure		409		{object}	utils.Response	"Pending payout exists"
//	@Failure		422		{object}	utils.Response	"Not funded, not verified, or no profit"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/challenges/{id}/payouts [post]
func (h *PayoutHandler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	challengeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	var req dto.PayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	payout, err := h.payoutService.RequestPayout(r.Context(), userID, challengeID, req.Method)
	if err != nil {
		respondPayoutError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(payout))
}

// Rollover godoc
//
//	@Summary		Roll profit into a new baseline instead of withdrawing
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Challenge ID"
//	@Success		200	{object}	dto.PayoutResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Challenge not found"
//	@Failure		422	{object}	utils.Response	"Not funded, not verified, or no profit"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/challenges/{id}/rollover [post]
func (h *PayoutHandler) Rollover(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	challengeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	payout, err := h.payoutService.Rollover(r.Context(), userID, challengeID)
	if err != nil {
		respondPayoutError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(payout))
}

// ListPayouts godoc
//
//	@Summary		List a challenge's payouts
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Challenge ID"
//	@Success		200	{array}		dto.PayoutResponseDTO
//	@Success		204	{object}	utils.Response	"No payouts"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Challenge not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/challenges/{id}/payouts [get]
func (h *PayoutHandler) ListPayouts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	challengeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	payoutList, err := h.payoutService.ListPayouts(r.Context(), userID, challengeID)
	if err != nil {
		respondPayoutError(w, err)
		return
	}
	if len(payoutList) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No payouts")
		return
	}

	response := make([]dto.PayoutResponseDTO, len(payoutList))
	for i := range payoutList {
		response[i] = toResponse(&payoutList[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
