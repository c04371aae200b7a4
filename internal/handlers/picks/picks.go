package picks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/dto"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/service/pickservice"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/auth"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/utils"
)

type Service interface {
	PlacePick(ctx context.Context, userID, challengeID int, params pickservice.PlaceParams) (*domain.Pick, int64, error)
	ListPicks(ctx context.Context, userID, challengeID int) ([]domain.Pick, error)
}

type PickHandler struct {
	pickService Service
}

func New(pickService Service) *PickHandler {
	return &PickHandler{
		pickService: pickService,
	}
}

func toResponse(p *domain.Pick) dto.PickResponseDTO {
	return dto.PickResponseDTO{
		ID:              p.ID,
		EventID:         p.EventID,
		MarketType:      p.MarketType,
		Selection:       p.Selection,
		Odds:            p.Odds.String(),
		Stake:           p.Stake,
		PotentialPayout: p.PotentialPayout,
		ActualPayout:    p.ActualPayout,
		Status:          string(p.Status),
		PlacedAt:        p.PlacedAt,
		SettledAt:       p.SettledAt,
	}
}

// PlacePick godoc
//
//	@Summary		Place a pick against an active challenge
//	@Tags			Picks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Challenge ID"
//	@Param			request	body		dto.PlacePickRequestDTO	true	"Pick to place"
//	@Success		201		{object}	dto.PlacePickResponseDTO	"Created pick and current balance"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Challenge not found"
//	@Failure		409		{object}	utils.Response				"Event is locked"
//	@Failure		422		{object}	utils.Response				"Stake out of range or challenge not active"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/challenges/{id}/picks [post]
func (h *PickHandler) PlacePick(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	challengeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	var req dto.PlacePickRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	odds, err := decimal.NewFromString(req.Odds)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid odds")
		return
	}

	pick, balance, err := h.pickService.PlacePick(r.Context(), userID, challengeID, pickservice.PlaceParams{
		Sport:      req.Sport,
		League:     req.League,
		EventID:    req.EventID,
		MarketType: req.MarketType,
		Selection:  req.Selection,
		Odds:       odds,
		Stake:      req.Stake,
	})
	if err != nil {
		switch {
		case errors.Is(err, pickservice.ErrChallengeNotFound),
			errors.Is(err, pickservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusNotFound, "challenge not found")
		case errors.Is(err, pickservice.ErrEventLocked):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, pickservice.ErrChallengeNotActive),
			errors.Is(err, pickservice.ErrStakeOutOfRange),
			errors.Is(err, pickservice.ErrInvalidOdds):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, dto.PlacePickResponseDTO{
		Pick:    toResponse(pick),
		Balance: balance,
	})
}

// ListPicks godoc
//
//	@Summary		List a challenge's picks
//	@Tags			Picks
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Challenge ID"
//	@Success		200	{array}		dto.PickResponseDTO
//	@Success		204	{object}	utils.Response	"No picks"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Challenge not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/challenges/{id}/picks [get]
func (h *PickHandler) ListPicks(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	challengeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid challenge id")
		return
	}

	pickList, err := h.pickService.ListPicks(r.Context(), userID, challengeID)
	if err != nil {
		switch {
		case errors.Is(err, pickservice.ErrChallengeNotFound),
			errors.Is(err, pickservice.ErrNotOwner):
			utils.RespondWithError(w, http.StatusNotFound, "challenge not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	if len(pickList) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No picks")
		return
	}

	response := make([]dto.PickResponseDTO, len(pickList))
	for i := range pickList {
		response[i] = toResponse(&pickList[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
