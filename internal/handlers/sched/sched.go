package sched

import (
	"context"
	"net/http"
	"time"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/dto"
	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/pkg/utils"
)

type Service interface {
	DailyReset(ctx context.Context) (int64, error)
}

// SchedHandler exposes scheduled maintenance jobs over HTTP so an external
// cron can drive them when the in-process scheduler is disabled.
type SchedHandler struct {
	challengeService Service
	token            string
}

func New(challengeService Service, token string) *SchedHandler {
	return &SchedHandler{
		challengeService: challengeService,
		token:            token,
	}
}

// DailyReset godoc
//
//	@Summary		Rebase daily loss baselines for all active challenges
//	@Tags			System
//	@Produce		json
//	@Param			X-Scheduler-Token	header		string	true	"Scheduler token"
//	@Success		200					{object}	dto.DailyResetResponseDTO
//	@Failure		401					{object}	utils.Response	"Invalid scheduler token"
//	@Failure		500					{object}	utils.Response	"Internal server error"
//	@Router			/api/system/daily-reset [post]
func (h *SchedHandler) DailyReset(w http.ResponseWriter, r *http.Request) {
	if h.token == "" || r.Header.Get("X-Scheduler-Token") != h.token {
		utils.RespondWithError(w, http.StatusUnauthorized, "invalid scheduler token")
		return
	}

	rows, err := h.challengeService.DailyReset(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DailyResetResponseDTO{
		RowsUpdated: rows,
		ResetAt:     time.Now().UTC(),
	})
}
