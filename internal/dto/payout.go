package dto

import "time"

type PayoutRequestDTO struct {
	Method string `json:"method" validate:"required,oneof=bank_transfer crypto paypal" example:"bank_transfer"`
}

func (r *PayoutRequestDTO) Validate() error {
	return validate.Struct(r)
}

type PayoutResponseDTO struct {
	ID          int       `json:"id" example:"12"`
	Amount      int64     `json:"amount" example:"45000"`
	SplitPct    int       `json:"split_pct" example:"75"`
	Method      string    `json:"method" example:"bank_transfer"`
	Status      string    `json:"status" example:"pending"`
	IsRollover  bool      `json:"is_rollover" example:"false"`
	RequestedAt time.Time `json:"requested_at"`
}
