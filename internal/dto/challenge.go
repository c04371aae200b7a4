package dto

import "time"

type PaymentWebhookDTO struct {
	ProviderRef string `json:"provider_ref" validate:"required" example:"stripe_tx_8a71"`
	UserID      int    `json:"user_id" validate:"required,gt=0" example:"42"`
	TierID      int    `json:"tier_id" validate:"required,gt=0" example:"2"`
}

func (r *PaymentWebhookDTO) Validate() error {
	return validate.Struct(r)
}

type ChallengeResponseDTO struct {
	ID                int        `json:"id" example:"7"`
	Phase             string     `json:"phase" example:"phase1"`
	Status            string     `json:"status" example:"active"`
	Balance           int64      `json:"balance" example:"5000000"`
	StartBalance      int64      `json:"start_balance" example:"5000000"`
	PeakBalance       int64      `json:"peak_balance" example:"5200000"`
	DailyStartBalance int64      `json:"daily_start_balance" example:"5100000"`
	StartedAt         time.Time  `json:"started_at"`
	FundedAt          *time.Time `json:"funded_at,omitempty"`
}

type DailyResetResponseDTO struct {
	RowsUpdated int64     `json:"rows_updated" example:"381"`
	ResetAt     time.Time `json:"reset_at"`
}
