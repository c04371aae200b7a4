package dto

import "time"

type PlacePickRequestDTO struct {
	Sport      string  `json:"sport" validate:"required" example:"football"`
	League     string  `json:"league" validate:"required" example:"epl"`
	EventID    string  `json:"event_id" validate:"required" example:"ev_20260901_ars_che"`
	MarketType string  `json:"market_type" validate:"required" example:"moneyline"`
	Selection  string  `json:"selection" validate:"required" example:"home"`
	Odds       string  `json:"odds" validate:"required" example:"1.95"`
	Stake      int64   `json:"stake" validate:"required,gt=0" example:"150000"`
}

func (r *PlacePickRequestDTO) Validate() error {
	return validate.Struct(r)
}

type PickResponseDTO struct {
	ID              int        `json:"id" example:"91"`
	EventID         string     `json:"event_id" example:"ev_20260901_ars_che"`
	MarketType      string     `json:"market_type" example:"moneyline"`
	Selection       string     `json:"selection" example:"home"`
	Odds            string     `json:"odds" example:"1.95"`
	Stake           int64      `json:"stake" example:"150000"`
	PotentialPayout int64      `json:"potential_payout" example:"292500"`
	ActualPayout    int64      `json:"actual_payout" example:"0"`
	Status          string     `json:"status" example:"pending"`
	PlacedAt        time.Time  `json:"placed_at"`
	SettledAt       *time.Time `json:"settled_at,omitempty"`
}

type PlacePickResponseDTO struct {
	Pick    PickResponseDTO `json:"pick"`
	Balance int64           `json:"balance" example:"5000000"`
}
