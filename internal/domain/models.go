package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Phase is the ordered evaluation stage of a challenge.
type Phase string

const (
	PhaseOne    Phase = "phase1"
	PhaseTwo    Phase = "phase2"
	PhaseFunded Phase = "funded"
)

// ChallengeStatus is the lifecycle status of a challenge. Failed and
// passed are terminal: no further picks or balance mutation is accepted.
type ChallengeStatus string

const (
	StatusActive ChallengeStatus = "active"
	StatusFunded ChallengeStatus = "funded"
	StatusFailed ChallengeStatus = "failed"
	StatusPassed ChallengeStatus = "passed"
)

// PickStatus transitions pending -> {won|lost|push|void} exactly once.
type PickStatus string

const (
	PickPending PickStatus = "pending"
	PickWon     PickStatus = "won"
	PickLost    PickStatus = "lost"
	PickPush    PickStatus = "push"
	PickVoid    PickStatus = "void"
)

// PayoutStatus is the lifecycle of a payout request. The review step that
// moves processing -> paid/failed lives outside this service.
type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutPaid       PayoutStatus = "paid"
	PayoutFailed     PayoutStatus = "failed"
)

var (
	ErrUnknownPhase      = errors.New("unknown phase")
	ErrUnknownStatus     = errors.New("unknown status")
	ErrIllegalStateCombo = errors.New("illegal phase/status combination")
)

// ParsePhase validates a raw phase value read from storage or input.
func ParsePhase(s string) (Phase, error) {
	switch Phase(s) {
	case PhaseOne, PhaseTwo, PhaseFunded:
		return Phase(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPhase, s)
}

// ParseChallengeStatus validates a raw status value.
func ParseChallengeStatus(s string) (ChallengeStatus, error) {
	switch ChallengeStatus(s) {
	case StatusActive, StatusFunded, StatusFailed, StatusPassed:
		return ChallengeStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Terminal reports whether the status forbids any further mutation.
func (s ChallengeStatus) Terminal() bool {
	return s == StatusFailed || s == StatusPassed
}

// ValidateStatePair rejects combinations the state machine can never
// produce, e.g. a funded phase with an active status.
func ValidateStatePair(phase Phase, status ChallengeStatus) error {
	switch {
	case phase == PhaseFunded && status == StatusActive:
		return ErrIllegalStateCombo
	case phase != PhaseFunded && status == StatusFunded:
		return ErrIllegalStateCombo
	}
	return nil
}

// Challenge is one user's attempt to pass the funded-trading evaluation.
// All monetary fields are integer minor-currency units. Version backs the
// optimistic concurrency guard on ledger mutations.
type Challenge struct {
	ID                 int             `db:"id"`
	UserID             int             `db:"user_id"`
	TierID             int             `db:"tier_id"`
	ProviderRef        string          `db:"provider_ref"`
	Phase              Phase           `db:"phase"`
	Status             ChallengeStatus `db:"status"`
	Balance            int64           `db:"balance"`
	StartBalance       int64           `db:"start_balance"`
	PeakBalance        int64           `db:"peak_balance"`
	DailyStartBalance  int64           `db:"daily_start_balance"`
	Phase1StartBalance int64           `db:"phase1_start_balance"`
	Phase2StartBalance int64           `db:"phase2_start_balance"`
	Version            int64           `db:"version"`
	StartedAt          time.Time       `db:"started_at"`
	PhaseStartedAt     time.Time       `db:"phase_started_at"`
	FundedAt           *time.Time      `db:"funded_at"`
}

// Pick is one wagering decision against a challenge.
type Pick struct {
	ID              int             `db:"id"`
	ChallengeID     int             `db:"challenge_id"`
	Sport           string          `db:"sport"`
	League          string          `db:"league"`
	EventID         string          `db:"event_id"`
	MarketType      string          `db:"market_type"`
	Selection       string          `db:"selection"`
	Odds            decimal.Decimal `db:"odds"`
	Stake           int64           `db:"stake"`
	PotentialPayout int64           `db:"potential_payout"`
	ActualPayout    int64           `db:"actual_payout"`
	Status          PickStatus      `db:"status"`
	PlacedAt        time.Time       `db:"placed_at"`
	SettledAt       *time.Time      `db:"settled_at"`
}

// MarketKey identifies the exposure unit guarded by the event lock.
func (p *Pick) MarketKey() string {
	return fmt.Sprintf("%s:%s:%s", p.EventID, p.MarketType, p.Selection)
}

// Tier is the immutable product definition a challenge is bought against.
// Risk limits and phase targets are global constants shared by all tiers.
type Tier struct {
	ID             int    `db:"id"`
	Name           string `db:"name"`
	Fee            int64  `db:"fee"`
	FundedBankroll int64  `db:"funded_bankroll"`
	ProfitSplitPct int    `db:"profit_split_pct"`
	MinPicks       int    `db:"min_picks"`
}

// Payout is a requested or completed withdrawal against a funded challenge.
type Payout struct {
	ID          int          `db:"id"`
	ChallengeID int          `db:"challenge_id"`
	Amount      int64        `db:"amount"`
	SplitPct    int          `db:"split_pct"`
	Method      string       `db:"method"`
	Status      PayoutStatus `db:"status"`
	IsRollover  bool         `db:"is_rollover"`
	RequestedAt time.Time    `db:"requested_at"`
}

// User owns challenges. KYCApproved is flipped by the external identity
// verification workflow and gates payout requests.
type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	KYCApproved  bool      `db:"kyc_approved"`
	CreatedAt    time.Time `db:"created_at"`
}
