// Package risk translates ledger state into risk and target verdicts.
// Everything here is pure arithmetic over integer minor-currency units:
// no I/O, no clocks, deterministic.
package risk

import "github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"

// Limits and targets in basis points. Shared by all tiers; kept as
// package variables so business can tune them without a schema change.
const (
	MaxDrawdownBP  = 1500 // 15% decline from peak fails the challenge
	MaxDailyLossBP = 1000 // 10% decline from the daily baseline fails it
	Phase1TargetBP = 2000 // +20% over the phase 1 baseline
	Phase2TargetBP = 1000 // +10% over the phase 2 baseline

	MinStake   = 100 // one whole currency unit
	MaxStakeBP = 500 // 5% of the live balance
)

// Verdict is the outcome of one evaluation pass.
type Verdict int

const (
	NoChange Verdict = iota
	BreachDrawdown
	BreachDailyLoss
	TargetMet
)

func (v Verdict) String() string {
	switch v {
	case BreachDrawdown:
		return "breach_drawdown"
	case BreachDailyLoss:
		return "breach_daily_loss"
	case TargetMet:
		return "target_met"
	}
	return "no_change"
}

// State is the snapshot a verdict is computed from. SettledPicks counts
// won+lost+push picks since phase entry; void picks are excluded.
type State struct {
	Phase              domain.Phase
	Balance            int64
	PeakBalance        int64
	DailyStartBalance  int64
	Phase1StartBalance int64
	Phase2StartBalance int64
	SettledPicks       int
	MinPicks           int
}

// Evaluate applies the fixed check order: drawdown, then daily loss, then
// profit target. A breach short-circuits so a challenge can never fail and
// advance in the same pass.
func Evaluate(s State) Verdict {
	if breached(s.PeakBalance, s.Balance, MaxDrawdownBP) {
		return BreachDrawdown
	}
	if breached(s.DailyStartBalance, s.Balance, MaxDailyLossBP) {
		return BreachDailyLoss
	}

	var baseline, targetBP int64
	switch s.Phase {
	case domain.PhaseOne:
		baseline, targetBP = s.Phase1StartBalance, Phase1TargetBP
	case domain.PhaseTwo:
		baseline, targetBP = s.Phase2StartBalance, Phase2TargetBP
	default:
		// Funded challenges have no further target.
		return NoChange
	}

	if baseline > 0 &&
		s.Balance*10000 >= baseline*(10000+targetBP) &&
		s.SettledPicks >= s.MinPicks {
		return TargetMet
	}
	return NoChange
}

// breached reports whether the decline from reference to balance strictly
// exceeds limitBP. A zero reference never breaches.
func breached(reference, balance, limitBP int64) bool {
	if reference <= 0 {
		return false
	}
	return (reference-balance)*10000 > reference*limitBP
}

// MaxStakeFor is the upper stake bound at placement time: 5% of the live
// balance, floored to minor units.
func MaxStakeFor(balance int64) int64 {
	return balance * MaxStakeBP / 10000
}
