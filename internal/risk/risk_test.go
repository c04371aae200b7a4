package risk

import (
	"testing"

	"github.com/sizurieta2024-afk/PLAYFUNDED-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_Drawdown(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		verdict Verdict
	}{
		{
			name: "Exactly at 85% of peak does not breach",
			state: State{
				Phase:             domain.PhaseOne,
				Balance:           85000,
				PeakBalance:       100000,
				DailyStartBalance: 85000,
			},
			verdict: NoChange,
		},
		{
			name: "One minor unit below the limit breaches",
			state: State{
				Phase:             domain.PhaseOne,
				Balance:           84999,
				PeakBalance:       100000,
				DailyStartBalance: 84999,
			},
			verdict: BreachDrawdown,
		},
		{
			name: "Zero peak never breaches",
			state: State{
				Phase:       domain.PhaseOne,
				Balance:     0,
				PeakBalance: 0,
			},
			verdict: NoChange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.verdict, Evaluate(tt.state))
		})
	}
}

func TestEvaluate_DailyLoss(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		verdict Verdict
	}{
		{
			name: "11 percent daily loss breaches",
			state: State{
				Phase:             domain.PhaseOne,
				Balance:           89000,
				PeakBalance:       100000,
				DailyStartBalance: 100000,
			},
			verdict: BreachDailyLoss,
		},
		{
			name: "Exactly 10 percent does not breach",
			state: State{
				Phase:             domain.PhaseOne,
				Balance:           90000,
				PeakBalance:       100000,
				DailyStartBalance: 100000,
			},
			verdict: NoChange,
		},
		{
			name: "Drawdown checked before daily loss",
			state: State{
				Phase:             domain.PhaseOne,
				Balance:           80000,
				PeakBalance:       100000,
				DailyStartBalance: 100000,
			},
			verdict: BreachDrawdown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.verdict, Evaluate(tt.state))
		})
	}
}

func TestEvaluate_ProfitTarget(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		verdict Verdict
	}{
		{
			name: "Phase1 target met with enough settled picks",
			state: State{
				Phase:              domain.PhaseOne,
				Balance:            60000,
				PeakBalance:        60000,
				DailyStartBalance:  55000,
				Phase1StartBalance: 50000,
				SettledPicks:       15,
				MinPicks:           15,
			},
			verdict: TargetMet,
		},
		{
			name: "Phase1 target balance reached but too few picks",
			state: State{
				Phase:              domain.PhaseOne,
				Balance:            60000,
				PeakBalance:        60000,
				DailyStartBalance:  55000,
				Phase1StartBalance: 50000,
				SettledPicks:       14,
				MinPicks:           15,
			},
			verdict: NoChange,
		},
		{
			name: "Phase2 target is 10 percent",
			state: State{
				Phase:              domain.PhaseTwo,
				Balance:            66000,
				PeakBalance:        66000,
				DailyStartBalance:  60000,
				Phase2StartBalance: 60000,
				SettledPicks:       15,
				MinPicks:           15,
			},
			verdict: TargetMet,
		},
		{
			name: "One unit short of the phase2 target",
			state: State{
				Phase:              domain.PhaseTwo,
				Balance:            65999,
				PeakBalance:        66000,
				DailyStartBalance:  60000,
				Phase2StartBalance: 60000,
				SettledPicks:       15,
				MinPicks:           15,
			},
			verdict: NoChange,
		},
		{
			name: "Funded phase has no target",
			state: State{
				Phase:             domain.PhaseFunded,
				Balance:           1000000,
				PeakBalance:       1000000,
				DailyStartBalance: 500000,
				SettledPicks:      100,
				MinPicks:          15,
			},
			verdict: NoChange,
		},
		{
			name: "Breach wins over target in the same pass",
			state: State{
				Phase:              domain.PhaseOne,
				Balance:            60000,
				PeakBalance:        80000,
				DailyStartBalance:  60000,
				Phase1StartBalance: 50000,
				SettledPicks:       20,
				MinPicks:           15,
			},
			verdict: BreachDrawdown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.verdict, Evaluate(tt.state))
		})
	}
}

func TestMaxStakeFor(t *testing.T) {
	assert.Equal(t, int64(2500), MaxStakeFor(50000))
	assert.Equal(t, int64(4), MaxStakeFor(99))
	assert.Equal(t, int64(0), MaxStakeFor(0))
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "no_change", NoChange.String())
	assert.Equal(t, "breach_drawdown", BreachDrawdown.String())
	assert.Equal(t, "breach_daily_loss", BreachDailyLoss.String())
	assert.Equal(t, "target_met", TargetMet.String())
}
