// Package metrics provides Prometheus instrumentation for the engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SettlementsTotal counts settled picks, partitioned by outcome.
	SettlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playfunded_settlements_total",
		Help: "Total picks settled",
	}, []string{"outcome"})

	// RiskBreachesTotal counts terminal risk breaches by kind.
	RiskBreachesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playfunded_risk_breaches_total",
		Help: "Challenges failed by risk breach",
	}, []string{"kind"})

	// PhaseTransitionsTotal counts phase advances by destination phase.
	PhaseTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playfunded_phase_transitions_total",
		Help: "Challenge phase transitions",
	}, []string{"to"})

	// PayoutsTotal counts payout records by kind (withdrawal, rollover).
	PayoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playfunded_payouts_total",
		Help: "Payout records created",
	}, []string{"kind"})

	// ConcurrencyRetries counts optimistic-lock conflicts that were retried.
	ConcurrencyRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "playfunded_ledger_conflict_retries_total",
		Help: "Ledger optimistic-lock conflicts retried",
	})

	// DailyResetRows records how many challenges the last reset touched.
	DailyResetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "playfunded_daily_reset_rows",
		Help: "Challenges re-baselined by the most recent daily reset",
	})

	// PicksPlacedTotal counts accepted pick placements.
	PicksPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "playfunded_picks_placed_total",
		Help: "Picks accepted at placement",
	})
)
