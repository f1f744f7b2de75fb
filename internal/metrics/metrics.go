package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerUnitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_units_total",
			Help: "Ledger units by outcome: committed, insufficient_funds, not_found, invalid, transient",
		},
		[]string{"outcome"},
	)
	betsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bets_total",
			Help: "Settled bets by game and result (win or loss)",
		},
		[]string{"game", "result"},
	)
	stakedUnitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bet_staked_units_total",
			Help: "Sum of settled stakes by game",
		},
		[]string{"game"},
	)
	paidUnitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bet_paid_units_total",
			Help: "Sum of payouts by game",
		},
		[]string{"game"},
	)
	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "balance_cache_lookups_total",
			Help: "Balance cache lookups by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)

// ObserveLedgerUnit records the outcome of one ledger unit.
func ObserveLedgerUnit(outcome string) {
	ledgerUnitsTotal.WithLabelValues(outcome).Inc()
}

// ObserveBet records one settled bet.
func ObserveBet(game string, stake, payout int64) {
	result := "loss"
	if payout > 0 {
		result = "win"
	}
	betsTotal.WithLabelValues(game, result).Inc()
	stakedUnitsTotal.WithLabelValues(game).Add(float64(stake))
	paidUnitsTotal.WithLabelValues(game).Add(float64(payout))
}

// ObserveCacheLookup records a balance cache hit, miss or error.
func ObserveCacheLookup(result string) {
	cacheLookupsTotal.WithLabelValues(result).Inc()
}
