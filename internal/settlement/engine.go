// Package settlement resolves bets into one atomic ledger unit.
package settlement

import (
	"context"
	"fmt"

	"bet_wallet/internal/domain"
	"bet_wallet/internal/ledger"
	"bet_wallet/internal/metrics"

	"github.com/sirupsen/logrus"
)

// Ledger is the part of the account ledger the engine needs.
type Ledger interface {
	Apply(ctx context.Context, userID uint, effects []ledger.Effect) (int64, error)
}

// Result is the outcome of one settled bet.
type Result struct {
	Game    string  `json:"game"`
	Stake   int64   `json:"stake"`
	Payout  int64   `json:"payout"`
	Balance int64   `json:"balance"`
	Draw    float64 `json:"-"`
}

// Engine settles bets against a Ledger.
type Engine struct {
	ledger  Ledger
	sampler Sampler
	log     logrus.FieldLogger
}

// NewEngine creates an Engine. A nil sampler uses RandomSampler.
func NewEngine(l Ledger, sampler Sampler, log logrus.FieldLogger) *Engine {
	if sampler == nil {
		sampler = RandomSampler()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{ledger: l, sampler: sampler, log: log}
}

// Resolve draws once and computes the payout for stake on game. It touches no state.
func (e *Engine) Resolve(stake int64, game string) (Table, float64, int64) {
	table := Lookup(game)
	r := e.sampler.Float64()
	return table, r, table.Payout(stake, r)
}

// PlaceBet debits stake and credits any payout as a single ledger unit.
//
// The draw is independent of the balance, so it is taken before the unit is opened; the stake
// debit is still checked and applied under the wallet lock together with the payout credit.
func (e *Engine) PlaceBet(ctx context.Context, userID uint, stake int64, game string) (*Result, error) {
	if stake <= 0 || stake > MaxStake {
		return nil, domain.ErrInvalidStake
	}
	table, r, payout := e.Resolve(stake, game) // Draw before the unit opens

	effects := []ledger.Effect{ledger.Debit(domain.KindBet, stake)}
	if payout > 0 {
		effects = append(effects, ledger.Credit(domain.KindPayout, payout))
	}
	balance, err := e.ledger.Apply(ctx, userID, effects) // Stake and payout commit together
	if err != nil {
		return nil, fmt.Errorf("settle %s bet: %w", table.Game, err)
	}

	metrics.ObserveBet(table.Game, stake, payout)
	e.log.WithFields(logrus.Fields{
		"user_id": userID,
		"game":    table.Game,
		"stake":   stake,
		"draw":    r,
		"payout":  payout,
		"balance": balance,
	}).Info("Bet settled")
	return &Result{Game: table.Game, Stake: stake, Payout: payout, Balance: balance, Draw: r}, nil
}
