package settlement

import "math"

// DefaultGame names the table used for any unrecognised game identifier.
const DefaultGame = "default"

// Tier pays Num/Den times the stake when the draw is below Below.
type Tier struct {
	Below float64 `json:"below"`
	Num   int64   `json:"num"`
	Den   int64   `json:"den"`
}

// Table is the odds table of one game. Tiers are checked in ascending Below order;
// a draw past the last tier pays nothing.
type Table struct {
	Game  string `json:"game"`
	Tiers []Tier `json:"tiers"`
}

var tables = map[string]Table{
	"slot": {Game: "slot", Tiers: []Tier{
		{Below: 0.05, Num: 10, Den: 1},
		{Below: 0.20, Num: 5, Den: 2},
	}},
	"coin": {Game: "coin", Tiers: []Tier{
		{Below: 0.49, Num: 2, Den: 1},
	}},
}

var defaultTable = Table{Game: DefaultGame, Tiers: []Tier{
	{Below: 0.33, Num: 2, Den: 1},
}}

// maxMultiplier is the largest Num/Den across all tables, used to reject stakes whose payout
// would overflow int64.
const maxMultiplier = 10

// MaxStake is the largest stake accepted by any table.
const MaxStake = math.MaxInt64 / maxMultiplier

// Lookup returns the table for game, falling back to the default table.
func Lookup(game string) Table {
	if t, ok := tables[game]; ok {
		return t
	}
	return defaultTable
}

// Tables lists every table, default last.
func Tables() []Table {
	return []Table{tables["slot"], tables["coin"], defaultTable}
}

// Payout resolves draw r against the table. Fractional payouts truncate toward zero.
func (t Table) Payout(stake int64, r float64) int64 {
	for _, tier := range t.Tiers {
		if r < tier.Below {
			return stake * tier.Num / tier.Den
		}
	}
	return 0
}
