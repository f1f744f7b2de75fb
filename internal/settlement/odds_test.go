package settlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Payout(t *testing.T) {
	tests := []struct {
		game  string
		stake int64
		draw  float64
		want  int64
	}{
		{"slot", 100, 0.00, 1000},
		{"slot", 100, 0.03, 1000},
		{"slot", 100, 0.0499, 1000},
		{"slot", 100, 0.05, 250},
		{"slot", 100, 0.10, 250},
		{"slot", 100, 0.1999, 250},
		{"slot", 100, 0.20, 0},
		{"slot", 100, 0.50, 0},
		{"slot", 3, 0.10, 7}, // floor(7.5)
		{"slot", 1, 0.10, 2}, // floor(2.5)
		{"coin", 100, 0.10, 200},
		{"coin", 100, 0.4899, 200},
		{"coin", 100, 0.49, 0},
		{"coin", 100, 0.99, 0},
		{"dice", 100, 0.32, 200},
		{"dice", 100, 0.33, 0},
		{"", 100, 0.01, 200},
		{"SLOT", 100, 0.01, 200}, // identifiers are case sensitive
	}
	for _, tt := range tests {
		t.Run(tt.game, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.game).Payout(tt.stake, tt.draw), "draw %v", tt.draw)
		})
	}
}

func TestLookup_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "slot", Lookup("slot").Game)
	assert.Equal(t, "coin", Lookup("coin").Game)
	assert.Equal(t, DefaultGame, Lookup("roulette").Game)
}

func TestTables_AreOrdered(t *testing.T) {
	for _, table := range Tables() {
		for i := 1; i < len(table.Tiers); i++ {
			assert.Less(t, table.Tiers[i-1].Below, table.Tiers[i].Below, table.Game)
		}
		for _, tier := range table.Tiers {
			assert.LessOrEqual(t, tier.Num/tier.Den, int64(maxMultiplier), table.Game)
		}
	}
}

func TestSequence_RepeatsLastDraw(t *testing.T) {
	s := NewSequence(0.1, 0.7)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.7, s.Float64())
	assert.Equal(t, 0.7, s.Float64())
}

func TestSequence_RequiresDraws(t *testing.T) {
	assert.Panics(t, func() { NewSequence() })
}

func TestRandomSampler_Range(t *testing.T) {
	s := RandomSampler()
	for i := 0; i < 1000; i++ {
		r := s.Float64()
		assert.GreaterOrEqual(t, r, 0.0)
		assert.Less(t, r, 1.0)
	}
}
