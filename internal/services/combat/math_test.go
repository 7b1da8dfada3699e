package combat_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wartrail/wartrail/internal/services/combat"
)

func TestHitChance_Formulas(t *testing.T) {
	for _, difficulty := range []int{1, 2, 3} {
		for _, bonus := range []int{-5, -2, -1, 0, 15, 40} {
			base := 50 + bonus - difficulty*5

			t.Run(fmt.Sprintf("d%d_bonus%d", difficulty, bonus), func(t *testing.T) {
				assert.Equal(t, base-5, combat.HitChance(combat.ActionShootLeft, bonus, difficulty))
				assert.Equal(t, base+5, combat.HitChance(combat.ActionShootCenter, bonus, difficulty))
				assert.Equal(t, base-2, combat.HitChance(combat.ActionShootRight, bonus, difficulty))
			})
		}
	}
}

func TestClampPct(t *testing.T) {
	tests := []struct {
		name string
		pct  int
		want int
	}{
		{name: "below floor", pct: -10, want: 5},
		{name: "at floor", pct: 5, want: 5},
		{name: "in range", pct: 50, want: 50},
		{name: "at ceiling", pct: 95, want: 95},
		{name: "above ceiling", pct: 130, want: 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, combat.ClampPct(tt.pct))
		})
	}
}

func TestHitChance_ClampedRangeIsFair(t *testing.T) {
	// Whatever the bonus, a clamped shot always lands in [5,95]
	for _, difficulty := range []int{1, 2, 3} {
		for bonus := -100; bonus <= 100; bonus += 10 {
			clamped := combat.ClampPct(combat.HitChance(combat.ActionShootCenter, bonus, difficulty))
			assert.GreaterOrEqual(t, clamped, 5)
			assert.LessOrEqual(t, clamped, 95)
		}
	}
}
