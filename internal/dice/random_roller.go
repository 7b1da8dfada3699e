package dice

import (
	"math/rand"
	"time"
)

// randomRoller implements Roller over a private rand source
type randomRoller struct {
	random *rand.Rand
}

// NewRandomRoller creates a Roller seeded once at construction.
// A zero seed falls back to the current time.
func NewRandomRoller(seed int64) Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Chance implements Roller.Chance
func (r *randomRoller) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return r.random.Intn(100) < pct
}

// Range implements Roller.Range
func (r *randomRoller) Range(max int) int {
	return 1 + r.random.Intn(max)
}

// Pick implements Roller.Pick
func (r *randomRoller) Pick(n int) int {
	return r.random.Intn(n)
}
