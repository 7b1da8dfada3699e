package dice

// Roller provides an interface for the game's random draws
// This allows us to inject deterministic sequences for testing
type Roller interface {
	// Chance returns true with probability pct/100. Values at or below
	// zero never succeed; values at or above 100 always succeed.
	Chance(pct int) bool

	// Range returns a uniform integer in [1, max]
	Range(max int) int

	// Pick returns a uniform index in [0, n)
	Pick(n int) int
}
