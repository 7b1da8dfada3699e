package dice

import (
	"fmt"
	"sync"
)

// MockRoller implements Roller for testing with predetermined results.
// Each draw kind has its own queue; running a queue dry panics, since that
// is a test-authoring bug rather than a runtime condition.
type MockRoller struct {
	mu        sync.Mutex
	chances   []bool
	chanceIdx int
	ranges    []int
	rangeIdx  int
	picks     []int
	pickIdx   int
}

// NewMockRoller creates a new mock roller
func NewMockRoller() *MockRoller {
	return &MockRoller{}
}

// QueueChance appends predetermined Chance outcomes
func (m *MockRoller) QueueChance(results ...bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chances = append(m.chances, results...)
}

// QueueRange appends predetermined Range outcomes
func (m *MockRoller) QueueRange(results ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ranges = append(m.ranges, results...)
}

// QueuePick appends predetermined Pick outcomes
func (m *MockRoller) QueuePick(results ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.picks = append(m.picks, results...)
}

// Reset clears all queues and indexes
func (m *MockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chances = nil
	m.chanceIdx = 0
	m.ranges = nil
	m.rangeIdx = 0
	m.picks = nil
	m.pickIdx = 0
}

// Remaining reports how many queued outcomes are still unconsumed
func (m *MockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return (len(m.chances) - m.chanceIdx) +
		(len(m.ranges) - m.rangeIdx) +
		(len(m.picks) - m.pickIdx)
}

// Chance implements Roller.Chance
func (m *MockRoller) Chance(pct int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.chanceIdx >= len(m.chances) {
		panic(fmt.Sprintf("dice: no queued chance results remain (used %d of %d, pct=%d)",
			m.chanceIdx, len(m.chances), pct))
	}
	result := m.chances[m.chanceIdx]
	m.chanceIdx++
	return result
}

// Range implements Roller.Range
func (m *MockRoller) Range(max int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rangeIdx >= len(m.ranges) {
		panic(fmt.Sprintf("dice: no queued range results remain (used %d of %d, max=%d)",
			m.rangeIdx, len(m.ranges), max))
	}
	result := m.ranges[m.rangeIdx]
	m.rangeIdx++
	if result < 1 || result > max {
		panic(fmt.Sprintf("dice: queued range result %d is outside [1,%d]", result, max))
	}
	return result
}

// Pick implements Roller.Pick
func (m *MockRoller) Pick(n int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pickIdx >= len(m.picks) {
		panic(fmt.Sprintf("dice: no queued pick results remain (used %d of %d, n=%d)",
			m.pickIdx, len(m.picks), n))
	}
	result := m.picks[m.pickIdx]
	m.pickIdx++
	if result < 0 || result >= n {
		panic(fmt.Sprintf("dice: queued pick result %d is outside [0,%d)", result, n))
	}
	return result
}
