package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wartrail/wartrail/internal/dice"
)

func TestMockRoller_Chance(t *testing.T) {
	tests := []struct {
		name   string
		queued []bool
		draws  int
		want   []bool
	}{
		{
			name:   "single success",
			queued: []bool{true},
			draws:  1,
			want:   []bool{true},
		},
		{
			name:   "mixed sequence",
			queued: []bool{true, false, false, true},
			draws:  4,
			want:   []bool{true, false, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewMockRoller()
			roller.QueueChance(tt.queued...)

			for i := 0; i < tt.draws; i++ {
				assert.Equal(t, tt.want[i], roller.Chance(50), "draw %d", i)
			}
			assert.Equal(t, 0, roller.Remaining())
		})
	}
}

func TestMockRoller_ExhaustedQueuePanics(t *testing.T) {
	roller := dice.NewMockRoller()

	assert.Panics(t, func() { roller.Chance(50) })
	assert.Panics(t, func() { roller.Range(100) })
	assert.Panics(t, func() { roller.Pick(5) })
}

func TestMockRoller_OutOfBoundsResultPanics(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.QueueRange(101)
	assert.Panics(t, func() { roller.Range(100) })

	roller.Reset()
	roller.QueuePick(5)
	assert.Panics(t, func() { roller.Pick(5) })
}

func TestMockRoller_RangeAndPick(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.QueueRange(1, 55, 100)
	roller.QueuePick(0, 4)

	assert.Equal(t, 1, roller.Range(100))
	assert.Equal(t, 55, roller.Range(100))
	assert.Equal(t, 100, roller.Range(100))
	assert.Equal(t, 0, roller.Pick(5))
	assert.Equal(t, 4, roller.Pick(5))
	assert.Equal(t, 0, roller.Remaining())
}

func TestMockRoller_Reset(t *testing.T) {
	roller := dice.NewMockRoller()
	roller.QueueChance(true, true)
	roller.Chance(50)

	roller.Reset()
	assert.Equal(t, 0, roller.Remaining())
	assert.Panics(t, func() { roller.Chance(50) })
}

func TestRandomRoller_SameSeedSameSequence(t *testing.T) {
	a := dice.NewRandomRoller(42)
	b := dice.NewRandomRoller(42)

	for i := 0; i < 200; i++ {
		require.Equal(t, a.Chance(50), b.Chance(50), "chance draw %d", i)
		require.Equal(t, a.Range(100), b.Range(100), "range draw %d", i)
		require.Equal(t, a.Pick(5), b.Pick(5), "pick draw %d", i)
	}
}

func TestRandomRoller_ChanceExtremes(t *testing.T) {
	roller := dice.NewRandomRoller(1)

	for i := 0; i < 100; i++ {
		assert.False(t, roller.Chance(0))
		assert.False(t, roller.Chance(-10))
		assert.True(t, roller.Chance(100))
		assert.True(t, roller.Chance(150))
	}
}

func TestRandomRoller_Bounds(t *testing.T) {
	roller := dice.NewRandomRoller(7)

	for i := 0; i < 1000; i++ {
		r := roller.Range(6)
		require.GreaterOrEqual(t, r, 1)
		require.LessOrEqual(t, r, 6)

		p := roller.Pick(5)
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, 5)
	}
}
