package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_Reproducible(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludePeriod = true
	opts.IncludeDeadline = true

	a, err := Random(NewRand(42), 5, opts)
	require.NoError(t, err)
	b, err := Random(NewRand(42), 5, opts)
	require.NoError(t, err)

	require.Len(t, a, 5)
	for i := range a {
		assert.Equal(t, *a[i], *b[i])
	}
}

func TestRandom_RespectsRanges(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludePeriod = true
	opts.IncludeDeadline = true

	processes, err := Random(NewRand(7), 11, opts)
	require.NoError(t, err)

	seen := map[int]bool{}
	for i, p := range processes {
		assert.Equal(t, i+1, p.PID)
		assert.False(t, seen[p.ArrivalTime], "arrival %d repeated", p.ArrivalTime)
		seen[p.ArrivalTime] = true

		assert.GreaterOrEqual(t, p.ArrivalTime, 0)
		assert.LessOrEqual(t, p.ArrivalTime, 10)
		assert.GreaterOrEqual(t, p.BurstTime, 1)
		assert.LessOrEqual(t, p.BurstTime, 10)
		assert.Equal(t, p.BurstTime, p.RemainingTime)

		assert.GreaterOrEqual(t, p.Period, p.BurstTime+1)
		assert.LessOrEqual(t, p.Period, p.BurstTime+10)
		assert.GreaterOrEqual(t, p.Deadline, p.BurstTime)
		assert.LessOrEqual(t, p.Deadline, p.Period)
	}
}

func TestRandom_DeadlineFitsPeriod(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludePeriod = true
	opts.IncludeDeadline = true

	for seed := uint64(0); seed < 200; seed++ {
		processes, err := Random(NewRand(seed), 5, opts)
		require.NoError(t, err)
		for _, p := range processes {
			require.GreaterOrEqual(t, p.Deadline, p.BurstTime, "seed %d pid %d", seed, p.PID)
			require.LessOrEqual(t, p.Deadline, p.Period, "seed %d pid %d", seed, p.PID)
		}
	}
}

func TestRandom_DeadlineWithoutPeriod(t *testing.T) {
	opts := DefaultOptions()
	opts.IncludeDeadline = true

	processes, err := Random(NewRand(3), 6, opts)
	require.NoError(t, err)
	for _, p := range processes {
		assert.False(t, p.HasPeriod())
		assert.GreaterOrEqual(t, p.Deadline, p.BurstTime)
		assert.LessOrEqual(t, p.Deadline, p.BurstTime+5)
	}
}

func TestRandom_OptionalFieldsOff(t *testing.T) {
	processes, err := Random(NewRand(1), 3, DefaultOptions())
	require.NoError(t, err)
	for _, p := range processes {
		assert.False(t, p.HasPeriod())
		assert.False(t, p.HasDeadline())
	}
}

func TestRandom_ArrivalRangeTooSmall(t *testing.T) {
	_, err := Random(NewRand(1), 12, DefaultOptions())
	assert.ErrorIs(t, err, ErrArrivalRange)
}

func TestRandom_InvalidBurstRange(t *testing.T) {
	opts := DefaultOptions()
	opts.BurstMin = 0
	_, err := Random(NewRand(1), 2, opts)
	assert.Error(t, err)
}

func TestSequential(t *testing.T) {
	opts := DefaultOptions()
	opts.ArrivalMin = 3

	processes, err := Sequential(NewRand(9), 4, 2, opts)
	require.NoError(t, err)
	require.Len(t, processes, 4)
	for i, p := range processes {
		assert.Equal(t, 3+2*i, p.ArrivalTime)
	}

	_, err = Sequential(NewRand(9), 4, -1, opts)
	assert.Error(t, err)
}
