package schedulers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/responses"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"fcfs", FCFS},
		{"SJN", SJN},
		{"sjf", SJN},
		{"rr", RR},
		{"round-robin", RR},
		{"rm", RM},
		{"edf", EDF},
		{"df", EDF},
		{" Deadline-First ", EDF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.Name())
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New("lottery")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = New(RR, WithTimeQuantum(-1))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNew_PassesQuantum(t *testing.T) {
	s, err := New(RR, WithTimeQuantum(5))
	require.NoError(t, err)
	assert.Equal(t, 5, s.(*RoundRobin).TimeQuantum())
}

func TestIsPeriodic(t *testing.T) {
	assert.True(t, IsPeriodic("rm"))
	assert.True(t, IsPeriodic("df"))
	assert.False(t, IsPeriodic("rr"))
	assert.NotEmpty(t, Describe("edf"))
}

func TestHyperperiod(t *testing.T) {
	h, err := Hyperperiod([]*core.Process{
		core.NewPeriodicProcess(1, 0, 1, 4, 0),
		core.NewPeriodicProcess(2, 0, 1, 6, 0),
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, h)

	h, err = Hyperperiod(nil, 10)
	require.NoError(t, err)
	assert.Zero(t, h)

	_, err = Hyperperiod([]*core.Process{core.NewProcess(1, 0, 1)}, 0)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = Hyperperiod([]*core.Process{
		core.NewPeriodicProcess(1, 0, 1, math.MaxInt, 0),
		core.NewPeriodicProcess(2, 0, 1, 2, 0),
	}, 0)
	assert.ErrorIs(t, err, ErrLimitExceeded)
}

func TestCompare(t *testing.T) {
	processes := []*core.Process{
		core.NewPeriodicProcess(1, 0, 1, 4, 4),
		core.NewPeriodicProcess(2, 0, 2, 6, 6),
	}

	results := Compare(processes)
	require.Len(t, results, len(Algorithms()))
	for i, r := range results {
		assert.Equal(t, Algorithms()[i], r.Algorithm)
		assert.NoError(t, r.Err, r.Algorithm)
	}
	// FCFS: p1 0-1, p2 1-3
	assert.InDelta(t, 0.5, results[0].AverageWaitingTime, 1e-9)
	assert.InDelta(t, 2.0, results[0].AverageTurnaroundTime, 1e-9)

	for _, p := range processes {
		assert.Nil(t, p.Metrics, "compare must not touch the input set")
	}
}

func TestCompare_ReportsMissingFields(t *testing.T) {
	results := Compare([]*core.Process{core.NewProcess(1, 0, 3)})

	for _, r := range results {
		if IsPeriodic(r.Algorithm) {
			assert.ErrorIs(t, r.Err, ErrConfiguration, r.Algorithm)
			continue
		}
		assert.NoError(t, r.Err, r.Algorithm)
	}
}

func TestCompare_EmptySet(t *testing.T) {
	for _, r := range Compare(nil) {
		assert.ErrorIs(t, r.Err, ErrEmptyInput, r.Algorithm)
	}
}

func TestGenerateResponse(t *testing.T) {
	s := NewFirstComeFirstServe()
	run(t, s, core.NewProcess(1, 0, 5), core.NewProcess(2, 2, 3))

	resp := GenerateResponse("run-1", s)
	assert.Equal(t, "run-1", resp.RunID)
	assert.Equal(t, FCFS, resp.Algorithm)
	assert.Equal(t, 8, resp.TotalTime)
	assert.Equal(t, 0, resp.IdleTime)
	assert.InDelta(t, 1.0, resp.CpuUtilization, 1e-9)
	assert.InDelta(t, 1.5, resp.AverageWaitingTime, 1e-9)
	require.Len(t, resp.Timeline, 2)
	require.Len(t, resp.Details, 2)
	assert.True(t, resp.Details[1].Scheduled)
	assert.Equal(t, 3, resp.Details[1].WaitingTime)
	assert.Zero(t, resp.Hyperperiod)
}

func TestGenerateResponse_Periodic(t *testing.T) {
	s := NewRateMonotonic()
	run(t, s, core.NewPeriodicProcess(1, 0, 2, 2, 0), core.NewPeriodicProcess(2, 0, 1, 4, 0))

	resp := GenerateResponse("run-2", s)
	assert.Equal(t, 4, resp.Hyperperiod)
	require.Len(t, resp.DeadlineMisses, 1)
	assert.Equal(t, 2, resp.DeadlineMisses[0].ProcessId)
	assert.False(t, resp.Details[1].Scheduled)
	assert.Empty(t, resp.DroppedInstances)
}

func TestGenerateResponse_DroppedInstances(t *testing.T) {
	s := NewDeadlineFirst()
	run(t, s, core.NewPeriodicProcess(1, 0, 3, 4, 10), core.NewPeriodicProcess(2, 0, 3, 4, 2))

	resp := GenerateResponse("run-3", s)
	require.Len(t, resp.DeadlineMisses, 1)
	assert.Equal(t, 2, resp.DeadlineMisses[0].ProcessId)
	assert.Equal(t, []responses.DeadlineMissResponse{
		{ProcessId: 1, Release: 0, Deadline: 10, Remaining: 2},
	}, resp.DroppedInstances)
}

func TestGenerateResponse_Empty(t *testing.T) {
	s := NewShortestJobNext()
	require.NoError(t, s.Schedule())

	resp := GenerateResponse("run-3", s)
	assert.Zero(t, resp.AverageWaitingTime)
	assert.Empty(t, resp.Timeline)
	assert.Empty(t, resp.Details)
}
