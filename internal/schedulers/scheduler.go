package schedulers

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/util"
)

// DefaultMaxHyperperiod bounds the tick loop of the periodic schedulers.
const DefaultMaxHyperperiod = 10000

// DefaultTimeQuantum is the round-robin slice used when none is configured.
const DefaultTimeQuantum = 2

// Scheduler turns a process set into a timeline under one policy.
//
// Usage: add processes, call Schedule exactly once, then read Timeline, the
// per-process Metrics and the averages.
type Scheduler interface {
	Name() string
	AddProcess(p *core.Process)
	Schedule() error
	Processes() []*core.Process
	Timeline() core.Timeline
	AverageWaitingTime() (float64, error)
	AverageTurnaroundTime() (float64, error)
}

// DeadlineReporter is implemented by the periodic schedulers.
type DeadlineReporter interface {
	Hyperperiod() int
	DeadlineMisses() []DeadlineMiss
	DroppedInstances() []DroppedInstance
}

type options struct {
	logger         *slog.Logger
	maxHyperperiod int
	timeQuantum    int
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMaxHyperperiod sets the hyperperiod ceiling for RM and EDF. A value
// <= 0 removes the ceiling.
func WithMaxHyperperiod(limit int) Option {
	return func(o *options) { o.maxHyperperiod = limit }
}

// WithTimeQuantum sets the round-robin slice. Other schedulers ignore it.
func WithTimeQuantum(quantum int) Option {
	return func(o *options) { o.timeQuantum = quantum }
}

func buildOptions(opts []Option) options {
	o := options{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxHyperperiod: DefaultMaxHyperperiod,
		timeQuantum:    DefaultTimeQuantum,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// processSet is the state every scheduler shares: the processes it owns and
// the timeline it produced.
type processSet struct {
	processes []*core.Process
	timeline  core.Timeline
	scheduled bool
	logger    *slog.Logger
}

func newProcessSet(name string, o options) processSet {
	return processSet{
		processes: make([]*core.Process, 0),
		timeline:  core.Timeline{},
		logger:    o.logger.With("component", "scheduler", "algorithm", name),
	}
}

// AddProcess appends p and resets its remaining time. Duplicate pids are not
// detected.
func (s *processSet) AddProcess(p *core.Process) {
	p.RemainingTime = p.BurstTime
	s.processes = append(s.processes, p)
}

func (s *processSet) Processes() []*core.Process { return s.processes }

func (s *processSet) Timeline() core.Timeline { return s.timeline }

// AverageWaitingTime averages waiting time over every added process. Processes
// without metrics count as zero.
func (s *processSet) AverageWaitingTime() (float64, error) {
	values := make([]int, 0, len(s.processes))
	for _, p := range s.processes {
		values = append(values, p.WaitingTimeOrZero())
	}
	avg, ok := util.CalculateAverage(values)
	if !ok {
		return 0, ErrEmptyInput
	}
	return avg, nil
}

// AverageTurnaroundTime averages turnaround time over every added process.
// Processes without metrics count as zero.
func (s *processSet) AverageTurnaroundTime() (float64, error) {
	values := make([]int, 0, len(s.processes))
	for _, p := range s.processes {
		values = append(values, p.TurnaroundTimeOrZero())
	}
	avg, ok := util.CalculateAverage(values)
	if !ok {
		return 0, ErrEmptyInput
	}
	return avg, nil
}

// begin guards against a second run and validates the fields every algorithm
// relies on.
func (s *processSet) begin() error {
	if s.scheduled {
		return ErrAlreadyScheduled
	}
	for _, p := range s.processes {
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d: burst_time must be positive, got %d", ErrConfiguration, p.PID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d: arrival_time must not be negative, got %d", ErrConfiguration, p.PID, p.ArrivalTime)
		}
	}
	return nil
}

func (s *processSet) finish(timeline core.Timeline) {
	s.timeline = timeline
	s.scheduled = true
	s.logger.Debug("schedule complete", "processes", len(s.processes), "segments", len(timeline))
}

func sortProcesses(processes []*core.Process, less func(a, b *core.Process) bool) {
	sort.SliceStable(processes, func(i, j int) bool {
		return less(processes[i], processes[j])
	})
}
