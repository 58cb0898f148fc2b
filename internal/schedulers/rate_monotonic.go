package schedulers

import (
	"cpu-scheduling-simulator/internal/core"
)

// RateMonotonic is a preemptive fixed-priority scheduler for periodic
// processes: the shorter the period the higher the priority, lowest pid first
// on ties. It simulates one hyperperiod tick by tick and omits idle ticks.
//
// Known limitation: per-process metrics come from the last merged segment of
// each pid, so they describe the final instance inside the hyperperiod rather
// than the first.
type RateMonotonic struct {
	processSet
	periodicRun
	maxHyperperiod int
}

func NewRateMonotonic(opts ...Option) *RateMonotonic {
	o := buildOptions(opts)
	return &RateMonotonic{
		processSet:     newProcessSet(RM, o),
		maxHyperperiod: o.maxHyperperiod,
	}
}

func (s *RateMonotonic) Name() string { return RM }

// Schedule fails with ErrConfiguration when a process has no period and with
// ErrLimitExceeded when the hyperperiod is above the ceiling. Nothing is
// recorded on failure.
func (s *RateMonotonic) Schedule() error {
	if err := s.begin(); err != nil {
		return err
	}
	hyperperiod, err := Hyperperiod(s.processes, s.maxHyperperiod)
	if err != nil {
		return err
	}
	s.logger.Debug("simulating hyperperiod", "hyperperiod", hyperperiod)

	out := simulate(s.processes, hyperperiod,
		func(p *core.Process) int { return p.Period },
		func(a, b *periodicTask) bool {
			if a.process.Period != b.process.Period {
				return a.process.Period < b.process.Period
			}
			return byPID(a, b)
		},
		s.logger,
	)

	deriveMetrics(s.processes, out.timeline)
	s.record(hyperperiod, out)
	s.finish(out.timeline)
	return nil
}
