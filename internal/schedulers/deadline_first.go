package schedulers

import (
	"fmt"

	"cpu-scheduling-simulator/internal/core"
)

// DeadlineFirst is preemptive earliest-deadline-first over periodic
// processes. Deadline is relative to each release. On every tick the ready
// instance with the smallest absolute deadline runs, lowest pid first on
// ties. Idle ticks are omitted and missed deadlines are simulated through,
// only reported by DeadlineMisses.
//
// Metrics share RateMonotonic's limitation: they describe each pid's last
// segment within the hyperperiod.
type DeadlineFirst struct {
	processSet
	periodicRun
	maxHyperperiod int
}

func NewDeadlineFirst(opts ...Option) *DeadlineFirst {
	o := buildOptions(opts)
	return &DeadlineFirst{
		processSet:     newProcessSet(EDF, o),
		maxHyperperiod: o.maxHyperperiod,
	}
}

func (s *DeadlineFirst) Name() string { return EDF }

func (s *DeadlineFirst) Schedule() error {
	if err := s.begin(); err != nil {
		return err
	}
	for _, p := range s.processes {
		if !p.HasDeadline() {
			return fmt.Errorf("%w: process %d: deadline is required", ErrConfiguration, p.PID)
		}
	}
	hyperperiod, err := Hyperperiod(s.processes, s.maxHyperperiod)
	if err != nil {
		return err
	}
	s.logger.Debug("simulating hyperperiod", "hyperperiod", hyperperiod)

	out := simulate(s.processes, hyperperiod,
		func(p *core.Process) int { return p.Deadline },
		func(a, b *periodicTask) bool {
			if a.deadline != b.deadline {
				return a.deadline < b.deadline
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
