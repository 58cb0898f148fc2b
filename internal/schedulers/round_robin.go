package schedulers

import (
	"fmt"

	"cpu-scheduling-simulator/internal/core"
)

// RoundRobin gives each ready process at most timeQuantum units before moving
// it to the tail of a FIFO ready queue. Processes that arrive during a slice
// are queued ahead of the process that was just preempted. Idle gaps are not
// recorded.
type RoundRobin struct {
	processSet
	timeQuantum int
}

// NewRoundRobin fails with ErrConfiguration when timeQuantum is not positive.
func NewRoundRobin(timeQuantum int, opts ...Option) (*RoundRobin, error) {
	if timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: time quantum must be positive, got %d", ErrConfiguration, timeQuantum)
	}
	o := buildOptions(opts)
	s := &RoundRobin{processSet: newProcessSet(RR, o), timeQuantum: timeQuantum}
	s.logger.Debug("running roundRobin algorithm", "timeQuantum", timeQuantum)
	return s, nil
}

func (s *RoundRobin) Name() string { return RR }

func (s *RoundRobin) TimeQuantum() int { return s.timeQuantum }

func (s *RoundRobin) Schedule() error {
	if err := s.begin(); err != nil {
		return err
	}
	if len(s.processes) == 0 {
		s.finish(core.Timeline{})
		return nil
	}

	jobs := make([]*core.Process, len(s.processes))
	copy(jobs, s.processes)
	sortProcesses(jobs, func(a, b *core.Process) bool {
		return a.ArrivalTime < b.ArrivalTime
	})

	cpu := core.NewCPU()
	currentTime := jobs[0].ArrivalTime
	roundRobinQueue := make([]*core.Process, 0, len(jobs))
	next := 0

	admit := func() {
		for next < len(jobs) && jobs[next].ArrivalTime <= currentTime {
			roundRobinQueue = append(roundRobinQueue, jobs[next])
			next++
		}
	}

	for len(roundRobinQueue) > 0 || next < len(jobs) {
		admit()
		if len(roundRobinQueue) == 0 {
			currentTime = jobs[next].ArrivalTime
			continue
		}

		process := roundRobinQueue[0]
		roundRobinQueue = roundRobinQueue[1:]

		slice := min(s.timeQuantum, process.RemainingTime)
		cpu.Execute(process.PID, currentTime, slice)
		currentTime += slice
		process.RemainingTime -= slice

		// arrivals during the slice go ahead of the preempted process
		admit()
		if process.RemainingTime > 0 {
			s.logger.Debug("context switch", "pid", process.PID, "remaining", process.RemainingTime, "time", currentTime)
			roundRobinQueue = append(roundRobinQueue, process)
		}
	}

	timeline := cpu.Timeline()
	deriveMetrics(s.processes, timeline)
	s.finish(timeline)
	return nil
}
