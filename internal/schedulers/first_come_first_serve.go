package schedulers

import (
	"cpu-scheduling-simulator/internal/core"
)

// FirstComeFirstServe runs processes to completion in arrival order. Equal
// arrivals keep insertion order. Idle gaps are not recorded.
type FirstComeFirstServe struct {
	processSet
}

func NewFirstComeFirstServe(opts ...Option) *FirstComeFirstServe {
	return &FirstComeFirstServe{processSet: newProcessSet(FCFS, buildOptions(opts))}
}

func (s *FirstComeFirstServe) Name() string { return FCFS }

func (s *FirstComeFirstServe) Schedule() error {
	if err := s.begin(); err != nil {
		return err
	}

	// sort jobs by arrival time
	jobs := make([]*core.Process, len(s.processes))
	copy(jobs, s.processes)
	sortProcesses(jobs, func(a, b *core.Process) bool {
		return a.ArrivalTime < b.ArrivalTime
	})

	cpu := core.NewCPU()
	currentTime := 0
	for _, p := range jobs {
		start := max(currentTime, p.ArrivalTime)
		cpu.Execute(p.PID, start, p.BurstTime)
		p.RemainingTime = 0
		p.SetMetrics(start, start+p.BurstTime)
		s.logger.Debug("process scheduled", "pid", p.PID, "start", start, "end", start+p.BurstTime)
		currentTime = start + p.BurstTime
	}

	s.finish(cpu.Timeline())
	return nil
}
