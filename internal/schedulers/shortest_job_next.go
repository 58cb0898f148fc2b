package schedulers

import (
	"cpu-scheduling-simulator/internal/core"
)

// ShortestJobNext is non-preemptive: whenever the CPU frees up it runs the
// ready process with the smallest burst, lowest pid first on ties. When no
// process is ready it records an explicit idle segment up to the next
// arrival.
type ShortestJobNext struct {
	processSet
}

func NewShortestJobNext(opts ...Option) *ShortestJobNext {
	return &ShortestJobNext{processSet: newProcessSet(SJN, buildOptions(opts))}
}

func (s *ShortestJobNext) Name() string { return SJN }

func (s *ShortestJobNext) Schedule() error {
	if err := s.begin(); err != nil {
		return err
	}

	unscheduled := make([]*core.Process, len(s.processes))
	copy(unscheduled, s.processes)

	cpu := core.NewCPU()
	currentTime := 0
	for len(unscheduled) > 0 {
		readyQueue := readyAt(unscheduled, currentTime)
		if len(readyQueue) == 0 {
			nextArrival := earliestArrival(unscheduled)
			cpu.Idle(currentTime, nextArrival)
			s.logger.Debug("cpu idle", "from", currentTime, "to", nextArrival)
			currentTime = nextArrival
			readyQueue = readyAt(unscheduled, currentTime)
		}

		shortest := sortShortestJob(readyQueue)[0]
		cpu.Execute(shortest.PID, currentTime, shortest.BurstTime)
		shortest.RemainingTime = 0
		shortest.SetMetrics(currentTime, currentTime+shortest.BurstTime)
		currentTime += shortest.BurstTime

		unscheduled = removeProcess(unscheduled, shortest)
	}

	s.finish(cpu.Timeline())
	return nil
}

// sortShortestJob orders the ready queue by burst, then pid.
func sortShortestJob(processes []*core.Process) []*core.Process {
	sorted := make([]*core.Process, len(processes))
	copy(sorted, processes)
	sortProcesses(sorted, func(a, b *core.Process) bool {
		if a.BurstTime != b.BurstTime {
			return a.BurstTime < b.BurstTime
		}
		return a.PID < b.PID
	})
	return sorted
}

func readyAt(processes []*core.Process, currentTime int) []*core.Process {
	var ready []*core.Process
	for _, p := range processes {
		if p.ArrivalTime <= currentTime {
			ready = append(ready, p)
		}
	}
	return ready
}

func earliestArrival(processes []*core.Process) int {
	earliest := processes[0].ArrivalTime
	for _, p := range processes[1:] {
		earliest = min(earliest, p.ArrivalTime)
	}
	return earliest
}

func removeProcess(processes []*core.Process, target *core.Process) []*core.Process {
	out := processes[:0]
	for _, p := range processes {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}
