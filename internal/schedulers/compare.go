package schedulers

import (
	"cpu-scheduling-simulator/internal/core"
)

// Comparison is one algorithm's averages over a shared process set. Err is
// set when the algorithm could not run on that set.
type Comparison struct {
	Algorithm             string
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	Err                   error
}

// Compare runs every algorithm on its own copy of processes. The input
// processes are not modified.
func Compare(processes []*core.Process, opts ...Option) []Comparison {
	results := make([]Comparison, 0, len(Algorithms()))
	for _, name := range Algorithms() {
		results = append(results, compareOne(name, processes, opts))
	}
	return results
}

func compareOne(name string, processes []*core.Process, opts []Option) Comparison {
	result := Comparison{Algorithm: name}

	s, err := New(name, opts...)
	if err != nil {
		result.Err = err
		return result
	}
	for _, p := range core.CloneAll(processes) {
		s.AddProcess(p)
	}
	if err := s.Schedule(); err != nil {
		result.Err = err
		return result
	}

	if result.AverageWaitingTime, err = s.AverageWaitingTime(); err != nil {
		result.Err = err
		return result
	}
	result.AverageTurnaroundTime, result.Err = s.AverageTurnaroundTime()
	return result
}
