package schedulers

import (
	"fmt"
	"strings"
)

// Algorithm names accepted by New.
const (
	FCFS = "fcfs"
	SJN  = "sjn"
	RR   = "rr"
	RM   = "rm"
	EDF  = "edf"
)

var aliases = map[string]string{
	"df":             EDF,
	"deadline-first": EDF,
	"rate-monotonic": RM,
	"round-robin":    RR,
	"sjf":            SJN,
}

var descriptions = map[string]string{
	FCFS: "First-Come, First-Served (non-preemptive)",
	SJN:  "Shortest Job Next (non-preemptive)",
	RR:   "Round Robin (preemptive, fixed time quantum)",
	RM:   "Rate Monotonic (preemptive, static priority by period)",
	EDF:  "Earliest Deadline First (preemptive, dynamic priority)",
}

// Algorithms lists the canonical algorithm names in display order.
func Algorithms() []string {
	return []string{FCFS, SJN, RR, RM, EDF}
}

// Describe returns a one-line description of an algorithm.
func Describe(name string) string {
	return descriptions[Canonical(name)]
}

// Canonical maps an alias to its canonical name. Unknown names are returned
// lower-cased.
func Canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := aliases[name]; ok {
		return c
	}
	return name
}

// IsPeriodic reports whether the algorithm simulates a hyperperiod.
func IsPeriodic(name string) bool {
	switch Canonical(name) {
	case RM, EDF:
		return true
	}
	return false
}

// New returns a fresh scheduler for the named algorithm.
func New(name string, opts ...Option) (Scheduler, error) {
	switch Canonical(name) {
	case FCFS:
		return NewFirstComeFirstServe(opts...), nil
	case SJN:
		return NewShortestJobNext(opts...), nil
	case RR:
		rr, err := NewRoundRobin(buildOptions(opts).timeQuantum, opts...)
		if err != nil {
			return nil, err
		}
		return rr, nil
	case RM:
		return NewRateMonotonic(opts...), nil
	case EDF:
		return NewDeadlineFirst(opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
