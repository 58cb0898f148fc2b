package core

import "fmt"

// Metrics holds the values a scheduler derives for a process once its
// timeline is known.
type Metrics struct {
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnaroundTime int `json:"turnaround_time"`
}

// Process is one schedulable unit. Deadline and Period are optional; zero
// means the field was not provided.
//
// A Process is mutated in place while a scheduler runs (RemainingTime and
// Metrics), so it must belong to exactly one scheduler at a time.
type Process struct {
	PID         int `json:"pid" yaml:"pid"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Deadline    int `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Period      int `json:"period,omitempty" yaml:"period,omitempty"`

	RemainingTime int      `json:"-" yaml:"-"`
	Metrics       *Metrics `json:"metrics,omitempty" yaml:"-"`
}

func NewProcess(pid, arrivalTime, burstTime int) *Process {
	return &Process{
		PID:           pid,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		RemainingTime: burstTime,
	}
}

// NewPeriodicProcess builds a process carrying a period and a relative deadline.
func NewPeriodicProcess(pid, arrivalTime, burstTime, period, deadline int) *Process {
	p := NewProcess(pid, arrivalTime, burstTime)
	p.Period = period
	p.Deadline = deadline
	return p
}

func (p *Process) HasPeriod() bool   { return p.Period > 0 }
func (p *Process) HasDeadline() bool { return p.Deadline > 0 }

// Reset restores the runtime state so the process can be scheduled again.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.Metrics = nil
}

// Clone returns a copy carrying only the scheduling inputs.
func (p *Process) Clone() *Process {
	c := NewProcess(p.PID, p.ArrivalTime, p.BurstTime)
	c.Period = p.Period
	c.Deadline = p.Deadline
	return c
}

// SetMetrics records start and completion and derives turnaround and
// waiting time from them.
func (p *Process) SetMetrics(start, completion int) {
	turnaround := completion - p.ArrivalTime
	p.Metrics = &Metrics{
		StartTime:      start,
		CompletionTime: completion,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.BurstTime,
	}
}

// WaitingTimeOrZero returns the waiting time, or 0 when metrics were never set.
func (p *Process) WaitingTimeOrZero() int {
	if p.Metrics == nil {
		return 0
	}
	return p.Metrics.WaitingTime
}

// TurnaroundTimeOrZero returns the turnaround time, or 0 when metrics were never set.
func (p *Process) TurnaroundTimeOrZero() int {
	if p.Metrics == nil {
		return 0
	}
	return p.Metrics.TurnaroundTime
}

func (p *Process) String() string {
	return fmt.Sprintf("Process(pid=%d, arrival_time=%d, burst_time=%d, period=%d, deadline=%d)",
		p.PID, p.ArrivalTime, p.BurstTime, p.Period, p.Deadline)
}

// CloneAll copies a process set with fresh runtime state.
func CloneAll(processes []*Process) []*Process {
	out := make([]*Process, 0, len(processes))
	for _, p := range processes {
		out = append(out, p.Clone())
	}
	return out
}
