package requests

import "cpu-scheduling-simulator/internal/core"

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Period      int `json:"period,omitempty"`
	Deadline    int `json:"deadline,omitempty"`
}

func (j Job) ToProcess() *core.Process {
	return core.NewPeriodicProcess(j.ProcessId, j.ArrivalTime, j.BurstTime, j.Period, j.Deadline)
}

func JobFromProcess(p *core.Process) Job {
	return Job{
		ProcessId:   p.PID,
		ArrivalTime: p.ArrivalTime,
		BurstTime:   p.BurstTime,
		Period:      p.Period,
		Deadline:    p.Deadline,
	}
}

// ScheduleRequests carries a process set. TimeQuantum is only read by round
// robin; zero selects the server default.
type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
}

func (r ScheduleRequests) Processes() []*core.Process {
	processes := make([]*core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, job.ToProcess())
	}
	return processes
}

// GenerateRequest asks for a synthetic process set. Zero ranges fall back to
// the generator defaults.
type GenerateRequest struct {
	Count           int    `json:"count"`
	Seed            uint64 `json:"seed"`
	ArrivalMin      int    `json:"arrival_min"`
	ArrivalMax      int    `json:"arrival_max"`
	BurstMin        int    `json:"burst_min"`
	BurstMax        int    `json:"burst_max"`
	IncludePeriod   bool   `json:"include_period"`
	IncludeDeadline bool   `json:"include_deadline"`
	Sequential      bool   `json:"sequential"`
	Step            int    `json:"step"`
}
