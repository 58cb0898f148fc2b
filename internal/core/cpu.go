package core

// CPU records what a single simulated core executes. Every scheduler drives
// one CPU and reads the finished timeline from it.
type CPU struct {
	timeline Timeline
}

func NewCPU() *CPU {
	return &CPU{timeline: make(Timeline, 0)}
}

// Execute records pid running from start for duration units.
func (c *CPU) Execute(pid, start, duration int) {
	if duration <= 0 {
		return
	}
	c.timeline = append(c.timeline, Segment{PID: pid, Start: start, End: start + duration})
}

// Idle records an explicit idle gap. Empty gaps are ignored.
func (c *CPU) Idle(start, end int) {
	if end <= start {
		return
	}
	c.timeline = append(c.timeline, Segment{Start: start, End: end, Idle: true})
}

// Timeline returns the recorded segments with adjacent runs merged.
func (c *CPU) Timeline() Timeline {
	return c.timeline.Merge()
}

// CpuMetric summarises how busy the CPU was over a finished timeline.
// TotalTime runs from t=0 to the end of the last segment.
type CpuMetric struct {
	TotalTime       int     `json:"total_time"`
	UtilizationTime int     `json:"utilization_time"`
	IdleTime        int     `json:"idle_time"`
	Utilization     float64 `json:"utilization"`
	Throughput      float64 `json:"throughput"`
}

// MeasureCPU derives utilisation and throughput from a timeline.
func MeasureCPU(timeline Timeline, processCount int) CpuMetric {
	metric := CpuMetric{TotalTime: timeline.End()}
	for _, seg := range timeline {
		if !seg.Idle {
			metric.UtilizationTime += seg.Duration()
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	if metric.TotalTime > 0 {
		metric.Utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		metric.Throughput = float64(processCount) / float64(metric.TotalTime)
	}
	return metric
}
