package schedulers

import (
	"cpu-scheduling-simulator/internal/core"
	"cpu-scheduling-simulator/internal/responses"
)

// deriveMetrics sets each process's metrics from its segments in a merged
// timeline: start is the first segment's start, completion the last segment's
// end. Processes that never ran keep nil metrics.
//
// For the periodic schedulers this means the metrics describe the last
// instance inside the hyperperiod, not the first one.
func deriveMetrics(processes []*core.Process, timeline core.Timeline) {
	for _, p := range processes {
		segments := timeline.ForPID(p.PID)
		if len(segments) == 0 {
			continue
		}
		p.SetMetrics(segments[0].Start, segments[len(segments)-1].End)
	}
}

// GenerateResponse summarises a finished scheduler. Averages over an empty
// process set are reported as 0.
func GenerateResponse(runID string, s Scheduler) responses.ScheduleResponse {
	averageWaitingTime, _ := s.AverageWaitingTime()
	averageTurnAroundTime, _ := s.AverageTurnaroundTime()

	processes := s.Processes()
	timeline := s.Timeline()
	cpuMetric := core.MeasureCPU(timeline, len(processes))

	response := responses.ScheduleResponse{
		RunID:                 runID,
		Algorithm:             s.Name(),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        cpuMetric.Utilization,
		CpuThroughput:         cpuMetric.Throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Timeline:              make([]responses.SegmentResponse, 0, len(timeline)),
		Details:               make([]responses.ProcessResponse, 0, len(processes)),
	}

	for _, seg := range timeline {
		response.Timeline = append(response.Timeline, responses.SegmentResponse{
			ProcessId: seg.PID,
			Start:     seg.Start,
			End:       seg.End,
			Idle:      seg.Idle,
		})
	}
	for _, p := range processes {
		response.Details = append(response.Details, generateProcessDetails(p))
	}

	if reporter, ok := s.(DeadlineReporter); ok {
		response.Hyperperiod = reporter.Hyperperiod()
		for _, miss := range reporter.DeadlineMisses() {
			response.DeadlineMisses = append(response.DeadlineMisses, responses.DeadlineMissResponse{
				ProcessId: miss.PID,
				Release:   miss.Release,
				Deadline:  miss.Deadline,
				Remaining: miss.Remaining,
			})
		}
		for _, d := range reporter.DroppedInstances() {
			response.DroppedInstances = append(response.DroppedInstances, responses.DeadlineMissResponse{
				ProcessId: d.PID,
				Release:   d.Release,
				Deadline:  d.Deadline,
				Remaining: d.Remaining,
			})
		}
	}
	return response
}

func generateProcessDetails(p *core.Process) responses.ProcessResponse {
	details := responses.ProcessResponse{
		ProcessId:   p.PID,
		ArrivalTime: p.ArrivalTime,
		BurstTime:   p.BurstTime,
		Period:      p.Period,
		Deadline:    p.Deadline,
	}
	if p.Metrics != nil {
		details.Scheduled = true
		details.StartTime = p.Metrics.StartTime
		details.CompletionTime = p.Metrics.CompletionTime
		details.WaitingTime = p.Metrics.WaitingTime
		details.TurnAroundTime = p.Metrics.TurnaroundTime
	}
	return details
}
