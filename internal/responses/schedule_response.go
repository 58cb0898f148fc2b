package responses

type SegmentResponse struct {
	ProcessId int  `json:"process_id"`
	Start     int  `json:"start"`
	End       int  `json:"end"`
	Idle      bool `json:"idle,omitempty"`
}

type ProcessResponse struct {
	ProcessId      int  `json:"process_id"`
	ArrivalTime    int  `json:"arrival_time"`
	BurstTime      int  `json:"burst_time"`
	Period         int  `json:"period,omitempty"`
	Deadline       int  `json:"deadline,omitempty"`
	Scheduled      bool `json:"scheduled"`
	StartTime      int  `json:"start_time"`
	CompletionTime int  `json:"completion_time"`
	WaitingTime    int  `json:"waiting_time"`
	TurnAroundTime int  `json:"turn_around_time"`
}

type DeadlineMissResponse struct {
	ProcessId int `json:"process_id"`
	Release   int `json:"release"`
	Deadline  int `json:"deadline"`
	Remaining int `json:"remaining"`
}

type ScheduleResponse struct {
	RunID                 string                 `json:"run_id"`
	Algorithm             string                 `json:"algorithm"`
	TotalTime             int                    `json:"total_time"`
	IdleTime              int                    `json:"idle_time"`
	AverageWaitingTime    float64                `json:"average_waiting_time"`
	AverageTurnAroundTime float64                `json:"average_turn_around_time"`
	CpuUtilization        float64                `json:"cpu_utilization"`
	CpuThroughput         float64                `json:"cpu_throughput"`
	Hyperperiod           int                    `json:"hyperperiod,omitempty"`
	DeadlineMisses        []DeadlineMissResponse `json:"deadline_misses,omitempty"`
	DroppedInstances      []DeadlineMissResponse `json:"dropped_instances,omitempty"`
	Timeline              []SegmentResponse      `json:"timeline"`
	Details               []ProcessResponse      `json:"details"`
}

type ComparisonResponse struct {
	Algorithm             string  `json:"algorithm"`
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnAroundTime float64 `json:"average_turn_around_time"`
	Error                 string  `json:"error,omitempty"`
}

type CompareResponse struct {
	RunID   string               `json:"run_id"`
	Results []ComparisonResponse `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
