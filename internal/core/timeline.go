package core

// Segment is a contiguous interval [Start, End) during which one process, or
// nobody when Idle is set, occupies the CPU.
type Segment struct {
	PID   int  `json:"pid"`
	Start int  `json:"start"`
	End   int  `json:"end"`
	Idle  bool `json:"idle,omitempty"`
}

func (s Segment) Duration() int { return s.End - s.Start }

// Timeline is an ordered list of segments, sorted by start time.
type Timeline []Segment

// Merge coalesces adjacent segments that belong to the same process (or are
// both idle) and touch end to start.
func (t Timeline) Merge() Timeline {
	if len(t) == 0 {
		return Timeline{}
	}
	merged := make(Timeline, 0, len(t))
	current := t[0]
	for _, seg := range t[1:] {
		if seg.PID == current.PID && seg.Idle == current.Idle && seg.Start == current.End {
			current.End = seg.End
			continue
		}
		merged = append(merged, current)
		current = seg
	}
	return append(merged, current)
}

// ForPID returns the non-idle segments of one process, in timeline order.
func (t Timeline) ForPID(pid int) Timeline {
	var out Timeline
	for _, seg := range t {
		if !seg.Idle && seg.PID == pid {
			out = append(out, seg)
		}
	}
	return out
}

// ExecutedTime sums the durations of every non-idle segment of pid.
func (t Timeline) ExecutedTime(pid int) int {
	total := 0
	for _, seg := range t.ForPID(pid) {
		total += seg.Duration()
	}
	return total
}

// End returns the end of the last segment, or 0 for an empty timeline.
func (t Timeline) End() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}
