package render

import (
	"fmt"
	"strings"

	"cpu-scheduling-simulator/internal/schedulers"
)

const barWidth = 30

// Comparison renders horizontal bars of average waiting and turnaround time
// per algorithm, scaled to the largest value. Rows that failed show their
// error instead of bars.
func Comparison(results []schedulers.Comparison) string {
	if len(results) == 0 {
		return dimStyle.Render("No comparison results.")
	}

	scale := 1.0
	for _, r := range results {
		if r.Err == nil {
			scale = max(scale, r.AverageWaitingTime, r.AverageTurnaroundTime)
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Average metrics by algorithm"))
	for _, r := range results {
		sb.WriteString("\n")
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%-5s", strings.ToUpper(r.Algorithm))))
		if r.Err != nil {
			sb.WriteString(" " + warnStyle.Render(r.Err.Error()))
			continue
		}
		sb.WriteString(" " + labelStyle.Render("wait ") + bar(r.AverageWaitingTime, scale) +
			valueStyle.Render(fmt.Sprintf(" %.2f", r.AverageWaitingTime)))
		sb.WriteString("\n      " + labelStyle.Render("tat  ") + bar(r.AverageTurnaroundTime, scale) +
			valueStyle.Render(fmt.Sprintf(" %.2f", r.AverageTurnaroundTime)))
	}
	return panelStyle.Render(sb.String())
}

func bar(value, scale float64) string {
	filled := int(value / scale * barWidth)
	filled = min(max(filled, 0), barWidth)
	return valueStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", barWidth-filled))
}

// HyperperiodWarning explains that a periodic chart above threshold ticks
// will be hard to read.
func HyperperiodWarning(threshold int) string {
	return warnStyle.Render(fmt.Sprintf("Hyperperiod exceeds %d", threshold)) + "\n" +
		dimStyle.Render("Gantt chart for RM/EDF will not render correctly.")
}

// DeadlineMisses lists missed periodic deadlines.
func DeadlineMisses(misses []schedulers.DeadlineMiss) string {
	if len(misses) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(warnStyle.Render(fmt.Sprintf("%d deadline miss(es)", len(misses))))
	for _, m := range misses {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(fmt.Sprintf("  P%d released at %d, deadline %d, %d unit(s) left",
			m.PID, m.Release, m.Deadline, m.Remaining)))
	}
	return sb.String()
}

// DroppedInstances lists periodic instances cut off at a period boundary
// before their deadline.
func DroppedInstances(dropped []schedulers.DroppedInstance) string {
	if len(dropped) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(warnStyle.Render(fmt.Sprintf("%d instance(s) dropped at a period boundary", len(dropped))))
	for _, d := range dropped {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(fmt.Sprintf("  P%d released at %d, deadline %d, %d unit(s) left",
			d.PID, d.Release, d.Deadline, d.Remaining)))
	}
	return sb.String()
}
