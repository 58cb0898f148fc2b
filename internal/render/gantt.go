package render

import (
	"fmt"
	"strings"

	"cpu-scheduling-simulator/internal/core"
)

// Gantt renders a timeline as one row of blocks with time markers beneath:
//
//	|-- P1 --|- P2 -|    |- P1 -|
//	0        4      6    8      10
//
// Gaps between segments are drawn blank; explicit idle segments are labelled
// "idle". An empty timeline renders a placeholder line.
func Gantt(timeline core.Timeline) string {
	if len(timeline) == 0 {
		return dimStyle.Render("No scheduling timeline to display.")
	}

	var bars, markers strings.Builder
	last := timeline[0].Start
	markers.WriteString(fmt.Sprintf("%-3d", last))
	for _, seg := range timeline {
		if seg.Start > last {
			width := blockWidth(seg.Start - last)
			bars.WriteString("|" + strings.Repeat(" ", width))
			markers.WriteString(strings.Repeat(" ", width-2) + fmt.Sprintf("%-3d", seg.Start))
		}
		width := blockWidth(seg.Duration())
		bars.WriteString("|")
		if seg.Idle {
			bars.WriteString(dimStyle.Render(center("idle", width, '.')))
		} else {
			bars.WriteString(processStyle(seg.PID).Render(center(fmt.Sprintf(" P%d ", seg.PID), width, '-')))
		}
		markers.WriteString(strings.Repeat(" ", width-2) + fmt.Sprintf("%-3d", seg.End))
		last = seg.End
	}
	bars.WriteString("|")

	return titleStyle.Render("Gantt Chart") + "\n" + bars.String() + "\n" + labelStyle.Render(markers.String())
}

func blockWidth(duration int) int {
	return max(4, duration*2)
}

func center(label string, width int, fill rune) string {
	if len(label) >= width {
		return label[:width]
	}
	left := (width - len(label)) / 2
	right := width - len(label) - left
	return strings.Repeat(string(fill), left) + label + strings.Repeat(string(fill), right)
}
