package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduling-simulator/internal/core"
)

var tableColumns = []string{"PID", "Arrival", "Burst", "Period", "Deadline", "Start", "Completion", "Waiting", "Turnaround"}

// Table renders one row per process with its inputs and derived metrics.
// Missing optional inputs and unset metrics show as "-".
func Table(processes []*core.Process) string {
	if len(processes) == 0 {
		return dimStyle.Render("No processes.")
	}

	rows := make([][]string, 0, len(processes))
	for _, p := range processes {
		row := []string{
			strconv.Itoa(p.PID),
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			optional(p.Period),
			optional(p.Deadline),
		}
		if m := p.Metrics; m != nil {
			row = append(row,
				strconv.Itoa(m.StartTime),
				strconv.Itoa(m.CompletionTime),
				strconv.Itoa(m.WaitingTime),
				strconv.Itoa(m.TurnaroundTime),
			)
		} else {
			row = append(row, "-", "-", "-", "-")
		}
		rows = append(rows, row)
	}

	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader(tableColumns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeaderAlignment(tablewriter.ALIGN_RIGHT)
	table.AppendBulk(rows)
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(lines[0]))
	for _, line := range lines[1:] {
		sb.WriteString("\n")
		sb.WriteString(valueStyle.Render(line))
	}
	return sb.String()
}

// Averages renders the two aggregate metrics.
func Averages(waiting, turnaround float64) string {
	return labelStyle.Render("Avg waiting time: ") + valueStyle.Render(fmt.Sprintf("%.2f", waiting)) + "\n" +
		labelStyle.Render("Avg turnaround time: ") + valueStyle.Render(fmt.Sprintf("%.2f", turnaround))
}

func optional(v int) string {
	if v <= 0 {
		return "-"
	}
	return strconv.Itoa(v)
}
