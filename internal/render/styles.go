package render

import "github.com/charmbracelet/lipgloss"

var (
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	labelStyle  = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle   = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorGray)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	// processPalette is indexed by pid.
	processPalette = []lipgloss.Color{
		lipgloss.Color("#FED07D"),
		lipgloss.Color("#FFA57E"),
		lipgloss.Color("#E7F19A"),
		lipgloss.Color("#BE9EFD"),
		lipgloss.Color("#03D9FE"),
		lipgloss.Color("#50FA7B"),
		lipgloss.Color("#FF5555"),
		lipgloss.Color("#FFB86C"),
	}
)

// processStyle gives every pid a stable colour.
func processStyle(pid int) lipgloss.Style {
	idx := pid % len(processPalette)
	if idx < 0 {
		idx += len(processPalette)
	}
	return lipgloss.NewStyle().
		Background(processPalette[idx]).
		Foreground(lipgloss.Color("#282A36")).
		Bold(true)
}
