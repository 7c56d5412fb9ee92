package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/scoreboard/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle         lipgloss.Style
	panelTitleStyle    lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	elapsedStyle       lipgloss.Style
	rankStyle          lipgloss.Style
	teamStyle          lipgloss.Style
	scoreStyle         lipgloss.Style
	emptyStyle         lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	sparklineStyle     lipgloss.Style
	loadSparklineStyle lipgloss.Style
	promptStyle        lipgloss.Style
	inputTextStyle     lipgloss.Style
	footerKeyStyle     lipgloss.Style
	footerDescStyle    lipgloss.Style
	statusOKStyle      lipgloss.Style
	statusErrorStyle   lipgloss.Style
	statusInfoStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	elapsedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	rankStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	teamStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	scoreStyle = lipgloss.NewStyle().
		Foreground(t.Score).
		Bold(true)

	emptyStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Italic(true)

	metricLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	metricValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	sparklineStyle = lipgloss.NewStyle().
		Foreground(t.Score)

	loadSparklineStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	promptStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inputTextStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statusOKStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	statusInfoStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
