package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/scoreboard/internal/format"
)

// HeaderModel renders the top bar: title, version, active fixture count and
// elapsed session time.
type HeaderModel struct {
	startTime time.Time
	version   string
	active    int
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetActive records the number of games in progress.
func (h *HeaderModel) SetActive(n int) {
	h.active = n
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "⚽ Live Scoreboard"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := versionStyle.Render(" | ")

	active := metricValueStyle.Render(format.Plural(h.active, "game")) +
		versionStyle.Render(" in progress")

	elapsed := elapsedStyle.Render(fmt.Sprintf("Session %s", format.FormatMatchClock(time.Since(h.startTime))))

	leftPart := title + pipe + active
	leftLen := lipgloss.Width(leftPart)
	rightLen := lipgloss.Width(elapsed)

	innerWidth := h.width - 2
	if innerWidth < 0 {
		innerWidth = 0
	}

	gap := innerWidth - leftLen - rightLen
	if gap < 1 {
		gap = 1
	}

	row := leftPart + spaces(gap) + elapsed

	return headerStyle.Width(h.width).Render(row)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
