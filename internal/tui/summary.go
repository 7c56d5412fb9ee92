package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/scoreboard/internal/scoreboard"
)

// SummaryModel renders the ranked list of games in progress. It only holds a
// snapshot; the root model refreshes it from the board.
type SummaryModel struct {
	games  []scoreboard.Game
	offset int
	width  int
	height int
}

// NewSummaryModel creates an empty summary panel.
func NewSummaryModel() SummaryModel {
	return SummaryModel{}
}

// SetGames replaces the snapshot, keeping the scroll position in range.
func (s *SummaryModel) SetGames(games []scoreboard.Game) {
	s.games = games
	s.clampOffset()
}

// SetSize updates the panel dimensions, borders included.
func (s *SummaryModel) SetSize(w, h int) {
	s.width = w
	s.height = h
	s.clampOffset()
}

// ScrollBy moves the first visible row by delta rows.
func (s *SummaryModel) ScrollBy(delta int) {
	s.offset += delta
	s.clampOffset()
}

// visibleRows is the number of game rows that fit under the panel title.
func (s SummaryModel) visibleRows() int {
	rows := s.height - 3 // border top/bottom + title
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (s *SummaryModel) clampOffset() {
	maxOffset := len(s.games) - s.visibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// View renders the panel.
func (s SummaryModel) View() string {
	title := panelTitleStyle.Render("Summary")
	if len(s.games) > s.visibleRows() {
		last := min(s.offset+s.visibleRows(), len(s.games))
		title += rankStyle.Render(fmt.Sprintf("  %d-%d of %d", s.offset+1, last, len(s.games)))
	}

	lines := []string{title}
	if len(s.games) == 0 {
		lines = append(lines, emptyStyle.Render("No games in progress."))
	} else {
		rankWidth := len(fmt.Sprint(len(s.games)))
		end := min(s.offset+s.visibleRows(), len(s.games))
		for i := s.offset; i < end; i++ {
			lines = append(lines, renderGameRow(i+1, rankWidth, s.games[i]))
		}
	}

	w := s.width - 2
	if w < 0 {
		w = 0
	}
	h := s.height - 2
	if h < 0 {
		h = 0
	}
	return panelStyle.Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

// renderGameRow renders "1. Uruguay 6 - Italy 6" with the scores highlighted.
func renderGameRow(rank, rankWidth int, g scoreboard.Game) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		rankStyle.Render(fmt.Sprintf("%*d. ", rankWidth, rank)),
		teamStyle.Render(g.Home+" "),
		scoreStyle.Render(fmt.Sprint(g.HomeScore)),
		teamStyle.Render(" - "+g.Away+" "),
		scoreStyle.Render(fmt.Sprint(g.AwayScore)),
	)
}
