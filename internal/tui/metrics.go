package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/scoreboard/internal/format"
	"github.com/agbru/scoreboard/internal/metrics"
	"github.com/agbru/scoreboard/internal/scoreboard"
	"github.com/agbru/scoreboard/internal/sysmon"
)

// activityWindow is the number of refresh ticks kept per activity series.
const activityWindow = 120

// ClientCounter reports the number of connected live-feed clients.
// *server.Hub satisfies it.
type ClientCounter interface {
	ClientCount() int
}

// StatsModel renders the activity panel: goal and game history sparklines,
// live-feed clients, host load and a runtime footprint reading.
type StatsModel struct {
	goals   *RingBuffer
	games   *RingBuffer
	cpu     *RingBuffer
	mem     *RingBuffer
	system  sysmon.Stats
	runtime metrics.RuntimeSnapshot
	clients ClientCounter
	width   int
	height  int
}

// NewStatsModel creates the activity panel. clients may be nil when no live
// feed is running.
func NewStatsModel(clients ClientCounter) StatsModel {
	return StatsModel{
		goals:   NewRingBuffer(activityWindow),
		games:   NewRingBuffer(activityWindow),
		cpu:     NewRingBuffer(activityWindow),
		mem:     NewRingBuffer(activityWindow),
		clients: clients,
	}
}

// Record pushes one sample of the board totals.
func (s *StatsModel) Record(games []scoreboard.Game) {
	goals := 0
	for _, g := range games {
		goals += g.Total()
	}
	s.goals.Push(float64(goals))
	s.games.Push(float64(len(games)))
}

// SetRuntime stores the latest runtime reading.
func (s *StatsModel) SetRuntime(snap metrics.RuntimeSnapshot) {
	s.runtime = snap
}

// SetSystem stores a host load reading. Unavailable readings are ignored.
func (s *StatsModel) SetSystem(st sysmon.Stats) {
	if !st.Available {
		return
	}
	s.system = st
	s.cpu.Push(st.CPUPercent)
	s.mem.Push(st.MemPercent)
}

// SetSize updates the panel dimensions, borders included. The history
// buffers shrink or grow to the sparkline width, keeping the newest samples.
func (s *StatsModel) SetSize(w, h int) {
	s.width = w
	s.height = h
	if sw := s.sparkWidth(); sw > 0 {
		for _, series := range []*RingBuffer{s.goals, s.games, s.cpu, s.mem} {
			series.Resize(sw)
		}
	}
}

// sparkWidth is the room left for a sparkline after the label and value.
func (s StatsModel) sparkWidth() int {
	w := s.width - 4 - 18
	if w < 0 {
		w = 0
	}
	return w
}

// View renders the panel.
func (s StatsModel) View() string {
	lines := []string{
		panelTitleStyle.Render("Activity"),
		s.seriesRow("Goals", s.goals),
		s.seriesRow("Games", s.games),
	}
	if s.clients != nil {
		lines = append(lines, metricRow("Live clients", fmt.Sprint(s.clients.ClientCount())))
	}
	if s.cpu.Len() > 0 {
		lines = append(lines,
			s.percentRow("CPU", s.cpu),
			s.percentRow("Memory", s.mem),
		)
	}
	lines = append(lines,
		metricRow("Heap", format.FormatBytes(s.runtime.HeapAlloc)),
		metricRow("Goroutines", fmt.Sprint(s.runtime.Goroutines)),
		metricRow("GC cycles", fmt.Sprint(s.runtime.NumGC)),
	)

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

func (s StatsModel) seriesRow(label string, series *RingBuffer) string {
	row := metricRow(label, fmt.Sprint(int(series.Last())))
	values := series.Slice()
	if sw := s.sparkWidth(); len(values) > sw {
		values = values[len(values)-sw:]
	}
	if len(values) == 0 {
		return row
	}
	return row + " " + sparklineStyle.Render(RenderSparkline(values, series.Max()))
}

func (s StatsModel) percentRow(label string, series *RingBuffer) string {
	row := metricRow(label, fmt.Sprintf("%.0f%%", series.Last()))
	values := series.Slice()
	if sw := s.sparkWidth(); len(values) > sw {
		values = values[len(values)-sw:]
	}
	return row + " " + loadSparklineStyle.Render(RenderSparkline(values, 100))
}

func metricRow(label, value string) string {
	return metricLabelStyle.Render(fmt.Sprintf("%-13s", label)) + metricValueStyle.Render(fmt.Sprintf("%4s", value))
}
