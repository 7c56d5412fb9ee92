package tui

import (
	"strings"
	"testing"

	"github.com/agbru/scoreboard/internal/metrics"
	"github.com/agbru/scoreboard/internal/scoreboard"
	"github.com/agbru/scoreboard/internal/sysmon"
)

type fixedClients int

func (f fixedClients) ClientCount() int { return int(f) }

func TestHeaderModel_View(t *testing.T) {
	h := NewHeaderModel("v2.0.0")
	h.SetWidth(80)
	h.SetActive(2)

	view := h.View()
	for _, want := range []string{"Live Scoreboard v2.0.0", "2 games", "Session 00:0"} {
		if !strings.Contains(view, want) {
			t.Errorf("header %q should contain %q", view, want)
		}
	}
}

func TestHeaderModel_DevVersionHidden(t *testing.T) {
	h := NewHeaderModel("dev")
	h.SetWidth(80)
	h.SetActive(1)
	view := h.View()
	if strings.Contains(view, "dev") {
		t.Errorf("dev version should not be shown: %q", view)
	}
	if !strings.Contains(view, "1 game ") {
		t.Errorf("expected singular count in %q", view)
	}
}

func TestSummaryModel_Empty(t *testing.T) {
	s := NewSummaryModel()
	s.SetSize(50, 8)
	if !strings.Contains(s.View(), "No games in progress.") {
		t.Error("expected empty message")
	}
}

func TestSummaryModel_RanksAndRange(t *testing.T) {
	s := NewSummaryModel()
	s.SetSize(60, 4) // one visible row
	s.SetGames([]scoreboard.Game{
		{Home: "Uruguay", Away: "Italy", HomeScore: 6, AwayScore: 6},
		{Home: "Spain", Away: "Brazil", HomeScore: 10, AwayScore: 2},
	})

	view := s.View()
	if !strings.Contains(view, "1. Uruguay 6 - Italy 6") {
		t.Errorf("expected first ranked row in %q", view)
	}
	if !strings.Contains(view, "1-1 of 2") {
		t.Errorf("expected a range indicator in %q", view)
	}

	s.ScrollBy(1)
	view = s.View()
	if !strings.Contains(view, "2. Spain 10 - Brazil 2") || strings.Contains(view, "Uruguay") {
		t.Errorf("expected second row after scrolling in %q", view)
	}

	// Shrinking the snapshot pulls the offset back into range.
	s.SetGames(s.games[:1])
	if s.offset != 0 {
		t.Errorf("expected offset 0, got %d", s.offset)
	}
}

func TestStatsModel_Record(t *testing.T) {
	s := NewStatsModel(nil)
	s.Record([]scoreboard.Game{
		{Home: "Uruguay", Away: "Italy", HomeScore: 6, AwayScore: 6},
		{Home: "Spain", Away: "Brazil", HomeScore: 10, AwayScore: 2},
	})
	s.Record(nil)

	if s.goals.Len() != 2 || s.goals.Max() != 24 || s.goals.Last() != 0 {
		t.Errorf("unexpected goal series %v", s.goals.Slice())
	}
	if s.games.Max() != 2 {
		t.Errorf("unexpected game series %v", s.games.Slice())
	}
}

func TestStatsModel_View(t *testing.T) {
	s := NewStatsModel(fixedClients(3))
	s.SetSize(50, 10)
	s.SetRuntime(metrics.RuntimeSnapshot{HeapAlloc: 2 * 1024 * 1024, Goroutines: 7, NumGC: 4})
	s.Record([]scoreboard.Game{{Home: "Spain", Away: "Brazil", HomeScore: 1}})

	view := s.View()
	for _, want := range []string{"Activity", "Goals", "Live clients", "3", "2.0 MiB", "Goroutines"} {
		if !strings.Contains(view, want) {
			t.Errorf("stats view should contain %q", want)
		}
	}

	noFeed := NewStatsModel(nil)
	noFeed.SetSize(50, 10)
	if strings.Contains(noFeed.View(), "Live clients") {
		t.Error("live clients row should be hidden without a feed")
	}
}

func TestStatsModel_SetSystem(t *testing.T) {
	s := NewStatsModel(nil)
	s.SetSize(50, 12)

	s.SetSystem(sysmon.Stats{})
	if s.cpu.Len() != 0 || strings.Contains(s.View(), "CPU") {
		t.Error("unavailable readings should be ignored")
	}

	s.SetSystem(sysmon.Stats{CPUPercent: 37, MemPercent: 61, Available: true})
	view := s.View()
	for _, want := range []string{"CPU", "37%", "Memory", "61%"} {
		if !strings.Contains(view, want) {
			t.Errorf("stats view should contain %q", want)
		}
	}
}

func TestStatsModel_SetSizeResizesHistory(t *testing.T) {
	s := NewStatsModel(nil)
	for i := range 40 {
		s.Record(make([]scoreboard.Game, i%3))
	}

	s.SetSize(50, 10)
	want := s.sparkWidth()
	if s.games.Cap() != want || s.goals.Cap() != want {
		t.Fatalf("expected history capacity %d, got %d/%d", want, s.games.Cap(), s.goals.Cap())
	}
	if s.games.Len() != want {
		t.Errorf("expected the newest %d samples to be kept, got %d", want, s.games.Len())
	}
	if s.games.Last() != float64(39%3) {
		t.Errorf("expected newest sample %d, got %f", 39%3, s.games.Last())
	}
}
