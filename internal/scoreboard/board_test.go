package scoreboard

import (
	"errors"
	"reflect"
	"testing"
)

// invalidTeamNames mirrors the names rejected by the name rule, including the
// empty string that stands in for a missing value.
var invalidTeamNames = []string{"", "  ", ".", "-", "[", "spain", "South Africa", "SPAIN", "Spain1", "S"}

var invalidScores = []int{-5, -1, 20, 100}

func mustStart(t *testing.T, b *Board, home, away string) {
	t.Helper()
	if err := b.Start(home, away); err != nil {
		t.Fatalf("Start(%q, %q) error = %v", home, away, err)
	}
}

func mustUpdate(t *testing.T, b *Board, home string, hs int, away string, as int) {
	t.Helper()
	if err := b.UpdateScore(home, hs, away, as); err != nil {
		t.Fatalf("UpdateScore(%q, %d, %q, %d) error = %v", home, hs, away, as, err)
	}
}

func TestBoard_StartGame(t *testing.T) {
	t.Parallel()
	b := New()

	mustStart(t, b, "Mexico", "Canada")

	got := b.Summary()
	want := []Game{{Home: "Mexico", Away: "Canada"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summary() = %v, want %v", got, want)
	}
}

func TestBoard_StartGameAlreadyExists(t *testing.T) {
	t.Parallel()
	b := New()
	mustStart(t, b, "Mexico", "Canada")

	err := b.Start("Mexico", "Canada")

	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("Start() error = %v, want ErrAlreadyExists", err)
	}
	if got, want := err.Error(), "game Mexico - Canada already exists"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	var gameErr *GameError
	if !errors.As(err, &gameErr) || gameErr.Home != "Mexico" || gameErr.Away != "Canada" {
		t.Errorf("errors.As(*GameError) = %+v", gameErr)
	}
	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
}

func TestBoard_OrientationIsSignificant(t *testing.T) {
	t.Parallel()
	b := New()
	mustStart(t, b, "Mexico", "Canada")
	mustStart(t, b, "Canada", "Mexico")

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	if err := b.Finish("Canada", "Mexico"); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if _, ok := b.Game("Mexico", "Canada"); !ok {
		t.Error("Mexico - Canada should still be active")
	}
}

func TestBoard_InvalidTeamName(t *testing.T) {
	t.Parallel()

	ops := []struct {
		name string
		call func(b *Board, home, away string) error
	}{
		{"Start", func(b *Board, home, away string) error { return b.Start(home, away) }},
		{"Finish", func(b *Board, home, away string) error { return b.Finish(home, away) }},
		{"UpdateScore", func(b *Board, home, away string) error { return b.UpdateScore(home, 1, away, 2) }},
	}

	for _, op := range ops {
		for _, bad := range invalidTeamNames {
			t.Run(op.name+"/home="+bad, func(t *testing.T) {
				t.Parallel()
				assertTeamNameError(t, op.call(New(), bad, "Canada"), bad)
			})
			t.Run(op.name+"/away="+bad, func(t *testing.T) {
				t.Parallel()
				assertTeamNameError(t, op.call(New(), "Mexico", bad), bad)
			})
		}
	}
}

func assertTeamNameError(t *testing.T, err error, name string) {
	t.Helper()
	if !errors.Is(err, ErrInvalidTeamName) {
		t.Fatalf("error = %v, want ErrInvalidTeamName", err)
	}
	var nameErr *TeamNameError
	if !errors.As(err, &nameErr) || nameErr.Name != name {
		t.Fatalf("errors.As(*TeamNameError) = %+v, want name %q", nameErr, name)
	}
	if want := "team name [" + name + "] is not valid"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestBoard_HomeNameCheckedBeforeAway(t *testing.T) {
	t.Parallel()
	err := New().Start("bad", "-")

	var nameErr *TeamNameError
	if !errors.As(err, &nameErr) || nameErr.Name != "bad" {
		t.Errorf("Start() error = %v, want home name reported", err)
	}
}

func TestBoard_FinishGame(t *testing.T) {
	t.Parallel()
	b := New()
	mustStart(t, b, "Mexico", "Canada")

	if err := b.Finish("Mexico", "Canada"); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if got := b.Summary(); len(got) != 0 {
		t.Errorf("Summary() = %v, want empty", got)
	}
}

func TestBoard_DoesNotExist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(b *Board) error
	}{
		{"Finish", func(b *Board) error { return b.Finish("Mexico", "Canada") }},
		{"UpdateScore", func(b *Board) error { return b.UpdateScore("Mexico", 1, "Canada", 2) }},
		// existence is checked before scores
		{"UpdateScore with invalid scores", func(b *Board) error { return b.UpdateScore("Mexico", -1, "Canada", 99) }},
		{"Finish after Finish", func(b *Board) error {
			if err := b.Start("Mexico", "Canada"); err != nil {
				return err
			}
			if err := b.Finish("Mexico", "Canada"); err != nil {
				return err
			}
			return b.Finish("Mexico", "Canada")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.call(New())
			if !errors.Is(err, ErrDoesNotExist) {
				t.Fatalf("error = %v, want ErrDoesNotExist", err)
			}
			if want := "game Mexico - Canada does not exist"; err.Error() != want {
				t.Errorf("Error() = %q, want %q", err.Error(), want)
			}
		})
	}
}

func TestBoard_UpdateScore(t *testing.T) {
	t.Parallel()
	b := New()
	mustStart(t, b, "Mexico", "Canada")

	mustUpdate(t, b, "Mexico", 1, "Canada", 2)

	got, ok := b.Game("Mexico", "Canada")
	if !ok {
		t.Fatal("Game() not found")
	}
	want := Game{Home: "Mexico", Away: "Canada", HomeScore: 1, AwayScore: 2}
	if got != want {
		t.Errorf("Game() = %v, want %v", got, want)
	}
}

func TestBoard_UpdateScoreInvalid(t *testing.T) {
	t.Parallel()

	for _, score := range invalidScores {
		for _, side := range []string{"home", "away"} {
			t.Run(side, func(t *testing.T) {
				t.Parallel()
				b := New()
				mustStart(t, b, "Mexico", "Canada")
				mustUpdate(t, b, "Mexico", 3, "Canada", 4)

				hs, as := 1, 2
				if side == "home" {
					hs = score
				} else {
					as = score
				}
				err := b.UpdateScore("Mexico", hs, "Canada", as)

				var scoreErr *ScoreError
				if !errors.As(err, &scoreErr) || scoreErr.Score != score {
					t.Fatalf("UpdateScore() error = %v, want ScoreError{%d}", err, score)
				}
				if !errors.Is(err, ErrInvalidScore) {
					t.Errorf("error should match ErrInvalidScore")
				}
				got, _ := b.Game("Mexico", "Canada")
				if got.HomeScore != 3 || got.AwayScore != 4 {
					t.Errorf("score mutated on rejection: %v", got)
				}
			})
		}
	}
}

func TestBoard_HomeScoreCheckedBeforeAway(t *testing.T) {
	t.Parallel()
	b := New()
	mustStart(t, b, "Mexico", "Canada")

	err := b.UpdateScore("Mexico", 20, "Canada", -1)

	if want := "score [20] is not valid"; err == nil || err.Error() != want {
		t.Errorf("UpdateScore() error = %v, want %q", err, want)
	}
}

func TestBoard_ScoreBounds(t *testing.T) {
	t.Parallel()
	b := New()
	mustStart(t, b, "Mexico", "Canada")

	mustUpdate(t, b, "Mexico", MinScore, "Canada", MaxScore)
	mustUpdate(t, b, "Mexico", MaxScore, "Canada", MinScore)
}

func TestBoard_GetSummaryOfTotalScoreGames(t *testing.T) {
	t.Parallel()
	b := New()
	mustStart(t, b, "Uruguay", "Italy")
	mustStart(t, b, "Spain", "Brazil")
	mustStart(t, b, "Mexico", "Canada")
	mustStart(t, b, "Argentina", "Australia")
	mustStart(t, b, "Germany", "France")

	mustUpdate(t, b, "Mexico", 0, "Canada", 5)
	mustUpdate(t, b, "Spain", 10, "Brazil", 2)
	mustUpdate(t, b, "Germany", 2, "France", 2)
	mustUpdate(t, b, "Uruguay", 6, "Italy", 6)
	mustUpdate(t, b, "Argentina", 3, "Australia", 1)

	want := []Game{
		{Home: "Uruguay", Away: "Italy", HomeScore: 6, AwayScore: 6},
		{Home: "Spain", Away: "Brazil", HomeScore: 10, AwayScore: 2},
		{Home: "Mexico", Away: "Canada", HomeScore: 0, AwayScore: 5},
		{Home: "Argentina", Away: "Australia", HomeScore: 3, AwayScore: 1},
		{Home: "Germany", Away: "France", HomeScore: 2, AwayScore: 2},
	}
	if got := b.Summary(); !reflect.DeepEqual(got, want) {
		t.Errorf("Summary() =\n  %v\nwant\n  %v", got, want)
	}
}

func TestBoard_SummaryTieBreakByStartOrder(t *testing.T) {
	t.Parallel()
	b := New()
	mustStart(t, b, "Spain", "Brazil")
	mustStart(t, b, "Mexico", "Canada")

	got := b.Summary()
	if got[0].Home != "Mexico" || got[1].Home != "Spain" {
		t.Errorf("Summary() = %v, most recently started first", got)
	}

	// Re-posting the same score still counts as the most recent change.
	mustUpdate(t, b, "Spain", 0, "Brazil", 0)
	if got := b.Summary(); got[0].Home != "Spain" {
		t.Errorf("Summary() = %v, Spain should rank first after update", got)
	}
}

func TestBoard_SummaryIsSnapshot(t *testing.T) {
	t.Parallel()
	b := New()
	mustStart(t, b, "Spain", "Brazil")
	mustUpdate(t, b, "Spain", 1, "Brazil", 0)

	before := b.Summary()
	mustUpdate(t, b, "Spain", 5, "Brazil", 5)
	mustStart(t, b, "Mexico", "Canada")

	want := []Game{{Home: "Spain", Away: "Brazil", HomeScore: 1, AwayScore: 0}}
	if !reflect.DeepEqual(before, want) {
		t.Errorf("earlier snapshot changed: %v", before)
	}

	before[0].HomeScore = 19
	if got, _ := b.Game("Spain", "Brazil"); got.HomeScore != 5 {
		t.Errorf("editing a snapshot leaked into the board: %v", got)
	}
}

func TestBoard_Observer(t *testing.T) {
	t.Parallel()
	var events []Event
	b := New(WithObserver(ObserverFunc(func(e Event) { events = append(events, e) })))

	mustStart(t, b, "Spain", "Brazil")
	mustUpdate(t, b, "Spain", 2, "Brazil", 1)
	_ = b.Start("Spain", "Brazil")
	if err := b.Finish("Spain", "Brazil"); err != nil {
		t.Fatal(err)
	}

	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if events[0].Op != OpStart || !events[0].Accepted() {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[1].Op != OpUpdate || events[1].Previous.Total() != 0 || events[1].Game.Total() != 3 {
		t.Errorf("events[1] = %+v", events[1])
	}
	if events[2].Accepted() || !errors.Is(events[2].Err, ErrAlreadyExists) {
		t.Errorf("events[2] = %+v", events[2])
	}
	if events[3].Op != OpFinish || events[3].Game.HomeScore != 2 {
		t.Errorf("events[3] = %+v, want final score", events[3])
	}
}

func TestBoard_ObserverRevisionAndActive(t *testing.T) {
	t.Parallel()
	var events []Event
	b := New(WithObserver(ObserverFunc(func(e Event) { events = append(events, e) })))

	mustStart(t, b, "Mexico", "Canada")
	mustStart(t, b, "Spain", "Brazil")
	_ = b.UpdateScore("Spain", 25, "Brazil", 0)
	mustUpdate(t, b, "Spain", 1, "Brazil", 0)
	if err := b.Finish("Mexico", "Canada"); err != nil {
		t.Fatal(err)
	}

	want := []struct {
		revision uint64
		active   int
	}{{1, 1}, {2, 2}, {0, 0}, {3, 2}, {4, 1}}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, w := range want {
		if events[i].Revision != w.revision || events[i].Active != w.active {
			t.Errorf("events[%d] revision/active = %d/%d, want %d/%d",
				i, events[i].Revision, events[i].Active, w.revision, w.active)
		}
	}
}

func TestValidTeamName(t *testing.T) {
	t.Parallel()
	valid := []string{"Spain", "SouthAfrica", "Uruguay", "Türkiye", "NewZealand"}
	for _, name := range valid {
		if !ValidTeamName(name) {
			t.Errorf("ValidTeamName(%q) = false, want true", name)
		}
	}
	for _, name := range invalidTeamNames {
		if ValidTeamName(name) {
			t.Errorf("ValidTeamName(%q) = true, want false", name)
		}
	}
}
