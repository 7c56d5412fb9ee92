package scoreboard

import "fmt"

// Fixture identifies a game by its ordered (home, away) pair.
// Orientation matters: Fixture{"Spain", "Brazil"} and Fixture{"Brazil", "Spain"}
// are different fixtures.
type Fixture struct {
	Home string
	Away string
}

// String returns "Home - Away".
func (f Fixture) String() string {
	return f.Home + " - " + f.Away
}

// Game is a snapshot of one active fixture and its score.
type Game struct {
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
}

// Key returns the fixture identity of g.
func (g Game) Key() Fixture {
	return Fixture{Home: g.Home, Away: g.Away}
}

// Total returns the sum of both scores, the primary summary sort key.
func (g Game) Total() int {
	return g.HomeScore + g.AwayScore
}

// String returns "Home 1 - Away 2".
func (g Game) String() string {
	return fmt.Sprintf("%s %d - %s %d", g.Home, g.HomeScore, g.Away, g.AwayScore)
}
