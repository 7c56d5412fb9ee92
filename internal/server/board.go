//go:generate mockgen -source=board.go -destination=mocks/mock_board.go -package=mocks

package server

import "github.com/agbru/scoreboard/internal/scoreboard"

// Board is the scoreboard surface served by the API. *scoreboard.Board
// implements it.
type Board interface {
	Start(home, away string) error
	Finish(home, away string) error
	UpdateScore(home string, homeScore int, away string, awayScore int) error
	Summary() []scoreboard.Game
	Game(home, away string) (scoreboard.Game, bool)
}

var _ Board = (*scoreboard.Board)(nil)
