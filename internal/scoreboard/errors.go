package scoreboard

import (
	"errors"
	"fmt"
)

// Sentinel errors for the four ways a board operation can be rejected.
// The typed errors below wrap them, so callers can match with errors.Is and
// still reach the offending values with errors.As.
var (
	ErrInvalidTeamName = errors.New("invalid team name")
	ErrAlreadyExists   = errors.New("already exists")
	ErrDoesNotExist    = errors.New("does not exist")
	ErrInvalidScore    = errors.New("invalid score")
)

// TeamNameError reports a team name that fails the name rule.
type TeamNameError struct {
	// Name is the rejected value, verbatim.
	Name string
}

// Error returns a message naming the rejected team.
func (e *TeamNameError) Error() string {
	return fmt.Sprintf("team name [%s] is not valid", e.Name)
}

// Unwrap returns ErrInvalidTeamName.
func (e *TeamNameError) Unwrap() error { return ErrInvalidTeamName }

// GameError reports a fixture that is in the wrong state for the requested
// operation. Err is either ErrAlreadyExists or ErrDoesNotExist.
type GameError struct {
	Home string
	Away string
	Err  error
}

// Error returns a message naming the fixture, e.g. "game Spain - Brazil already exists".
func (e *GameError) Error() string {
	return fmt.Sprintf("game %s - %s %v", e.Home, e.Away, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *GameError) Unwrap() error { return e.Err }

// ScoreError reports a score outside [MinScore, MaxScore].
type ScoreError struct {
	Score int
}

// Error returns a message naming the rejected score.
func (e *ScoreError) Error() string {
	return fmt.Sprintf("score [%d] is not valid", e.Score)
}

// Unwrap returns ErrInvalidScore.
func (e *ScoreError) Unwrap() error { return ErrInvalidScore }

// Machine-readable rejection codes returned by Code.
const (
	CodeInvalidTeamName = "invalid_team_name"
	CodeAlreadyExists   = "already_exists"
	CodeDoesNotExist    = "does_not_exist"
	CodeInvalidScore    = "invalid_score"
)

// Code classifies err by the sentinel it wraps. It returns "" for nil and for
// errors that did not come from a Board.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidTeamName):
		return CodeInvalidTeamName
	case errors.Is(err, ErrAlreadyExists):
		return CodeAlreadyExists
	case errors.Is(err, ErrDoesNotExist):
		return CodeDoesNotExist
	case errors.Is(err, ErrInvalidScore):
		return CodeInvalidScore
	}
	return ""
}
