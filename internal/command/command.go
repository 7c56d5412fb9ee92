// Package command implements the line-oriented command language shared by the
// interactive REPL, the script runner and the TUI input line.
//
//	start <Home> <Away>
//	finish <Home> <Away>                         (alias: end)
//	update <Home> <homeScore> <Away> <awayScore> (alias: score)
//	summary                                      (aliases: sum, ls)
//	help                                         (aliases: h, ?)
//	exit                                         (aliases: quit, q)
//
// Keywords are case-insensitive. Team names are passed through verbatim; the
// scoreboard decides whether they are valid. Blank lines and lines starting
// with '#' parse to an empty Command.
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the command keyword after alias resolution.
type Kind string

// Command kinds. KindNone is the zero value, produced for blank and comment lines.
const (
	KindNone    Kind = ""
	KindStart   Kind = "start"
	KindFinish  Kind = "finish"
	KindUpdate  Kind = "update"
	KindSummary Kind = "summary"
	KindHelp    Kind = "help"
	KindExit    Kind = "exit"
)

var aliases = map[string]Kind{
	"start":   KindStart,
	"finish":  KindFinish,
	"end":     KindFinish,
	"update":  KindUpdate,
	"score":   KindUpdate,
	"summary": KindSummary,
	"sum":     KindSummary,
	"ls":      KindSummary,
	"help":    KindHelp,
	"h":       KindHelp,
	"?":       KindHelp,
	"exit":    KindExit,
	"quit":    KindExit,
	"q":       KindExit,
}

// usage holds the argument synopsis of each keyword, reused in error messages.
var usage = map[Kind]string{
	KindStart:   "start <Home> <Away>",
	KindFinish:  "finish <Home> <Away>",
	KindUpdate:  "update <Home> <homeScore> <Away> <awayScore>",
	KindSummary: "summary",
	KindHelp:    "help",
	KindExit:    "exit",
}

// Help is the command reference printed by the front ends.
const Help = `Commands:
  start <Home> <Away>                          Start a new game at 0 - 0
  finish <Home> <Away>                         Finish a game in progress (alias: end)
  update <Home> <homeScore> <Away> <awayScore> Set both scores (alias: score)
  summary                                      Show games in progress (aliases: sum, ls)
  help                                         Show this help (aliases: h, ?)
  exit                                         Leave (aliases: quit, q)

Team names are one or more capitalised words joined together, e.g. Spain, SouthAfrica.
Scores range from 0 to 19.`

// Command is a parsed line.
type Command struct {
	Kind      Kind
	Home      string
	Away      string
	HomeScore int
	AwayScore int
}

// Empty reports whether c came from a blank or comment line.
func (c Command) Empty() bool { return c.Kind == KindNone }

// Mutates reports whether applying c can change a board.
func (c Command) Mutates() bool {
	switch c.Kind {
	case KindStart, KindFinish, KindUpdate:
		return true
	}
	return false
}

// String renders c in canonical form, e.g. "update Spain 1 Brazil 0".
func (c Command) String() string {
	switch c.Kind {
	case KindStart, KindFinish:
		return fmt.Sprintf("%s %s %s", c.Kind, c.Home, c.Away)
	case KindUpdate:
		return fmt.Sprintf("%s %s %d %s %d", c.Kind, c.Home, c.HomeScore, c.Away, c.AwayScore)
	}
	return string(c.Kind)
}

// Board is the part of the scoreboard a Command mutates.
type Board interface {
	Start(home, away string) error
	Finish(home, away string) error
	UpdateScore(home string, homeScore int, away string, awayScore int) error
}

// Apply executes c against b and returns the board's error unchanged.
// Non-mutating commands are no-ops that return nil.
func (c Command) Apply(b Board) error {
	switch c.Kind {
	case KindStart:
		return b.Start(c.Home, c.Away)
	case KindFinish:
		return b.Finish(c.Home, c.Away)
	case KindUpdate:
		return b.UpdateScore(c.Home, c.HomeScore, c.Away, c.AwayScore)
	}
	return nil
}

// SyntaxError reports a line that does not form a valid command.
type SyntaxError struct {
	// Input is the offending line, trimmed.
	Input string
	// Msg describes the problem.
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

// Parse parses one line of input.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{}, nil
	}

	fields := strings.Fields(line)
	keyword := strings.ToLower(fields[0])
	kind, ok := aliases[keyword]
	if !ok {
		return Command{}, &SyntaxError{Input: line, Msg: fmt.Sprintf("unknown command %q (type 'help')", fields[0])}
	}
	args := fields[1:]

	arity := map[Kind]int{KindStart: 2, KindFinish: 2, KindUpdate: 4}[kind]
	if len(args) != arity {
		return Command{}, &SyntaxError{
			Input: line,
			Msg:   fmt.Sprintf("%s expects %d argument(s), got %d (usage: %s)", kind, arity, len(args), usage[kind]),
		}
	}

	cmd := Command{Kind: kind}
	switch kind {
	case KindStart, KindFinish:
		cmd.Home, cmd.Away = args[0], args[1]
	case KindUpdate:
		cmd.Home, cmd.Away = args[0], args[2]
		var err error
		if cmd.HomeScore, err = parseScore(line, args[1]); err != nil {
			return Command{}, err
		}
		if cmd.AwayScore, err = parseScore(line, args[3]); err != nil {
			return Command{}, err
		}
	}
	return cmd, nil
}

func parseScore(line, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &SyntaxError{Input: line, Msg: fmt.Sprintf("score %q is not an integer (usage: %s)", s, usage[KindUpdate])}
	}
	return n, nil
}
