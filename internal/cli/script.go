package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/agbru/scoreboard/internal/command"
)

// ScriptError reports the first failing line of a script.
type ScriptError struct {
	// Line is the 1-based line number.
	Line int
	// Input is the line as read.
	Input string
	// Err is a *command.SyntaxError or the board's rejection.
	Err error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying syntax or board error.
func (e *ScriptError) Unwrap() error { return e.Err }

// RunScript executes commands from r against board, one per line. Summary
// and help output goes to out. Execution stops at "exit" or at the first line
// that fails to parse or is rejected by the board; that failure is returned
// as a *ScriptError and earlier lines stay applied.
func RunScript(r io.Reader, board Scoreboard, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		cmd, err := command.Parse(line)
		if err != nil {
			return &ScriptError{Line: lineNo, Input: line, Err: err}
		}

		switch cmd.Kind {
		case command.KindNone:
		case command.KindExit:
			return nil
		case command.KindHelp:
			fmt.Fprintln(out, command.Help)
		case command.KindSummary:
			DisplaySummary(out, board.Summary())
		default:
			if err := cmd.Apply(board); err != nil {
				return &ScriptError{Line: lineNo, Input: line, Err: err}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return nil
}
