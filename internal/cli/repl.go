// Package cli provides the line-oriented front ends of the scoreboard: the
// interactive REPL, the script runner and the summary printer.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agbru/scoreboard/internal/command"
	"github.com/agbru/scoreboard/internal/scoreboard"
	"github.com/agbru/scoreboard/internal/ui"
)

// DefaultPrompt is printed before each REPL input line.
const DefaultPrompt = "score> "

// Scoreboard is the board surface the line front ends need.
type Scoreboard interface {
	command.Board
	Summary() []scoreboard.Game
}

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Prompt replaces DefaultPrompt when non-empty.
	Prompt string
	// AutoSummary prints the summary after every accepted mutation.
	AutoSummary bool
}

// REPL is an interactive scoreboard session.
type REPL struct {
	config REPLConfig
	board  Scoreboard
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a REPL reading stdin and writing stdout.
func NewREPL(board Scoreboard, config REPLConfig) *REPL {
	if config.Prompt == "" {
		config.Prompt = DefaultPrompt
	}
	return &REPL{
		config: config,
		board:  board,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start runs the session until "exit" or end of input.
func (r *REPL) Start() {
	r.printBanner()
	fmt.Fprintln(r.out, command.Help)
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorAccent()+r.config.Prompt+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			DisplayError(r.out, fmt.Errorf("read error: %w", err))
			return
		}
		if strings.TrimSpace(input) != "" && !r.processCommand(input) {
			return
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════╗%s\n", ui.ColorAccent(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s⚽ Live Scoreboard - Interactive Mode%s     %s║%s\n",
		ui.ColorAccent(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorAccent(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════╝%s\n\n", ui.ColorAccent(), ui.ColorReset())
}

// processCommand parses and executes one line.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	cmd, err := command.Parse(input)
	if err != nil {
		fmt.Fprintln(r.out, ui.Paint(ui.ColorYellow(), err.Error()))
		return true
	}

	if cmd.Mutates() {
		r.apply(cmd)
		return true
	}

	switch cmd.Kind {
	case command.KindExit:
		fmt.Fprintln(r.out, "Goodbye!")
		return false
	case command.KindHelp:
		fmt.Fprintln(r.out, command.Help)
	case command.KindSummary:
		DisplaySummary(r.out, r.board.Summary())
	}
	return true
}

// apply runs a board mutation and reports its outcome.
func (r *REPL) apply(cmd command.Command) {
	if err := cmd.Apply(r.board); err != nil {
		DisplayError(r.out, err)
		return
	}
	DisplayAccepted(r.out, cmd)
	if r.config.AutoSummary {
		DisplaySummary(r.out, r.board.Summary())
	}
}
