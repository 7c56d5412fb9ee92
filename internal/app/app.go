// Package app wires configuration, the scoreboard and the front ends into the
// scoreboard command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agbru/scoreboard/internal/cli"
	"github.com/agbru/scoreboard/internal/config"
	apperrors "github.com/agbru/scoreboard/internal/errors"
	"github.com/agbru/scoreboard/internal/logging"
	"github.com/agbru/scoreboard/internal/scoreboard"
	"github.com/agbru/scoreboard/internal/tui"
	"github.com/agbru/scoreboard/internal/ui"
)

// Application represents the scoreboard application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	// In feeds the REPL and a "-" script. Defaults to os.Stdin.
	In     io.Reader
	Logger logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the reader used by the REPL and by "--script -".
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithLogger replaces the console logger built from --log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	programName := "scoreboard"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "scoreboard", logging.ParseLevel(cfg.LogLevel))
	}
	return app, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	switch {
	case a.Config.Script != "":
		return a.runScript(out)
	case a.Config.Serve:
		return a.runServe(ctx, out)
	case a.Config.TUI:
		return a.runTUI(ctx)
	default:
		return a.runREPL(out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// newBoard creates the scoreboard with the given observers attached.
func (a *Application) newBoard(logger logging.Logger, observers ...scoreboard.Observer) *scoreboard.Board {
	opts := []scoreboard.Option{scoreboard.WithLogger(logger)}
	for _, o := range observers {
		opts = append(opts, scoreboard.WithObserver(o))
	}
	return scoreboard.New(opts...)
}

// runScript executes a command file; "-" reads the application input.
func (a *Application) runScript(out io.Writer) int {
	var r io.Reader = a.In
	if a.Config.Script != "-" {
		f, err := os.Open(a.Config.Script)
		if err != nil {
			return a.fail(apperrors.NewConfigError("cannot open script: %v", err))
		}
		defer f.Close()
		r = f
	}

	board := a.newBoard(a.Logger)
	if err := cli.RunScript(r, board, out); err != nil {
		return a.fail(err)
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard on a fresh board.
func (a *Application) runTUI(ctx context.Context) int {
	// The dashboard owns the terminal; board debug output would tear it.
	board := a.newBoard(logging.NewNopLogger())
	if err := tui.Run(ctx, board, tui.Options{Version: Version}); err != nil {
		return a.fail(err)
	}
	return apperrors.ExitSuccess
}

// runREPL starts the line-oriented interactive session.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.newBoard(a.Logger), cli.REPLConfig{AutoSummary: true})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// fail reports err on the error writer and maps it to an exit code.
func (a *Application) fail(err error) int {
	fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	return apperrors.ExitCodeFor(err)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
