// Package config defines the application configuration and how it is
// assembled from command-line flags, SCOREBOARD_* environment variables and
// an optional YAML file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/scoreboard/internal/errors"
)

// EnvPrefix is prepended to every environment variable the configuration
// reads, e.g. SCOREBOARD_ADDR.
const EnvPrefix = "SCOREBOARD_"

// Default values for AppConfig.
const (
	DefaultAddr            = ":8080"
	DefaultLogLevel        = "info"
	DefaultTheme           = "dark"
	DefaultRateLimit       = 50.0
	DefaultRateBurst       = 100
	DefaultShutdownTimeout = 10 * time.Second
)

// Known values for enumerated options.
var (
	Themes      = []string{"dark", "light", "orange", "none"}
	LogLevels   = []string{"debug", "info", "warn", "error"}
	Completions = []string{"bash", "zsh", "fish"}
)

// AppConfig holds everything the application needs to start.
type AppConfig struct {
	// Addr is the listen address of the HTTP API in serve mode.
	Addr string
	// Serve starts the HTTP API and live feed.
	Serve bool
	// TUI starts the terminal dashboard (alone, or alongside the API).
	TUI bool
	// Script is a command file to execute non-interactively.
	Script string
	// ConfigFile is the YAML file the configuration was loaded from, if any.
	ConfigFile string
	// LogLevel is one of LogLevels.
	LogLevel string
	// NoColor disables ANSI colors.
	NoColor bool
	// Theme is one of Themes.
	Theme string
	// AllowedOrigins lists the CORS origins accepted by the API.
	AllowedOrigins []string
	// RateLimit is the sustained number of API requests per second.
	RateLimit float64
	// RateBurst is the maximum API request burst.
	RateBurst int
	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout time.Duration
	// Completion, when set, prints a shell completion script and exits.
	Completion string
}

// Default returns an AppConfig populated with default values.
func Default() AppConfig {
	return AppConfig{
		Addr:            DefaultAddr,
		LogLevel:        DefaultLogLevel,
		Theme:           DefaultTheme,
		AllowedOrigins:  []string{"*"},
		RateLimit:       DefaultRateLimit,
		RateBurst:       DefaultRateBurst,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// ParseConfig builds the configuration for programName from args.
//
// Resolution order, highest priority first:
//  1. command-line flags
//  2. SCOREBOARD_* environment variables
//  3. the YAML file named by --config / SCOREBOARD_CONFIG
//  4. defaults
//
// flag.ErrHelp is returned unchanged when -h/--help is given; every other
// failure is a apperrors.ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	cfg := Default()
	var origins string

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() { printUsage(fs, programName, errorWriter) }

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address in serve mode")
	fs.BoolVar(&cfg.Serve, "serve", false, "Serve the HTTP API and live feed")
	fs.BoolVar(&cfg.TUI, "tui", false, "Start the terminal dashboard")
	fs.StringVar(&cfg.Script, "script", "", "Execute commands from a file and exit")
	fs.StringVar(&cfg.Script, "s", "", "Shorthand for -script")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML configuration file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Color theme (dark, light, orange, none)")
	fs.StringVar(&origins, "origins", strings.Join(cfg.AllowedOrigins, ","), "Comma-separated CORS origins")
	fs.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "API requests per second")
	fs.IntVar(&cfg.RateBurst, "rate-burst", cfg.RateBurst, "API request burst size")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	fs.StringVar(&cfg.Completion, "completion", "", "Print shell completion script (bash, zsh, fish)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return cfg, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	cfg.AllowedOrigins = splitList(origins)

	if !isFlagSet(fs, "config") {
		cfg.ConfigFile = getEnvString("CONFIG", "")
	}
	if cfg.ConfigFile != "" {
		fc, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return cfg, err
		}
		fc.apply(&cfg, fs)
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints and enumerated values.
func (c AppConfig) Validate() error {
	if c.Serve && strings.TrimSpace(c.Addr) == "" {
		return apperrors.NewConfigError("--addr must not be empty in serve mode")
	}
	if c.Script != "" && (c.Serve || c.TUI) {
		return apperrors.NewConfigError("--script cannot be combined with --serve or --tui")
	}
	if c.RateLimit <= 0 {
		return apperrors.NewConfigError("--rate-limit must be positive, got %v", c.RateLimit)
	}
	if c.RateBurst < 1 {
		return apperrors.NewConfigError("--rate-burst must be at least 1, got %d", c.RateBurst)
	}
	if c.ShutdownTimeout <= 0 {
		return apperrors.NewConfigError("--shutdown-timeout must be positive, got %s", c.ShutdownTimeout)
	}
	if !slices.Contains(Themes, c.Theme) {
		return apperrors.NewConfigError("unknown theme %q (valid: %s)", c.Theme, strings.Join(Themes, ", "))
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.LogLevel)) {
		return apperrors.NewConfigError("unknown log level %q (valid: %s)", c.LogLevel, strings.Join(LogLevels, ", "))
	}
	if c.Completion != "" && !slices.Contains(Completions, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q (valid: %s)", c.Completion, strings.Join(Completions, ", "))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func printUsage(fs *flag.FlagSet, programName string, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [flags]\n\n", programName)
	fmt.Fprintf(w, "Tracks live scores of ongoing fixtures and prints a ranked summary.\n")
	fmt.Fprintf(w, "Without flags an interactive session is started.\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEvery flag can also be set with a %s<NAME> environment variable,\n", EnvPrefix)
	fmt.Fprintf(w, "e.g. %sADDR=:9090 or %sRATE_LIMIT=10.\n", EnvPrefix, EnvPrefix)
}
