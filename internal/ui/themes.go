package ui

import (
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is an ANSI color scheme for line-oriented output.
type Theme struct {
	// Name is the identifier used by --theme.
	Name string
	// Accent highlights the prompt, banners and the leading game.
	Accent string
	// Muted is used for ranks, hints and secondary text.
	Muted string
	// Score colors score values.
	Score string
	// Success marks accepted operations.
	Success string
	// Warning marks recoverable problems such as syntax errors.
	Warning string
	// Error marks rejected operations.
	Error string
	// Team colors team names.
	Team string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

// TUITheme is the lipgloss palette of the TUI dashboard.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Score   lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

// palette pairs the ANSI theme with its TUI counterpart.
type palette struct {
	line Theme
	tui  TUITheme
}

var palettes = map[string]palette{
	"dark": {
		line: Theme{
			Name:      "dark",
			Accent:    "\033[38;5;39m",  // Bright blue
			Muted:     "\033[38;5;245m", // Grey
			Score:     "\033[38;5;220m", // Yellow
			Success:   "\033[38;5;82m",  // Bright green
			Warning:   "\033[38;5;214m", // Light orange
			Error:     "\033[38;5;196m", // Red
			Team:      "\033[38;5;255m", // White
			Bold:      "\033[1m",
			Underline: "\033[4m",
			Reset:     "\033[0m",
		},
		tui: TUITheme{
			Text:    lipgloss.Color("#E0E0E0"),
			Border:  lipgloss.Color("#2E86DE"),
			Accent:  lipgloss.Color("#54A0FF"),
			Score:   lipgloss.Color("#FECA57"),
			Success: lipgloss.Color("#9ECE6A"),
			Error:   lipgloss.Color("#FF4444"),
			Dim:     lipgloss.Color("#666666"),
		},
	},
	"light": {
		line: Theme{
			Name:      "light",
			Accent:    "\033[38;5;27m",  // Dark blue
			Muted:     "\033[38;5;240m", // Dark grey
			Score:     "\033[38;5;130m", // Brown
			Success:   "\033[38;5;28m",  // Dark green
			Warning:   "\033[38;5;166m", // Dark orange
			Error:     "\033[38;5;124m", // Dark red
			Team:      "\033[38;5;232m", // Black
			Bold:      "\033[1m",
			Underline: "\033[4m",
			Reset:     "\033[0m",
		},
		tui: TUITheme{
			Text:    lipgloss.Color("#1E1E1E"),
			Border:  lipgloss.Color("#1B4F9C"),
			Accent:  lipgloss.Color("#1B4F9C"),
			Score:   lipgloss.Color("#9C5B00"),
			Success: lipgloss.Color("#2E7D32"),
			Error:   lipgloss.Color("#B71C1C"),
			Dim:     lipgloss.Color("#8A8A8A"),
		},
	},
	"orange": {
		line: Theme{
			Name:      "orange",
			Accent:    "\033[38;5;208m", // Orange
			Muted:     "\033[38;5;245m", // Grey
			Score:     "\033[38;5;214m", // Light orange
			Success:   "\033[38;5;82m",  // Bright green
			Warning:   "\033[38;5;220m", // Yellow
			Error:     "\033[38;5;196m", // Red
			Team:      "\033[38;5;255m", // White
			Bold:      "\033[1m",
			Underline: "\033[4m",
			Reset:     "\033[0m",
		},
		tui: TUITheme{
			Text:    lipgloss.Color("#E0E0E0"),
			Border:  lipgloss.Color("#FF6600"),
			Accent:  lipgloss.Color("#FF8C00"),
			Score:   lipgloss.Color("#FFB347"),
			Success: lipgloss.Color("#9ECE6A"),
			Error:   lipgloss.Color("#FF4444"),
			Dim:     lipgloss.Color("#666666"),
		},
	},
	"none": {
		line: Theme{Name: "none"},
		tui: TUITheme{
			Text:    lipgloss.NoColor{},
			Border:  lipgloss.NoColor{},
			Accent:  lipgloss.NoColor{},
			Score:   lipgloss.NoColor{},
			Success: lipgloss.NoColor{},
			Error:   lipgloss.NoColor{},
			Dim:     lipgloss.NoColor{},
		},
	},
}

// DefaultTheme is used for unknown theme names.
const DefaultTheme = "dark"

var (
	themeMutex sync.RWMutex
	current    = palettes[DefaultTheme]
)

// ThemeNames returns the names accepted by SetTheme, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GetCurrentTheme returns the active ANSI theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return current.line
}

// GetCurrentTUITheme returns the lipgloss palette of the active theme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return current.tui
}

// SetTheme activates the named theme. Unknown names select DefaultTheme.
func SetTheme(name string) {
	p, ok := palettes[name]
	if !ok {
		p = palettes[DefaultTheme]
	}
	themeMutex.Lock()
	current = p
	themeMutex.Unlock()
}

// InitTheme activates the named theme unless colors are disabled by noColor
// or by the NO_COLOR environment variable (https://no-color.org/), in which
// case the "none" theme is used.
func InitTheme(name string, noColor bool) {
	if noColor {
		SetTheme("none")
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetTheme("none")
		return
	}
	SetTheme(name)
}
