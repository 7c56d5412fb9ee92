package ui

// ANSI escape accessors for the active theme. Each returns an empty string
// when colors are disabled, so callers can always wrap text as
// ColorX() + text + ColorReset().

func ColorAccent() string    { return GetCurrentTheme().Accent }
func ColorMuted() string     { return GetCurrentTheme().Muted }
func ColorScore() string     { return GetCurrentTheme().Score }
func ColorGreen() string     { return GetCurrentTheme().Success }
func ColorYellow() string    { return GetCurrentTheme().Warning }
func ColorRed() string       { return GetCurrentTheme().Error }
func ColorTeam() string      { return GetCurrentTheme().Team }
func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
func ColorReset() string     { return GetCurrentTheme().Reset }

// Paint wraps s in color and a reset sequence. With colors disabled it
// returns s unchanged.
func Paint(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset()
}
