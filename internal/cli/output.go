// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySummary], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatGame], [FormatSummary].

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/scoreboard/internal/command"
	"github.com/agbru/scoreboard/internal/scoreboard"
	"github.com/agbru/scoreboard/internal/ui"
)

// EmptySummaryMessage is printed when no game is in progress.
const EmptySummaryMessage = "No games in progress."

// FormatGame renders g as "Uruguay 6 - Italy 6" using the active theme.
func FormatGame(g scoreboard.Game) string {
	return fmt.Sprintf("%s %s - %s %s",
		ui.Paint(ui.ColorTeam(), g.Home), ui.Paint(ui.ColorScore(), strconv.Itoa(g.HomeScore)),
		ui.Paint(ui.ColorTeam(), g.Away), ui.Paint(ui.ColorScore(), strconv.Itoa(g.AwayScore)))
}

// FormatSummary renders games as a ranked list, one "N. game" per line,
// without a trailing newline. It returns EmptySummaryMessage for no games.
func FormatSummary(games []scoreboard.Game) string {
	if len(games) == 0 {
		return ui.Paint(ui.ColorMuted(), EmptySummaryMessage)
	}
	width := len(strconv.Itoa(len(games)))
	lines := make([]string, len(games))
	for i, g := range games {
		rank := fmt.Sprintf("%*d.", width, i+1)
		lines[i] = ui.Paint(ui.ColorMuted(), rank) + " " + FormatGame(g)
	}
	return strings.Join(lines, "\n")
}

// DisplaySummary writes the ranked summary followed by a newline.
func DisplaySummary(out io.Writer, games []scoreboard.Game) {
	fmt.Fprintln(out, FormatSummary(games))
}

// DisplayError writes a rejected operation or other failure.
func DisplayError(out io.Writer, err error) {
	fmt.Fprintln(out, ui.Paint(ui.ColorRed(), "✗ "+err.Error()))
}

// DisplayAccepted confirms an applied mutation.
func DisplayAccepted(out io.Writer, cmd command.Command) {
	fmt.Fprintln(out, ui.Paint(ui.ColorGreen(), "✓ "+cmd.String()))
}

// DisplayListening announces the HTTP API and live feed endpoints.
func DisplayListening(out io.Writer, addr string) {
	fmt.Fprintf(out, "%s API on %s, live feed on %s\n",
		ui.Paint(ui.ColorBold(), "⚽ Serving scoreboard"),
		ui.Paint(ui.ColorAccent(), "http://"+addr+"/api/v1"),
		ui.Paint(ui.ColorAccent(), "ws://"+addr+"/ws"))
}
