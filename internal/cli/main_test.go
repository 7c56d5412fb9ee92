package cli

import (
	"os"
	"testing"

	"github.com/agbru/scoreboard/internal/ui"
)

// Output assertions compare plain text.
func TestMain(m *testing.M) {
	ui.SetTheme("none")
	os.Exit(m.Run())
}
