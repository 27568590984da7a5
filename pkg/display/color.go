package display

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// InitColor disables styling when output is not a terminal or the user
// asked for no color. Called once from the command entry point.
func InitColor(out *os.File) {
	if termenv.EnvNoColor() || !isatty.IsTerminal(out.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
