// Package style holds the terminal palette shared by the text reporter and
// the error printer of the command line.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles is the set of styles bound to one output stream
type Styles struct {
	Success lipgloss.Style
	Changed lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. Colors are stripped when
// noColor is set, when NO_COLOR is in the environment or when w is not a
// terminal.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(w)
	if noColor || termenv.EnvNoColor() || !IsTerminal(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return renderer
}

// New builds the styles for w
func New(w io.Writer, noColor bool) Styles {
	r := NewRenderer(w, noColor)
	return Styles{
		Success: r.NewStyle().Foreground(SuccessColor),
		Changed: r.NewStyle().Foreground(ChangedColor).Bold(true),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Muted:   r.NewStyle().Foreground(MutedColor),
		Bold:    r.NewStyle().Bold(true),
	}
}

// IsTerminal reports whether w is a terminal file
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
