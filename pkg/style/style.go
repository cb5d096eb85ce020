// Package style decorates progress output for interactive terminals.
// Decoration is disabled automatically when the target is not a TTY,
// so piped or redirected output stays free of escape sequences.
package style

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const defaultTermWidth = 80

// Decorator applies terminal styling to title and summary lines.
// The zero value is a disabled decorator that passes text through.
type Decorator struct {
	enabled bool
	title   lipgloss.Style
	summary lipgloss.Style
}

// NewDecorator returns a decorator for w. Styling is enabled only when
// w is a terminal; the color profile is probed from w itself.
func NewDecorator(w io.Writer) *Decorator {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return &Decorator{}
	}
	return newEnabled(lipgloss.NewRenderer(f))
}

// NewEnabled returns a decorator that styles unconditionally with the
// basic ANSI palette, for targets known to understand escape sequences
// even though they are not terminals.
func NewEnabled() *Decorator {
	return newEnabled(lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI)))
}

func newEnabled(r *lipgloss.Renderer) *Decorator {
	return &Decorator{
		enabled: true,
		title:   r.NewStyle().Bold(true),
		summary: r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
	}
}

// Enabled reports whether styling is applied.
func (d *Decorator) Enabled() bool {
	return d.enabled
}

// Title renders a title line.
func (d *Decorator) Title(s string) string {
	if !d.enabled {
		return s
	}
	return d.title.Render(s)
}

// Summary renders the execution-time summary line.
func (d *Decorator) Summary(s string) string {
	if !d.enabled {
		return s
	}
	return d.summary.Render(s)
}

// Center pads s with spaces so it sits centered in width columns.
// Text wider than width is returned unchanged.
func Center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

// TerminalWidth returns the column count of w, or a fallback of 80
// when w is not a terminal or the size cannot be determined.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}
