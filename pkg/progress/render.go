package progress

import (
	"fmt"
	"strings"
	"time"

	"pbar/pkg/format"
	"pbar/pkg/style"
)

// barWidth is the glyph count of a full bar; the percent maps onto it
// at half scale (one glyph per two percent).
const barWidth = 50

// shouldRender reports whether enough time has passed since the last
// repaint. A bar that has never rendered is always eligible.
func (b *Bar) shouldRender(now time.Time) bool {
	return b.lastRender.IsZero() || now.Sub(b.lastRender) > b.renderInterval
}

// renderLine repaints the status line in place. The carriage return
// rewinds to column zero and no newline follows, so the next repaint
// overwrites this one. Writes go straight to the writer; os.Stdout is
// unbuffered, which keeps the terminal current between repaints.
func (b *Bar) renderLine(elapsed time.Duration) {
	glyphs := int(b.progress / 2)
	if glyphs < 0 {
		glyphs = 0
	}

	fmt.Fprintf(b.w, "\r[%s] %d%% (ETA: %.2fs/%.2fs) %s",
		strings.Repeat("=", glyphs),
		int(b.progress),
		elapsed.Seconds(),
		b.remaining.Seconds(),
		format.Rate(b.speed),
	)
}

// renderFinal paints the filled bar at 100% with a trailing newline,
// releasing the line for whatever output follows.
func (b *Bar) renderFinal() {
	fmt.Fprintf(b.w, "\r[%s] %d%%\n", strings.Repeat("=", barWidth), 100)
}

// renderEmpty paints the initial empty bar shown for streaming totals.
func (b *Bar) renderEmpty() {
	fmt.Fprintf(b.w, "[%40s] %d%%", "", 0)
}

// renderTitle prints the title once, centered across the terminal.
func (b *Bar) renderTitle() {
	line := style.Center(b.title, style.TerminalWidth(b.w))
	fmt.Fprintln(b.w, b.decorator.Title(line))
}

// renderSummary prints the execution-time summary line.
func (b *Bar) renderSummary() {
	fmt.Fprintf(b.w, "\n%s\n", b.decorator.Summary("Execution time: "+b.String()))
}
