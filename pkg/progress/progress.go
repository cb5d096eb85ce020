// Package progress provides a single-line, self-overwriting terminal
// progress bar. A Bar tracks completed units against a fixed (or
// unknown) total, estimates throughput and remaining time, and repaints
// its line at a bounded refresh rate so long-running piped jobs report
// liveness without flooding the terminal.
//
// A Bar never fails the work it wraps: metric computation against a
// zero or unknown total is counted in Errors and otherwise ignored.
package progress

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"pbar/pkg/format"
	"pbar/pkg/style"
)

// TotalUnknown marks a streaming bar whose total is not known up front.
const TotalUnknown int64 = -1

// ErrInvalidTotal is returned by New for totals below TotalUnknown.
var ErrInvalidTotal = errors.New("progress: total must be non-negative or TotalUnknown")

// DefaultRenderInterval is the minimum wall-clock gap between two
// repaints unless an option overrides it.
const DefaultRenderInterval = 100 * time.Millisecond

type barState int

const (
	stateCreated barState = iota
	stateRunning
	stateCompleted
)

// Bar tracks progress through a fixed number of work units and renders
// a throttled status line to its writer.
//
// Bar is not safe for concurrent use; one bar owns the terminal line.
type Bar struct {
	total  int64
	value  int64
	errors int64

	progress  float64 // percent, unclamped
	speed     float64 // units per second
	remaining time.Duration

	started       time.Time
	lastRender    time.Time
	ended         time.Time
	executionTime time.Duration

	renderInterval time.Duration
	title          string
	summaryOnClose bool

	w         io.Writer
	decorator *style.Decorator
	now       func() time.Time

	state     barState
	finalized bool
}

// Option configures a Bar.
type Option func(*Bar)

// WithTitle sets a label printed once, centered, when the bar is created.
func WithTitle(title string) Option {
	return func(b *Bar) { b.title = title }
}

// WithRenderInterval sets the minimum gap between repaints.
func WithRenderInterval(d time.Duration) Option {
	return func(b *Bar) {
		if d >= 0 {
			b.renderInterval = d
		}
	}
}

// WithSummaryOnClose controls whether the execution-time summary is
// printed when the bar completes. Default is true.
func WithSummaryOnClose(enabled bool) Option {
	return func(b *Bar) { b.summaryOnClose = enabled }
}

// WithWriter redirects output. Default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(b *Bar) { b.w = w }
}

// WithDecorator overrides the TTY-derived text decorator.
func WithDecorator(d *style.Decorator) Option {
	return func(b *Bar) { b.decorator = d }
}

// WithClock overrides the time source. Test seam.
func WithClock(now func() time.Time) Option {
	return func(b *Bar) {
		if now != nil {
			b.now = now
		}
	}
}

// New creates a bar for total units of work. Pass TotalUnknown for a
// streaming bar whose total is not known; any other negative total is
// rejected with ErrInvalidTotal.
func New(total int64, opts ...Option) (*Bar, error) {
	if total < TotalUnknown {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTotal, total)
	}

	b := &Bar{
		total:          total,
		renderInterval: DefaultRenderInterval,
		summaryOnClose: true,
		w:              os.Stdout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.decorator == nil {
		b.decorator = style.NewDecorator(b.w)
	}

	b.started = b.now()

	if b.title != "" {
		b.renderTitle()
	}
	if b.total == TotalUnknown {
		b.renderEmpty()
	}

	return b, nil
}

// Increment adds amount completed units and repaints the line when the
// render interval has elapsed. Reaching the total forces the final
// render regardless of the interval. Increment never fails: with a
// zero or unknown total the metrics are left untouched and the
// arithmetic failure is counted in Errors.
func (b *Bar) Increment(amount int64) {
	if b.state == stateCreated {
		b.state = stateRunning
	}

	b.value += amount

	if b.total <= 0 {
		b.errors++
		return
	}

	b.progress = float64(b.value) / float64(b.total) * 100

	now := b.now()
	elapsed := now.Sub(b.started)
	b.executionTime = elapsed

	if b.value > 0 {
		b.remaining = time.Duration(float64(elapsed) / float64(b.value) * float64(b.total-b.value))
	} else {
		b.remaining = 0
	}
	if elapsed > 0 {
		b.speed = float64(b.value) / elapsed.Seconds()
	} else {
		b.speed = 0
	}

	if b.state == stateCompleted {
		// Counters still move after completion, the banner does not.
		return
	}

	if b.value >= b.total {
		b.finish(now)
		return
	}

	if b.shouldRender(now) {
		b.lastRender = now
		b.renderLine(elapsed)
	}
}

// Add1 advances the bar by a single unit, the common case for
// line-or-item driven callers.
func (b *Bar) Add1() {
	b.Increment(1)
}

// Complete forces the bar to 100% and emits the final render and, when
// enabled, the execution-time summary. Idempotent: repeat calls leave
// state and output unchanged.
func (b *Bar) Complete() {
	b.value = b.total
	if b.total > 0 {
		b.progress = 100
	}
	b.finish(b.now())
}

// finish performs the one-shot transition to the completed state. The
// final render and summary are emitted at most once per bar.
func (b *Bar) finish(now time.Time) {
	b.state = stateCompleted
	if b.finalized {
		return
	}
	b.finalized = true
	b.lastRender = now

	if b.executionTime == 0 {
		b.executionTime = now.Sub(b.started)
	}

	b.renderFinal()
	if b.summaryOnClose {
		b.renderSummary()
	}
}

// Update forces a repaint of the completed bar line without touching
// the counters.
func (b *Bar) Update() {
	b.progress = float64(b.value)
	b.renderFinal()
}

// Value returns the completed unit count.
func (b *Bar) Value() int64 {
	return b.value
}

// SetValue overwrites the completed unit count without recomputing
// metrics or rendering. Derived metrics catch up on the next Increment.
func (b *Bar) SetValue(value int64) {
	b.value = value
}

// Total returns the target unit count, or TotalUnknown.
func (b *Bar) Total() int64 {
	return b.total
}

// Len returns the total as an int for loop bounds.
func (b *Bar) Len() int {
	return int(b.total)
}

// Errors returns how many metric computations were skipped because the
// total was zero or unknown.
func (b *Bar) Errors() int64 {
	return b.errors
}

// Progress returns the current percentage. Unclamped: incrementing
// past the total pushes it beyond 100.
func (b *Bar) Progress() float64 {
	return b.progress
}

// Rate returns the current throughput in units per second.
func (b *Bar) Rate() float64 {
	return b.speed
}

// ETA returns the estimated remaining time at the current throughput.
func (b *Bar) ETA() time.Duration {
	return b.remaining
}

// ExecutionTime returns the elapsed time measured at the last metric
// update, or the final duration once the bar is closed.
func (b *Bar) ExecutionTime() time.Duration {
	return b.executionTime
}

// Start marks entry into the timed region, resetting the start time.
func (b *Bar) Start() {
	b.started = b.now()
	if b.state == stateCreated {
		b.state = stateRunning
	}
}

// Close marks exit from the timed region: it fixes the execution time
// and forces completion. Safe to call more than once; the final render
// and summary are never repeated. Close is intended for defer so the
// exit accounting runs on every path out of the wrapped work.
func (b *Bar) Close() error {
	if b.ended.IsZero() {
		b.ended = b.now()
		b.executionTime = b.ended.Sub(b.started)
	}
	b.finish(b.ended)
	return nil
}

// Run executes fn inside the bar's timed region. Close runs whether or
// not fn fails, and fn's error is returned unmodified.
func (b *Bar) Run(fn func() error) error {
	b.Start()
	defer b.Close()
	return fn()
}

// String renders the measured execution time in its largest whole unit.
func (b *Bar) String() string {
	return format.Duration(b.executionTime)
}
