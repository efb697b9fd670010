package prgi

import (
	// standard
	"io"
	"os"
	"time"
	// external
	"golang.org/x/exp/slog"
)

const (
	// DefaultInterval is the target time between two publishes.
	DefaultInterval = 200 * time.Millisecond

	// MaxLineLen caps the usable width of a line.
	MaxLineLen = 256
	// MaxBarLen and MinBarLen bound the length of a progress bar.
	MaxBarLen = MaxLineLen
	MinBarLen = 10

	// readyFactor compensates the jitter of the per-counter estimate, so
	// that publishes neither systematically undershoot nor overshoot the
	// interval.
	readyFactor = 0.8
)

const (
	truncMarker = ">>>"
	styleReset  = "\x1b[0m"
	reverseOn   = "\x1b[7m"
	lineErase   = "\r\x1b[K"
	upErase     = "\x1b[A\x1b[K"
)

// Options configures a Session. The zero value is usable.
type Options struct {
	// Interval is the target time between two "ready" publishes.
	// Default: DefaultInterval.
	Interval time.Duration

	// Output receives the progress lines.
	// Default: os.Stdout
	Output io.Writer

	// LockOnUpdate keeps the session locked after Advance returned true,
	// until Unlock is called. Use it when several goroutines print.
	LockOnUpdate bool

	// Columns forces the terminal width. When zero, the width of Output is
	// queried on every publish and nothing is printed unless Output is a
	// terminal.
	Columns int

	// Logger receives debug traces of the session lifecycle. Optional.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	return o
}
