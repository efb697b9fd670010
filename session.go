package prgi

import (
	// standard
	"math"
	"sync"
	"sync/atomic"
	"time"
	// local
	"github.com/nil0x42/prgi/internal/tty"
)

// Stats is the snapshot refreshed by each publish.
type Stats struct {
	Progress  float64 // Done/Total, in [0, 1] under correct use
	Elapsed   float64 // seconds since Init
	Remaining float64 // seconds, NaN or Inf when unknown
	Rate      float64 // units per second over the last interval, NaN before
	MeanRate  float64 // units per second since Init
	Columns   int     // terminal width, -1 if not a terminal
	Done      int64
	Total     int64
}

// Session aggregates the progress of all counters of one computation and
// owns the terminal frame they are displayed in.
//
// A single mutex guards both the aggregate counters and the display state.
// It is only taken on the slow path of Advance, whose frequency is bounded
// by the publish interval. Each publish also swaps in a copy of the
// snapshot, so that Stats and the formatters never wait for the lock and
// may be called from any goroutine.
type Session struct {
	mu       sync.Mutex
	opts     Options
	interval float64 // seconds
	now      func() time.Duration
	columns  func() int

	// aggregate
	start     time.Time
	total     int64
	done      int64
	lastCount int64   // done at the last publish
	lastTime  float64 // time of the last publish
	stats     Stats
	snap      atomic.Pointer[Stats] // copy of stats, read without the lock

	// display
	width    int // usable width, stats.Columns - 2 capped to MaxLineLen
	printed  int // lines of the current frame
	pending  []*Cell
	throbber int
}

// New returns a Session configured with opts. Call Init before use.
func New(opts Options) *Session {
	s := &Session{opts: opts.withDefaults()}
	s.interval = s.opts.Interval.Seconds()
	s.now = func() time.Duration { return time.Since(s.start) }
	s.columns = func() int {
		if s.opts.Columns > 0 {
			return s.opts.Columns
		}
		return tty.Columns(s.opts.Output)
	}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.start = time.Now()
	s.total = 0
	s.done = 0
	s.lastCount = 0
	s.lastTime = 0
	// While no data is collected these are undefined.
	s.stats = Stats{
		Remaining: math.NaN(),
		Rate:      math.NaN(),
		MeanRate:  math.NaN(),
		Columns:   -1,
	}
	s.share()
	s.width = -1
	s.printed = 0
	s.pending = s.pending[:0]
	s.throbber = 0
}

// Init starts a new session, discarding all aggregate and frame state, and
// returns the counter of the calling goroutine for its share of the work
// (usually zero when workers do the counting).
//
// Init must happen before any other goroutine uses the session.
func (s *Session) Init(total int64) *Counter {
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
	s.debug("session started", "interval", s.opts.Interval, "lock_on_update", s.opts.LockOnUpdate)
	return s.Register(total)
}

// Register adds total units of work to the session and returns the counter
// which will account for them. It must return before the counter is
// advanced.
func (s *Session) Register(total int64) *Counter {
	s.mu.Lock()
	s.total += total
	sum := s.total
	s.mu.Unlock()
	s.debug("counter registered", "share", total, "total", sum)
	return &Counter{s: s, total: total}
}

// Unlock releases the session after a "ready" publish when
// Options.LockOnUpdate is set. It must not be called otherwise.
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Stats returns the last published snapshot. It is safe to call from any
// goroutine, at any time.
func (s *Session) Stats() Stats {
	return *s.snap.Load()
}

// share makes the current stats visible to lock-free readers. Caller holds
// s.mu, or is the only user of the session.
func (s *Session) share() {
	st := s.stats
	s.snap.Store(&st)
}

// guard locks the session for the methods touching the frame, unless the
// caller already holds the lock through LockOnUpdate. In that mode, these
// methods must only be called between a ready Advance and Unlock.
func (s *Session) guard() {
	if !s.opts.LockOnUpdate {
		s.mu.Lock()
	}
}

func (s *Session) unguard() {
	if !s.opts.LockOnUpdate {
		s.mu.Unlock()
	}
}

// update is the slow path of Counter.Advance. It reschedules the counter,
// folds its progress into the aggregate and decides whether to publish.
func (s *Session) update(c *Counter) bool {
	delta := c.count - c.lastCount

	s.mu.Lock()
	now := s.now().Seconds()

	c.reschedule(s.interval, delta, now-c.lastTime)
	c.lastCount = c.count
	c.lastTime = now

	s.done += delta
	dt := now - s.lastTime

	// Counters compete to publish: only let one through when enough time
	// has passed, plus on the very first unit of work and whenever a
	// counter completes its share, so that 100% is eventually shown.
	ready := dt > readyFactor*s.interval
	if !ready && s.done != delta && c.count != c.total {
		s.mu.Unlock()
		return false
	}

	s.publish(now, dt, ready)

	if !s.opts.LockOnUpdate {
		s.mu.Unlock()
	}
	return true
}

// publish refreshes the snapshot and clears the frame. Caller holds s.mu.
func (s *Session) publish(now, dt float64, ready bool) {
	st := &s.stats
	st.Done = s.done
	st.Total = s.total
	if s.total > 0 {
		st.Progress = float64(s.done) / float64(s.total)
	} else {
		st.Progress = 1
	}
	st.Elapsed = now
	st.MeanRate = float64(s.done) / now
	// Short windows give noisy rates: only refresh on a full interval.
	if ready {
		st.Rate = float64(s.done-s.lastCount) / dt
	}
	st.Remaining = float64(s.total-s.done) / st.Rate
	st.Columns = s.columns()
	s.width = usableWidth(st.Columns)

	s.lastCount = s.done
	s.lastTime = now
	s.pending = s.pending[:0]
	s.share()

	if s.opts.Logger != nil {
		s.debug("publish",
			"done", st.Done, "total", st.Total,
			"rate", st.Rate, "columns", st.Columns, "interval_elapsed", ready)
	}
	s.clear()
}

// usableWidth leaves two columns free at the right edge, where the cursor
// is parked.
func usableWidth(columns int) int {
	if columns >= MaxLineLen+2 {
		return MaxLineLen
	}
	return columns - 2
}

func (s *Session) debug(msg string, args ...any) {
	if s.opts.Logger != nil {
		s.opts.Logger.Debug(msg, args...)
	}
}
