package prgi

import "math"

// maxStep bounds a single mark projection, keeping int64 arithmetic safe
// when the observed rate is huge or infinite.
const maxStep = 1 << 62

// Counter accounts for the work of one goroutine. It is owned by that
// goroutine: only Advance may be called on it, and only from there.
type Counter struct {
	count int64 // units done by this counter
	mark  int64 // count at which the slow path runs next
	s     *Session

	total     int64   // share registered for this counter
	lastCount int64   // count at the last slow path
	lastTime  float64 // time of the last slow path, seconds since Init
}

// Advance records n more units of work. It returns true when the session
// published fresh statistics: the previous frame has been cleared and the
// caller should print the new one. With Options.LockOnUpdate the session
// stays locked until Unlock.
//
// In the common case this is one addition and one comparison; the clock
// is only read once the counter reaches its projected mark.
func (c *Counter) Advance(n int64) bool {
	c.count += n
	return c.count >= c.mark && c.s.update(c)
}

// Count returns the units recorded so far by this counter.
func (c *Counter) Count() int64 {
	return c.count
}

// reschedule projects how many more units this counter will complete
// within one interval at its locally observed rate, and moves the mark
// that far. Until the counter is done the mark never exceeds its total,
// so reaching 100% always runs the slow path.
func (c *Counter) reschedule(interval float64, delta int64, dt float64) {
	step := interval * float64(delta) / dt
	switch {
	case math.IsNaN(step) || step < 0:
		step = 0
	case step > maxStep:
		step = maxStep
	}
	if c.mark > math.MaxInt64-int64(step) {
		c.mark = math.MaxInt64
	} else {
		c.mark += int64(step)
	}
	if c.count < c.total && c.mark > c.total {
		c.mark = c.total
	}
}
