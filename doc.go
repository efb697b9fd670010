// Package prgi displays progress indicators on a terminal for long-running,
// CPU-bound and optionally multi-goroutine computations.
//
// It is cheap enough to be called after every single unit of work: the
// per-call cost is one addition and one comparison, and the wall clock is
// only read when a self-tuning mark is reached.
//
//	s := prgi.New(prgi.Options{})
//	c := s.Init(n)
//	for i := int64(0); i < n; i++ {
//		work(i)
//		if c.Advance(1) {
//			s.Printf("%s [%s] Remaining: %s, Speed: %s/s",
//				s.Percent(), s.Bar(0, "#."), s.Remaining(), s.Rate())
//		}
//	}
//	s.Printf("Elapsed: %s, Mean speed: %s/s", s.Elapsed(), s.MeanRate())
//	s.Finish()
//
// Multi-goroutine programs call Init(0) before spawning workers, then
// Register each worker's share and hand the returned *Counter to it. A
// Counter belongs to one goroutine and must never be shared.
//
// Preconditions which are not checked: a counter is never advanced beyond
// its registered total, and Register is called before the counter is used.
//
// Without Options.LockOnUpdate, two goroutines may both get a "ready"
// publish a few microseconds apart and interleave their lines on the
// terminal. This keeps the lock hold time minimal; set LockOnUpdate to
// serialize whole frames, and call Unlock once the frame is printed.
package prgi
