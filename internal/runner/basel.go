package runner

import (
	// standard
	"fmt"
	"sync"
	// local
	"github.com/nil0x42/prgi"
	"github.com/nil0x42/prgi/internal/workload"
)

// Each Basel scenario sums the terms 1..Terms of the series and prints the
// resulting estimate of pi.

// basel sums the series on the calling goroutine and returns the sum.
func (r *Runner) basel(draw func(s *prgi.Session, b *workload.Basel), replace bool, summary string) float64 {
	s := prgi.New(r.Opts)
	c := s.Init(r.Terms)
	r.start(r.Terms)
	var b workload.Basel
	r.sumSeries(s, c, &b, workload.Share{First: 1, Last: r.Terms}, func() { draw(s, &b) })
	if replace {
		s.Clear()
	}
	r.summary(s, summary)
	return b.Sum()
}

func drawPi(s *prgi.Session, b *workload.Basel) {
	s.Printf("pi = %.14f [%s] %s %c Remaining: %s, Speed: %s terms/s",
		b.Pi(), s.Bar(0, "#."), s.Percent(), s.Throbber("|/-\\"), s.Remaining(), s.Rate())
}

// Pi shows the value of pi live, on a single line.
func (r *Runner) Pi() error {
	r.printf("Summing %d terms\n\n", r.Terms)
	sum := r.basel(drawPi, false, "Elapsed: %s, Mean speed: %s terms/s")
	r.printf("\npi = %.14f\n\n", workload.Pi(sum))
	return nil
}

// Multiline shows the sum, the bar and the estimates on three lines.
func (r *Runner) Multiline() error {
	r.printf("Summing %d terms\n\n", r.Terms)
	sum := r.basel(func(s *prgi.Session, b *workload.Basel) {
		s.Printf("s = %.14f, pi = %.14f", b.Sum(), b.Pi())
		s.Printf("[%s] %s %c", s.Bar(0, "#."), s.Percent(), s.Throbber("|/-\\"))
		s.Printf("Remaining: %s, Speed: %s terms/s", s.Remaining(), s.Rate())
	}, false, "Elapsed time: %s, Mean speed: %s terms/s")
	r.printf("\ns = %.14f, pi = %.14f\n\n", sum, workload.Pi(sum))
	return nil
}

// FinalLine replaces the progress line by a summary once done.
func (r *Runner) FinalLine() error {
	r.printf("Summing %d terms\n\n", r.Terms)
	sum := r.basel(drawPi, true, "All done. Elapsed: %s, Mean speed: %s.")
	r.printf("\npi = %.14f\n\n", workload.Pi(sum))
	return nil
}

// Parallel splits the sum across Threads goroutines. The main goroutine
// does no work itself: it registers every share before starting them.
func (r *Runner) Parallel() error {
	shares, err := workload.Split(r.Terms, r.Threads)
	if err != nil {
		return fmt.Errorf("threads: %w", err)
	}
	r.printf("Summing %d terms\n\n", r.Terms)
	r.heading("Multi-threaded run (%d goroutines)", len(shares))

	s := prgi.New(r.Opts)
	s.Init(0)
	counters := make([]*prgi.Counter, len(shares))
	for i, share := range shares {
		counters[i] = s.Register(share.Len())
	}
	r.start(r.Terms)

	sums := make([]workload.Basel, len(shares))
	var wg sync.WaitGroup
	for i, share := range shares {
		wg.Add(1)
		go func(i int, share workload.Share) {
			defer wg.Done()
			r.sumSeries(s, counters[i], &sums[i], share, func() {
				s.Printf("%s %c [%s] Remaining: %s, Speed: %s terms/s",
					s.Percent(), s.Throbber("|/-\\"), s.Bar(0, "#."), s.Remaining(), s.Rate())
			})
		}(i, share)
	}
	wg.Wait()

	r.summary(s, "Elapsed: %s, Mean speed: %s terms/s")

	var sum float64
	for i := range sums {
		sum += sums[i].Sum()
	}
	r.printf("\npi = %.14f\n\n", workload.Pi(sum))
	return nil
}
