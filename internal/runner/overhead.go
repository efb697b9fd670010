package runner

import (
	// standard
	"fmt"
	"io"
	"strconv"
	"time"
	// external
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	// local
	"github.com/nil0x42/prgi"
	"github.com/nil0x42/prgi/internal/workload"
)

// conventionalTerms caps the run with a conventional progress bar, which
// costs a lock and a clock read per unit of work.
const conventionalTerms = 20_000_000

// timing is the measured cost of one run of the overhead scenario.
type timing struct {
	method  string
	terms   int64
	elapsed time.Duration
	frames  int64
}

// perTerm returns the mean cost of one term, in nanoseconds.
func (t timing) perTerm() float64 {
	if t.terms == 0 {
		return 0
	}
	return float64(t.elapsed.Nanoseconds()) / float64(t.terms)
}

// Overhead times the same sum with progress indicators, without them, and
// with a conventional progress bar, then compares the cost per term.
func (r *Runner) Overhead() error {
	r.printf("Summing %d terms\n\n", r.Terms)
	var timings []timing

	r.heading("Running with progress indicators:")
	begin := time.Now()
	sum := r.basel(drawPi, false, "Elapsed time: %s, Mean speed: %s terms/s")
	timings = append(timings, timing{"prgi", r.Terms, time.Since(begin), r.frames()})
	r.printf("\npi = %.14f\n\n", workload.Pi(sum))

	r.heading("Showing progress indicators only at the end, please wait.")
	timings = append(timings, r.plain())

	n := min(r.Terms, conventionalTerms)
	r.heading("Running with a conventional progress bar (%d terms):", n)
	conventional, err := r.conventional(n)
	if err != nil {
		return fmt.Errorf("overhead: %w", err)
	}
	timings = append(timings, conventional)

	renderTimings(r.Out, timings)
	r.printf("\n%s\n", verdict(overhead(timings[0], timings[1])))
	return nil
}

func (r *Runner) frames() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refresh.Samples()
}

// plain sums the series without looking at the progress, and only
// reports it once done.
func (r *Runner) plain() timing {
	begin := time.Now()
	s := prgi.New(r.Opts)
	c := s.Init(r.Terms)
	r.start(r.Terms)
	var b workload.Basel
	for n := int64(1); n <= r.Terms; n++ {
		b.Add(n)
	}
	// A single update makes the elapsed time and the mean rate available.
	if c.Advance(r.Terms) && r.Opts.LockOnUpdate {
		s.Unlock()
	}
	t := timing{"plain", r.Terms, time.Since(begin), 0}
	r.summary(s, "Elapsed time: %s, Mean speed: %s terms/s")
	r.printf("\npi = %.14f\n\n", b.Pi())
	return t
}

// conventional sums n terms while driving a throttled progress bar.
func (r *Runner) conventional(n int64) (timing, error) {
	var w io.Writer = io.Discard
	if r.live() {
		w = r.Opts.Output
	}
	bar := progressbar.NewOptions64(
		n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionThrottle(r.Opts.Interval),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("terms"),
		progressbar.OptionSetDescription("    pi"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	begin := time.Now()
	var b workload.Basel
	for i := int64(1); i <= n; i++ {
		b.Add(i)
		if err := bar.Add64(1); err != nil {
			return timing{}, err
		}
	}
	if err := bar.Finish(); err != nil {
		return timing{}, err
	}
	t := timing{"progressbar", n, time.Since(begin), 0}
	if w != io.Discard {
		fmt.Fprintf(w, "\033[0m\n")
	}
	r.printf("\npi = %.14f\n\n", b.Pi())
	return t, nil
}

// overhead returns the extra cost per term of t over base, in percent.
func overhead(t, base timing) float64 {
	if base.perTerm() == 0 {
		return 0
	}
	return 100 * (t.perTerm() - base.perTerm()) / base.perTerm()
}

func renderTimings(w io.Writer, timings []timing) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Method", "Terms", "Elapsed", "ns/term", "Frames", "Overhead"})
	table.SetBorder(true)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	base := timings[0]
	for _, t := range timings {
		if t.method == "plain" {
			base = t
		}
	}
	for _, t := range timings {
		over := "-"
		if t.method != base.method {
			over = fmt.Sprintf("%+.1f%%", overhead(t, base))
		}
		table.Append([]string{
			t.method,
			strconv.FormatInt(t.terms, 10),
			t.elapsed.Round(time.Microsecond).String(),
			fmt.Sprintf("%.2f", t.perTerm()),
			strconv.FormatInt(t.frames, 10),
			over,
		})
	}
	table.Render()
}

func verdict(pct float64) string {
	c := color.New(color.FgGreen, color.Bold)
	if pct > 5 {
		c = color.New(color.FgYellow, color.Bold)
	}
	return c.Sprintf("PRGI overhead = %.0f%%", pct)
}
