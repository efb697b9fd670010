package runner

import (
	// standard
	"fmt"
	"io"
	"sync"
	"time"
	// external
	"github.com/mitchellh/colorstring"
	// local
	"github.com/nil0x42/prgi"
	"github.com/nil0x42/prgi/internal/config"
	"github.com/nil0x42/prgi/internal/tty"
	"github.com/nil0x42/prgi/internal/workload"
)

// Runner runs the demo scenarios.
type Runner struct {
	Terms   int64         // units of work of each run
	Threads int           // goroutines of the threads scenario
	Pause   time.Duration // pause between two demo examples
	Opts    prgi.Options
	Out     io.Writer // headings and results

	mu          sync.Mutex
	refresh     Gauge // milliseconds between two frames
	lastRefresh time.Time
}

// New returns a Runner configured by conf, writing everything to the
// configured output.
func New(conf *config.Config) *Runner {
	return &Runner{
		Terms:   conf.Terms,
		Threads: conf.Threads,
		Pause:   conf.Opts.Pause,
		Opts: prgi.Options{
			Interval:     conf.Interval,
			Output:       conf.Output,
			LockOnUpdate: conf.Opts.LockOnUpdate,
			Columns:      conf.Opts.Columns,
			Logger:       conf.Logger,
		},
		Out: conf.Output,
	}
}

var scenarios = map[string]func(*Runner) error{
	"demo":      (*Runner).Demo,
	"pi":        (*Runner).Pi,
	"multiline": (*Runner).Multiline,
	"finlin":    (*Runner).FinalLine,
	"threads":   (*Runner).Parallel,
	"overhead":  (*Runner).Overhead,
}

// Run runs the named scenario.
func (r *Runner) Run(scenario string) error {
	run, ok := scenarios[scenario]
	if !ok {
		return fmt.Errorf("unknown scenario %q", scenario)
	}
	return run(r)
}

// live reports whether the progress lines are displayed at all.
func (r *Runner) live() bool {
	return r.Opts.Columns > 0 || tty.IsTTY(r.Opts.Output)
}

func (r *Runner) printf(format string, args ...any) {
	tty.SmartFprintf(r.Out, format, args...)
}

func (r *Runner) heading(format string, args ...any) {
	r.printf("%s\n", colorstring.Color("[bold]"+fmt.Sprintf(format, args...)))
}

// start and finish report the run on outputs which cannot display
// progress lines.
func (r *Runner) start(total int64) {
	r.mu.Lock()
	r.refresh = Gauge{}
	r.lastRefresh = time.Now()
	r.mu.Unlock()
	if !r.live() {
		r.printf("    Starting (%d units scheduled) ...\n", total)
	}
}

func (r *Runner) finish(s *prgi.Session) {
	st := s.Stats()
	if !r.live() {
		r.printf("    Finished (%d/%d units done in %s).\n", st.Done, st.Total, s.Elapsed())
	}
	if r.Opts.Logger != nil {
		r.mu.Lock()
		r.Opts.Logger.Debug("run finished",
			"done", st.Done, "frames", r.refresh.Samples(),
			"avg_period_ms", r.refresh.Avg(), "peak_period_ms", r.refresh.Peak)
		r.mu.Unlock()
	}
}

// frame draws one frame after a ready publish, then releases the session
// if it was kept locked.
func (r *Runner) frame(s *prgi.Session, draw func()) {
	draw()
	r.mu.Lock()
	now := time.Now()
	r.refresh.Log(int(now.Sub(r.lastRefresh).Milliseconds()))
	r.lastRefresh = now
	r.mu.Unlock()
	if r.Opts.LockOnUpdate {
		s.Unlock()
	}
}

// summary ends a run with its final line, kept on screen.
func (r *Runner) summary(s *prgi.Session, format string) {
	s.Printf(format, s.Elapsed(), s.MeanRate())
	s.Finish()
	r.finish(s)
}

// sumSeries adds the terms of share to b, advancing c once per term.
func (r *Runner) sumSeries(s *prgi.Session, c *prgi.Counter, b *workload.Basel, share workload.Share, draw func()) {
	for n := share.First; n <= share.Last; n++ {
		b.Add(n)
		if c.Advance(1) {
			r.frame(s, draw)
		}
	}
}
