// Package‑level tests for the demo scenarios. Progress is written to a
// buffer with a forced width, so that frames are rendered as on a terminal.

package runner

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nil0x42/prgi"
	"github.com/nil0x42/prgi/internal/config"
)

// newTestRunner returns a Runner writing to a buffer, rendering frames
// when cols is positive.
func newTestRunner(terms int64, cols int) (*Runner, *bytes.Buffer) {
	var out bytes.Buffer
	return &Runner{
		Terms:   terms,
		Threads: 4,
		Opts: prgi.Options{
			Interval: time.Millisecond,
			Output:   &out,
			Columns:  cols,
		},
		Out: &out,
	}, &out
}

func TestScenariosMatchConfig(t *testing.T) {
	for _, name := range config.Scenarios {
		if _, ok := scenarios[name]; !ok {
			t.Errorf("no runner for scenario %q", name)
		}
	}
	if len(scenarios) != len(config.Scenarios) {
		t.Errorf("%d runners for %d scenarios", len(scenarios), len(config.Scenarios))
	}
}

func TestRunUnknownScenario(t *testing.T) {
	r, _ := newTestRunner(10, 80)
	if err := r.Run("gui"); err == nil {
		t.Fatal("Run() accepted an unknown scenario")
	}
}

func TestNew(t *testing.T) {
	conf := &config.Config{
		Opts:     &config.Options{LockOnUpdate: true, Columns: 99, Pause: time.Second},
		Terms:    42,
		Threads:  3,
		Interval: time.Second,
		Output:   os.Stderr,
	}
	r := New(conf)
	if r.Terms != 42 || r.Threads != 3 || r.Pause != time.Second {
		t.Fatalf("Terms = %d, Threads = %d, Pause = %v", r.Terms, r.Threads, r.Pause)
	}
	if !r.Opts.LockOnUpdate || r.Opts.Columns != 99 || r.Opts.Interval != time.Second {
		t.Fatalf("unexpected session options %+v", r.Opts)
	}
	if r.Opts.Output != os.Stderr || r.Out != os.Stderr {
		t.Fatal("output not wired to the configured file")
	}
}

func TestDemo(t *testing.T) {
	r, out := newTestRunner(50_000, 100)
	if err := r.Run("demo"); err != nil {
		t.Fatalf("Run(demo) error: %v", err)
	}
	got := out.String()
	if n := strings.Count(got, "Example "); n != len(examples) {
		t.Errorf("%d examples shown, want %d", n, len(examples))
	}
	for _, want := range []string{
		"Using N = 50000",
		"Example 10: substitute all the lines after completion.",
		"100%",
		"Remaining:",
		"Value of the counter:",
		"Elapsed: ",
		"All done. Elapsed: ",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestPi(t *testing.T) {
	for _, scenario := range []string{"pi", "multiline", "finlin"} {
		t.Run(scenario, func(t *testing.T) {
			r, out := newTestRunner(200_000, 120)
			if err := r.Run(scenario); err != nil {
				t.Fatalf("Run(%s) error: %v", scenario, err)
			}
			got := out.String()
			if !strings.Contains(got, "Summing 200000 terms") {
				t.Errorf("output lacks the number of terms")
			}
			if !strings.Contains(got, "pi = 3.1415") {
				t.Errorf("output lacks the estimate of pi:\n%q", got)
			}
			if !strings.Contains(got, "Elapsed") {
				t.Errorf("output lacks the summary line")
			}
		})
	}
}

func TestFinalLineReplacesFrame(t *testing.T) {
	r, out := newTestRunner(100_000, 120)
	if err := r.FinalLine(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	i := strings.Index(got, "All done.")
	if i < 0 {
		t.Fatal("no final line")
	}
	if !strings.HasSuffix(got[:i], "\r\x1b[K") {
		t.Fatalf("final line not printed over a cleared frame: %q", got[max(0, i-40):i])
	}
}

func TestParallel(t *testing.T) {
	for _, lock := range []bool{false, true} {
		r, out := newTestRunner(400_001, 100)
		r.Opts.LockOnUpdate = lock
		if err := r.Run("threads"); err != nil {
			t.Fatalf("Run(threads) error: %v", err)
		}
		got := out.String()
		if !strings.Contains(got, "Multi-threaded run (4 goroutines)") {
			t.Errorf("lock=%v: output lacks the heading", lock)
		}
		if !strings.Contains(got, "pi = 3.14159") {
			t.Errorf("lock=%v: output lacks the estimate of pi", lock)
		}
		if !strings.Contains(got, "100%") {
			t.Errorf("lock=%v: the last frame is not complete", lock)
		}
		if r.frames() == 0 {
			t.Errorf("lock=%v: no frame recorded", lock)
		}
	}
}

func TestParallelNeedsGoroutines(t *testing.T) {
	r, _ := newTestRunner(10, 80)
	r.Threads = 0
	if err := r.Parallel(); err == nil {
		t.Fatal("Parallel() accepted 0 goroutines")
	}
}

func TestNotLive(t *testing.T) {
	r, out := newTestRunner(10_000, 0)
	if err := r.Run("pi"); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"Starting (10000 units scheduled) ...",
		"Finished (10000/10000 units done in ",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q", want)
		}
	}
	if strings.Contains(got, "\x1b") {
		t.Errorf("escape sequences written to a non-terminal: %q", got)
	}
}

func TestOverhead(t *testing.T) {
	r, out := newTestRunner(100_000, 0)
	if err := r.Run("overhead"); err != nil {
		t.Fatalf("Run(overhead) error: %v", err)
	}
	got := out.String()
	for _, want := range []string{"prgi", "plain", "progressbar", "PRGI overhead = "} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestRenderTimings(t *testing.T) {
	var buf bytes.Buffer
	renderTimings(&buf, []timing{
		{"prgi", 1000, 1100 * time.Microsecond, 3},
		{"plain", 1000, time.Millisecond, 0},
		{"progressbar", 500, time.Millisecond, 0},
	})
	got := buf.String()
	for _, want := range []string{"+10.0%", "+100.0%", "1000.00", "1100.00", "2000.00", "1.1ms"} {
		if !strings.Contains(got, want) {
			t.Errorf("table lacks %q:\n%s", want, got)
		}
	}
}

func TestVerdict(t *testing.T) {
	if got := verdict(3.2); !strings.Contains(got, "PRGI overhead = 3%") {
		t.Fatalf("verdict = %q", got)
	}
	if overhead(timing{terms: 10, elapsed: 20}, timing{}) != 0 {
		t.Fatal("overhead over an empty run is not 0")
	}
}

func TestGauge(t *testing.T) {
	var g Gauge
	if g.Avg() != 0 {
		t.Fatal("average of no sample is not 0")
	}
	for _, v := range []int{200, 180, 230, 190} {
		g.Log(v)
	}
	if g.Current != 190 || g.Peak != 230 || g.Avg() != 200 || g.Samples() != 4 {
		t.Fatalf("gauge = %+v, avg %d", g, g.Avg())
	}
}
