package config

import (
	// standard
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"slices"
	"time"
	// external
	"golang.org/x/exp/slog"
)

// Config holds the validated settings of a demo run.
type Config struct {
	Opts     *Options
	Terms    int64
	Threads  int
	Interval time.Duration
	Output   *os.File
	Logger   *slog.Logger // nil unless -debug
}

func exitUsage(format string, a ...interface{}) {
	err := fmt.Errorf(format, a...)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	flag.Usage()
	os.Exit(1)
}

func Init() *Config {
	opts, err := ParseOptions()
	if err != nil {
		exitUsage("%w", err)
	}
	conf, err := Load(opts)
	if err != nil {
		exitUsage("%w", err)
	}
	return conf
}

// Load validates opts, resolves the automatic values and opens the output
// file.
func Load(opts *Options) (*Config, error) {
	conf := &Config{Opts: opts}

	if !slices.Contains(Scenarios, opts.Scenario) {
		return nil, fmt.Errorf("unknown scenario %q (want one of %v)", opts.Scenario, Scenarios)
	}

	switch {
	case opts.Terms < 0:
		return nil, fmt.Errorf("-n: must be positive, got %d", opts.Terms)
	case opts.Terms == 0:
		conf.Terms = DefaultTerms[opts.Scenario]
	default:
		conf.Terms = opts.Terms
	}

	conf.Threads = opts.Threads
	if conf.Threads == autoThreads {
		conf.Threads = runtime.NumCPU()
	}
	if conf.Threads < 1 {
		return nil, fmt.Errorf("-threads: must be at least 1, got %d", opts.Threads)
	}

	if math.IsNaN(opts.Interval) || opts.Interval <= 0 {
		return nil, fmt.Errorf("-interval: must be positive, got %v", opts.Interval)
	}
	conf.Interval = time.Duration(opts.Interval * float64(time.Second))

	if opts.Columns < 0 {
		return nil, fmt.Errorf("-columns: must be positive, got %d", opts.Columns)
	}
	if opts.Pause < 0 {
		return nil, fmt.Errorf("-pause: must be positive, got %v", opts.Pause)
	}

	var err error
	conf.Output, err = openOutput(opts.OutputFilePath)
	if err != nil {
		return nil, fmt.Errorf("-o: %w", err)
	}

	if opts.Debug {
		conf.Logger = NewLogger(os.Stderr)
	}
	return conf, nil
}

func openOutput(path string) (*os.File, error) {
	switch path {
	case "", "-", "/dev/stdout":
		return os.Stdout, nil
	case "/dev/stderr":
		return os.Stderr, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("Can't create %q: %w", path, err)
	}
	return file, nil
}

// NewLogger returns the debug logger written to w.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
