package config

import (
	// standard
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
	// local
	"github.com/nil0x42/prgi/internal/tty"
)

type Options struct {
	Scenario       string
	Terms          int64
	Threads        int
	Interval       float64
	LockOnUpdate   bool
	Columns        int
	OutputFilePath string
	Pause          time.Duration
	ConfigFile     string
	ShowHelp       bool
	ShowVersion    bool
	Debug          bool
}

func ShowHelp() {
	var rst = "\033[0m"
	var bol = "\033[1m"
	var red = "\033[31m"
	var yel = "\033[33m"
	var gra = "\033[37m"
	var whi = "\033[97m"
	var s string

	s += fmt.Sprintf("\n")
	s += fmt.Sprintf(
		"%s%sprgi-demo showcases low-overhead progress indicators on CPU-bound loops%s\n",
		rst, bol, rst)
	s += fmt.Sprintf("\n")

	s += fmt.Sprintf(
		"Usage:      %sprgi-demo%s %s[OPTION]...%s [SCENARIO]\n",
		whi, rst, yel, rst)
	s += fmt.Sprintf(
		"Example:    %sprgi-demo%s %s-n%s 1000000000 %s-threads%s 8 threads\n",
		whi, rst, yel, rst, yel, rst)
	s += fmt.Sprintf("\n")

	s += fmt.Sprintf(
		"%sSCENARIOS:%s\n",
		bol, rst)
	s += fmt.Sprintf(
		"   %sdemo%s                       the ten bar and throbber styles, one after the other %s(default)%s\n",
		whi, rst, gra, rst)
	s += fmt.Sprintf(
		"   %spi%s                         sum the Basel series, showing the value of pi live\n",
		whi, rst)
	s += fmt.Sprintf(
		"   %smultiline%s                  same, on a three lines frame\n",
		whi, rst)
	s += fmt.Sprintf(
		"   %sfinlin%s                     same, replacing the progress line by a final one\n",
		whi, rst)
	s += fmt.Sprintf(
		"   %sthreads%s                    same, split across several goroutines\n",
		whi, rst)
	s += fmt.Sprintf(
		"   %soverhead%s                   time the same loop with and without progress indicators\n",
		whi, rst)
	s += fmt.Sprintf("\n")

	s += fmt.Sprintf(
		"%sWORKLOAD:%s\n",
		bol, rst)
	s += fmt.Sprintf(
		"   %s-n%s %sint%s                     units of work (default: %sper scenario%s)\n",
		yel, rst, gra, rst, yel, rst)
	s += fmt.Sprintf(
		"   %s-threads%s %sint%s               goroutines of the threads scenario (default: %snumber of CPUs%s)\n",
		yel, rst, gra, rst, yel, rst)
	s += fmt.Sprintf(
		"   %s-pause%s %sduration%s            pause between the demo examples (default %s2s%s)\n",
		yel, rst, gra, rst, yel, rst)
	s += fmt.Sprintf("\n")

	s += fmt.Sprintf(
		"%sDISPLAY:%s\n",
		bol, rst)
	s += fmt.Sprintf(
		"   %s-o%s %s[FILE]%s                  file to write progress to (defaults to %sSTDOUT%s)\n",
		yel, rst, gra, rst, yel, rst)
	s += fmt.Sprintf(
		"   %s-interval%s %sfloat%s            seconds between two refreshes (default %s0.2%s)\n",
		yel, rst, gra, rst, yel, rst)
	s += fmt.Sprintf(
		"   %s-lock%s                      hold the lock while a refreshed frame is printed\n",
		yel, rst)
	s += fmt.Sprintf(
		"   %s-columns%s %sint%s               force the terminal width (default: %sauto%s) %s[experts only]%s\n",
		yel, rst, gra, rst, yel, rst, red, rst)
	s += fmt.Sprintf(
		"   %s-config%s %s[FILE]%s             YAML file with default values for the options above\n",
		yel, rst, gra, rst)
	s += fmt.Sprintf("\n")

	s += fmt.Sprintf(
		"%sDEBUG:%s\n",
		bol, rst)
	s += fmt.Sprintf(
		"   %s-h, --help%s                 show help\n",
		yel, rst)
	s += fmt.Sprintf(
		"   %s-version%s                   display version of prgi-demo\n",
		yel, rst)
	s += fmt.Sprintf(
		"   %s-debug%s                     show debugging information (on STDERR)\n",
		yel, rst)
	s += fmt.Sprintf("\n")
	tty.SmartFprintf(os.Stdout, "%s", s)
}

func ShowVersion() {
	tty.SmartFprintf(
		os.Stdout,
		"prgi-demo %s <http://github.com/nil0x42/prgi>\n",
		VERSION,
	)
	os.Exit(0)
}

func ParseOptions() (*Options, error) {
	opts := &Options{}
	// WORKLOAD
	flag.Int64Var(&opts.Terms, "n", 0, "units of work")
	flag.IntVar(&opts.Threads, "threads", autoThreads, "number of goroutines")
	flag.DurationVar(&opts.Pause, "pause", 2*time.Second, "pause between the demo examples")
	// DISPLAY
	flag.StringVar(&opts.OutputFilePath, "o", defaultOutput, "file to write progress to")
	flag.Float64Var(&opts.Interval, "interval", defaultInterval, "seconds between two refreshes")
	flag.BoolVar(&opts.LockOnUpdate, "lock", false, "hold the lock while a frame is printed")
	flag.IntVar(&opts.Columns, "columns", 0, "force the terminal width")
	flag.StringVar(&opts.ConfigFile, "config", "", "YAML file with default values")
	// DEBUG
	flag.BoolVar(&opts.ShowHelp, "h", false, "show help")
	flag.BoolVar(&opts.ShowVersion, "version", false, "display version of prgi-demo")
	flag.BoolVar(&opts.Debug, "debug", false, "enable debugging information")

	flag.Usage = ShowHelp
	flag.Parse()

	if opts.ShowHelp {
		flag.Usage()
		os.Exit(0)
	}
	if opts.ShowVersion {
		ShowVersion()
	}

	switch flag.NArg() {
	case 0:
		opts.Scenario = Scenarios[0]
	case 1:
		opts.Scenario = strings.ToLower(flag.Arg(0))
	default:
		return nil, fmt.Errorf("too many arguments: %q", flag.Args())
	}

	if opts.ConfigFile != "" {
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		if err := applyFile(opts, opts.ConfigFile, explicit); err != nil {
			return nil, fmt.Errorf("-config: %w", err)
		}
	}
	return opts, nil
}
