package config

const VERSION = "v0.1.0"

const HEADER = `
  ▗▄▄▖ ▗▄▄▖  ▗▄▄▖▗▄▄▄▖
  ▐▌ ▐▌▐▌ ▐▌▐▌     █
  ▐▛▀▘ ▐▛▀▚▖▐▌▝▜▌  █
  ▐▌   ▐▌ ▐▌▝▚▄▞▘▗▄█▄▖
`

// Scenarios lists the runnable demo scenarios, in the order they are
// documented. The first one is the default.
var Scenarios = []string{"demo", "pi", "multiline", "finlin", "threads", "overhead"}

// DefaultTerms is the number of units of work of each scenario when -n is
// not given.
var DefaultTerms = map[string]int64{
	"demo":      200_000_000,
	"pi":        2_000_000_000,
	"multiline": 2_000_000_000,
	"finlin":    2_000_000_000,
	"threads":   4_000_000_000,
	"overhead":  1_000_000_000,
}

const (
	autoThreads     = -0xdead
	defaultInterval = 0.2 // seconds
	defaultOutput   = "/dev/stdout"
)
