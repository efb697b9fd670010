package runner

import (
	// standard
	"time"
	// local
	"github.com/nil0x42/prgi"
)

const (
	elapsedLine = "Elapsed: %s, Mean speed: %s counts/s"
	allDoneLine = "All done. Elapsed: %s, Mean speed: %s counts/s"
)

// example is one progress style of the demo scenario.
type example struct {
	title   string
	draw    func(s *prgi.Session, k int64)
	replace bool   // clear the progress lines before the summary
	summary string // given the elapsed time and the mean rate
}

var examples = []example{
	{
		title: "ASCII expandable progress bar.",
		draw: func(s *prgi.Session, k int64) {
			s.Printf("%s %c [%s] Remaining: %s, Speed: %s counts/s",
				s.Percent(), s.Throbber("|/-\\"), s.Bar(0, "#."), s.Remaining(), s.Rate())
		},
		summary: elapsedLine,
	},
	{
		title: "fixed length progress bar, different throbber.",
		draw: func(s *prgi.Session, k int64) {
			s.Printf("%s %c [%s] Remaining: %s, Speed: %s counts/s",
				s.Percent(), s.Throbber(".oOo"), s.Bar(20, "#."), s.Remaining(), s.Rate())
		},
		summary: elapsedLine,
	},
	{
		title: "percentage progress and throbber embedded in the progress bar.",
		draw: func(s *prgi.Session, k int64) {
			s.Printf("[%s] Remaining: %s, Speed: %s counts/s",
				s.BarText(0, "#.", " %s %c ", s.Percent(), s.Throbber("|/-\\")),
				s.Remaining(), s.Rate())
		},
		summary: elapsedLine,
	},
	{
		title: "reverse video progress bar, different delimiter.",
		draw: func(s *prgi.Session, k int64) {
			s.Printf("%s %c |%s| Remaining: %s, Speed: %s counts/s",
				s.Percent(), s.Throbber("|/-\\"), s.Bar(0, " "), s.Remaining(), s.Rate())
		},
		summary: elapsedLine,
	},
	{
		title: "different filling.",
		draw: func(s *prgi.Session, k int64) {
			s.Printf("%s %c |%s| Remaining: %s, Speed: %s counts/s",
				s.Percent(), s.Throbber("|/-\\"), s.Bar(0, ":"), s.Remaining(), s.Rate())
		},
		summary: elapsedLine,
	},
	{
		title: "percentage progress and throbber embedded in the reverse video bar.",
		draw: func(s *prgi.Session, k int64) {
			s.Printf("|%s| Remaining: %s, Speed: %s counts/s",
				s.BarText(0, ":", " %s %c ", s.Percent(), s.Throbber("|/-\\")),
				s.Remaining(), s.Rate())
		},
		summary: elapsedLine,
	},
	{
		title: "fixed length, no delimiter.",
		draw: func(s *prgi.Session, k int64) {
			s.Printf("%s Remaining: %s, Speed: %s counts/s",
				s.BarText(30, ":", " %s %c ", s.Percent(), s.Throbber("|/-\\")),
				s.Remaining(), s.Rate())
		},
		summary: elapsedLine,
	},
	{
		title: "substitute the progress line after completion.",
		draw: func(s *prgi.Session, k int64) {
			s.Printf("|%s| Remaining: %s, Speed: %s counts/s",
				s.BarText(0, ":", " %s %c ", s.Percent(), s.Throbber("|/-\\")),
				s.Remaining(), s.Rate())
		},
		replace: true,
		summary: allDoneLine,
	},
	{
		title:   "multiline progress indicators.",
		draw:    drawMultiline,
		summary: elapsedLine,
	},
	{
		title:   "substitute all the lines after completion.",
		draw:    drawMultiline,
		replace: true,
		summary: elapsedLine,
	},
}

func drawMultiline(s *prgi.Session, k int64) {
	s.Printf("|%s|", s.BarText(0, ":", " %s %c ", s.Percent(), s.Throbber("|/-\\")))
	s.Printf("Remaining: %s, Speed: %s counts/s", s.Remaining(), s.Rate())
	s.Printf("Value of the counter: %d", k)
}

// Demo shows every example style in turn, counting to Terms each time.
func (r *Runner) Demo() error {
	r.printf("Using N = %d\n\n", r.Terms)

	s := prgi.New(r.Opts)
	for i, ex := range examples {
		r.heading("Example %d: %s", i+1, ex.title)
		c := s.Init(r.Terms)
		r.start(r.Terms)
		for k := int64(0); k < r.Terms; k++ {
			if c.Advance(1) {
				r.frame(s, func() { ex.draw(s, k) })
			}
		}
		if ex.replace {
			s.Clear()
		}
		r.summary(s, ex.summary)
		time.Sleep(r.Pause)
		r.printf("\n")
	}
	return nil
}
