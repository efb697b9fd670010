package prgi

import (
	// standard
	"fmt"
	// local
	"github.com/nil0x42/prgi/internal/humanize"
)

// The formatters render the last published snapshot and may be called
// from any goroutine.

// Percent returns the published progress as a percentage, e.g. "42%".
func (s *Session) Percent() string {
	return fmt.Sprintf("%.0f%%", 100*s.snap.Load().Progress)
}

// Elapsed returns the time elapsed since Init, e.g. "5m42s".
func (s *Session) Elapsed() string {
	return humanize.Duration(s.snap.Load().Elapsed)
}

// Remaining returns the estimated time left, or "?" while unknown.
func (s *Session) Remaining() string {
	return humanize.Duration(s.snap.Load().Remaining)
}

// Rate returns the rate over the last interval, e.g. "1.50K".
func (s *Session) Rate() string {
	return humanize.SI(s.snap.Load().Rate)
}

// MeanRate returns the rate since Init.
func (s *Session) MeanRate() string {
	return humanize.SI(s.snap.Load().MeanRate)
}

// Throbber returns the next character of anim, one per call, or a space
// once all work is done. Like Printf, it advances display state: with
// Options.LockOnUpdate, call it only while holding a ready publish.
func (s *Session) Throbber(anim string) rune {
	s.guard()
	defer s.unguard()

	frames := []rune(anim)
	if len(frames) == 0 || s.stats.Done == s.stats.Total {
		return ' '
	}
	r := frames[s.throbber%len(frames)]
	s.throbber++
	return r
}
