package prgi

import (
	// standard
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	// local
	"github.com/nil0x42/prgi/internal/ansi"
)

// validTerminal reports whether there is room to print anything, the
// truncation marker included. Non-terminals have a width of -1.
func (s *Session) validTerminal() bool {
	return s.width >= len(truncMarker)
}

// Printf formats a line and prints it as the next row of the frame, like
// Puts. Rows are separated automatically, the format needs no newline.
//
// Expandable cells (Bar or BarText with a zero length, Spacer) given as
// arguments are sized to share whatever width the rest of the line leaves:
// the line is formatted once with them empty, measured, then formatted
// again after the cells have been rendered at their final width.
// Expandable cells made for another line wait for their own Printf.
//
// With Options.LockOnUpdate, Printf and the other methods drawing the frame
// must only be called between a ready Advance and Unlock.
func (s *Session) Printf(format string, args ...any) {
	s.guard()
	defer s.unguard()

	if !s.validTerminal() {
		s.pending = s.pending[:0]
		return
	}
	if cells := s.takePending(args); len(cells) > 0 {
		line := fmt.Sprintf(format, args...)
		avail := s.width - ansi.VisibleLength(line)
		n := 1
		if avail > len(cells) {
			n = avail / len(cells)
		}
		for _, c := range cells {
			c.render(n)
		}
	}
	s.puts(fmt.Sprintf(format, args...))
}

// takePending removes from the pending cells those given in args, and
// returns them.
func (s *Session) takePending(args []any) []*Cell {
	var taken []*Cell
	kept := s.pending[:0]
	for _, c := range s.pending {
		if slices.ContainsFunc(args, func(a any) bool {
			p, ok := a.(*Cell)
			return ok && p == c
		}) {
			taken = append(taken, c)
		} else {
			kept = append(kept, c)
		}
	}
	clear(s.pending[len(kept):])
	s.pending = kept
	return taken
}

// Puts prints line as the next row of the frame. Lines wider than the
// terminal are cut and end with ">>>". It does nothing if the output is
// not a terminal or is too narrow.
//
// line must not contain newlines: the frame is erased row by row.
func (s *Session) Puts(line string) {
	s.guard()
	defer s.unguard()
	s.puts(line)
}

func (s *Session) puts(line string) {
	if !s.validTerminal() {
		return
	}
	var b strings.Builder
	b.Grow(len(line) + 16)

	// Separate this line from the previous one.
	if s.printed > 0 {
		b.WriteByte('\n')
	}
	if ansi.VisibleLength(line) <= s.width {
		b.WriteString(line)
	} else {
		// Also reset the style, in case some reset was lost in truncation.
		b.WriteString(ansi.Truncate(line, s.width-len(truncMarker)))
		b.WriteString(truncMarker)
		b.WriteString(styleReset)
	}
	// Park the cursor at the end of the line.
	b.WriteString("\x1b[")
	b.WriteString(strconv.Itoa(s.stats.Columns))
	b.WriteByte('G')

	io.WriteString(s.opts.Output, b.String())
	s.printed++
}

// Clear erases all rows printed since the last publish. Advance already
// clears the frame before returning true; call Clear to remove the
// progress lines for good, before printing a final summary.
func (s *Session) Clear() {
	s.guard()
	defer s.unguard()
	s.clear()
}

func (s *Session) clear() {
	if s.printed == 0 {
		return
	}
	if !s.validTerminal() {
		s.printed = 0
		return
	}
	// Return the carriage and erase the current row, then go up and erase
	// every previous one.
	io.WriteString(s.opts.Output,
		lineErase+strings.Repeat(upErase, s.printed-1))
	s.printed = 0
}

// Finish ends the current frame with a newline so that it stays on the
// terminal and later output starts on a fresh line.
func (s *Session) Finish() {
	s.guard()
	defer s.unguard()
	if s.printed == 0 {
		return
	}
	if s.validTerminal() {
		io.WriteString(s.opts.Output, styleReset+"\n")
	}
	s.printed = 0
}
