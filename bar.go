package prgi

import (
	// standard
	"fmt"
	"math"
	"unicode/utf8"
	// external
	"github.com/mattn/go-runewidth"
)

const (
	defaultFill  = '#'
	defaultEmpty = '.'
)

// Cell is a piece of a line whose content may be rendered after the line
// was first formatted. It implements fmt.Stringer: pass the *Cell itself
// to Printf, never the result of String, so that the second formatting
// pass sees the final content.
type Cell struct {
	buf  []byte
	draw func(buf []byte, width int) []byte
}

// String returns the current content of the cell. An expandable cell is
// empty until Printf has sized it.
func (c *Cell) String() string {
	return string(c.buf)
}

func (c *Cell) render(width int) {
	c.buf = c.draw(c.buf[:0], width)
}

// layout renders c at width n, or defers it to the Printf it is given to
// when n is zero or negative.
func (s *Session) layout(n int, c *Cell) *Cell {
	if n > 0 {
		c.render(n)
		return c
	}
	s.guard()
	s.pending = append(s.pending, c)
	s.unguard()
	return c
}

// Bar returns a progress bar of n columns (clamped to [MinBarLen,
// MaxBarLen]), or one filling the remaining width of the line when n is 0.
//
// With a two-character fill, such as "#.", the first character draws the
// done part and the second one the rest. With a single character, the whole
// bar is drawn with it and the done part is shown in reverse video. An empty
// or unusable fill defaults to "#.".
func (s *Session) Bar(n int, fill string) *Cell {
	return s.BarText(n, fill, "")
}

// BarText is like Bar, with the formatted text centred on top of the bar.
// Text longer than the bar is cut.
func (s *Session) BarText(n int, fill, format string, args ...any) *Cell {
	var text []rune
	if format != "" {
		text = []rune(fmt.Sprintf(format, args...))
	}
	progress := s.snap.Load().Progress
	on, off := barFill(fill)
	return s.layout(n, &Cell{draw: func(buf []byte, width int) []byte {
		return appendBar(buf, width, progress, on, off, text)
	}})
}

// Spacer returns a cell filling the remaining width of the line with fill.
// Like an expandable bar, it shares that width with the other expandable
// cells of the line.
func (s *Session) Spacer(fill rune) *Cell {
	if runewidth.RuneWidth(fill) != 1 {
		fill = ' '
	}
	return s.layout(0, &Cell{draw: func(buf []byte, width int) []byte {
		for i := 0; i < width; i++ {
			buf = utf8.AppendRune(buf, fill)
		}
		return buf
	}})
}

// barFill returns the done and remaining fill characters. off is 0 when
// the bar is drawn in reverse video.
func barFill(fill string) (on, off rune) {
	runes := []rune(fill)
	if len(runes) == 0 || len(runes) > 2 {
		return defaultFill, defaultEmpty
	}
	for _, r := range runes {
		// a wider character would break the column budget
		if runewidth.RuneWidth(r) != 1 {
			return defaultFill, defaultEmpty
		}
	}
	if len(runes) == 1 {
		return runes[0], 0
	}
	return runes[0], runes[1]
}

// filledCells returns round(width*progress), within [0, width].
func filledCells(width int, progress float64) int {
	x := math.Round(float64(width) * progress)
	switch {
	case math.IsNaN(x) || x < 0:
		return 0
	case x > float64(width):
		return width
	}
	return int(x)
}

// fitText cuts text to at most width columns and returns the columns it
// takes.
func fitText(text []rune, width int) ([]rune, int) {
	cols := 0
	for i, r := range text {
		w := runewidth.RuneWidth(r)
		if cols+w > width {
			return text[:i], cols
		}
		cols += w
	}
	return text, cols
}

func appendBar(buf []byte, width int, progress float64, on, off rune, text []rune) []byte {
	width = min(max(width, MinBarLen), MaxBarLen)
	filled := filledCells(width, progress)

	text, textCols := fitText(text, width)
	start := (width - textCols) / 2

	reverse := off == 0 && filled > 0
	if reverse {
		buf = append(buf, reverseOn...)
	}
	for col := 0; col < width; {
		if reverse && col >= filled {
			buf = append(buf, styleReset...)
			reverse = false
		}
		switch {
		case col >= start && len(text) > 0:
			buf = utf8.AppendRune(buf, text[0])
			col += runewidth.RuneWidth(text[0])
			text = text[1:]
			continue
		case off == 0 || col < filled:
			buf = utf8.AppendRune(buf, on)
		default:
			buf = utf8.AppendRune(buf, off)
		}
		col++
	}
	if reverse {
		buf = append(buf, styleReset...)
	}
	return buf
}
