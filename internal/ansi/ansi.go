// Package ansi measures and truncates strings while ignoring embedded
// terminal control sequences.
//
// Only CSI sequences are recognized (ESC '[' parameter bytes, intermediate
// bytes, one final byte). The ESC byte itself is never visible; whatever
// follows an ESC that does not open a CSI sequence is counted as text.
// Lengths are in terminal columns: a grapheme cluster takes the width the
// terminal gives it, so "e" + combining accent takes one column and a CJK
// ideograph or most emoji take two.
package ansi

import (
	// external
	"github.com/rivo/uniseg"
)

const esc = '\x1b'

// skip returns the index of the first byte at or after i which does not
// belong to a control sequence.
func skip(s string, i int) int {
	for i < len(s) && s[i] == esc {
		i++
		if i < len(s) && s[i] == '[' {
			i++
			for i < len(s) && 0x30 <= s[i] && s[i] <= 0x3f { // parameter bytes
				i++
			}
			for i < len(s) && 0x20 <= s[i] && s[i] <= 0x2f { // intermediate bytes
				i++
			}
			if i < len(s) && 0x40 <= s[i] && s[i] <= 0x7e { // final byte
				i++
			}
		}
	}
	return i
}

// scan walks s and calls fn with the raw offset reached after each visible
// grapheme cluster and the columns it takes, stopping as soon as fn returns
// false. Offsets include any control sequence trailing the cluster.
func scan(s string, fn func(end, width int) bool) {
	i := skip(s, 0)
	state := -1
	for i < len(s) {
		cluster, _, width, newState := uniseg.FirstGraphemeClusterInString(s[i:], state)
		i += len(cluster)
		state = newState
		if j := skip(s, i); j != i {
			i, state = j, -1
		}
		if !fn(i, width) {
			return
		}
	}
}

// VisibleLength returns the number of terminal columns taken by s.
func VisibleLength(s string) int {
	n := 0
	scan(s, func(_, width int) bool {
		n += width
		return true
	})
	return n
}

// RawPrefixLength returns the number of bytes of s needed to hold its first
// n columns. Control sequences following the last character are included,
// so the result never splits a sequence. A wide character which would
// straddle column n is left out. If s is narrower than n columns, len(s)
// is returned.
//
//	RawPrefixLength("abc\x1b[7mfgh", 3) == 7
//	RawPrefixLength("abc\x1b[7mfgh", 4) == 8
func RawPrefixLength(s string, n int) int {
	end := skip(s, 0)
	seen := 0
	scan(s, func(e, width int) bool {
		if seen+width > n {
			return false
		}
		seen += width
		end = e
		return true
	})
	return end
}

// Truncate returns the longest prefix of s holding at most n columns.
func Truncate(s string, n int) string {
	return s[:RawPrefixLength(s, n)]
}
