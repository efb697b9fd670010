package ansi

import (
	"strings"
	"testing"
)

const (
	rev   = "\x1b[7m"
	reset = "\x1b[0m"
	up    = "\x1b[A"
	erase = "\x1b[K"
	red   = "\x1b[1;31m"
)

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"plain", "hello", 5},
		{"only sequences", rev + reset + up + erase + red, 0},
		{"interleaved", red + "a" + reset + "b" + rev + "c" + up, 3},
		{"leading and trailing", reset + "abc" + reset, 3},
		{"intermediate byte", "\x1b[1 qx", 1},
		{"cursor column", "x\x1b[80G", 1},
		{"lone escape", "\x1bx", 1},
		{"unicode runes", "héllo ⣿", 7},
		{"combining accent", "e\u0301", 1},
		{"wide ideographs", "漢字", 4},
		{"emoji", "👍!", 3},
		{"styled wide", red + "漢" + reset + "x", 3},
		{"truncated sequence", "ab\x1b[1;3", 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := VisibleLength(tc.in); got != tc.want {
				t.Fatalf("VisibleLength(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestRawPrefixLength(t *testing.T) {
	s := "abc" + rev + "fgh"
	if got := RawPrefixLength(s, 3); got != 7 {
		t.Errorf("RawPrefixLength(%q, 3) = %d, want 7", s, got)
	}
	if got := RawPrefixLength(s, 4); got != 8 {
		t.Errorf("RawPrefixLength(%q, 4) = %d, want 8", s, got)
	}
	if got := RawPrefixLength(s, 100); got != len(s) {
		t.Errorf("RawPrefixLength(%q, 100) = %d, want %d", s, got, len(s))
	}
	if got := RawPrefixLength(reset+"x", 0); got != len(reset) {
		t.Errorf("RawPrefixLength with k=0 = %d, want %d", got, len(reset))
	}
}

// TestRawPrefixNeverSplits checks every prefix length of several strings:
// the prefix must hold exactly k visible characters and end outside of any
// control sequence.
func TestRawPrefixNeverSplits(t *testing.T) {
	inputs := []string{
		"plain text",
		red + "[" + rev + "####" + reset + "....." + "] 42%" + reset,
		rev + reset + up + up + erase,
		"a" + rev + rev + "b" + reset + reset + "c",
		"⣿⣿" + red + "⡀" + reset + " done",
	}
	for _, s := range inputs {
		total := VisibleLength(s)
		for k := 0; k <= total+2; k++ {
			n := RawPrefixLength(s, k)
			prefix := s[:n]
			want := min(k, total)
			if got := VisibleLength(prefix); got != want {
				t.Fatalf("VisibleLength(prefix(%q, %d)) = %d, want %d", s, k, got, want)
			}
			// A split sequence would leak its tail into the remainder as
			// visible characters.
			if got := VisibleLength(prefix) + VisibleLength(s[n:]); got != total {
				t.Fatalf("prefix(%q, %d) splits a sequence: %d visible, want %d", s, k, got, total)
			}
			if strings.HasSuffix(prefix, "\x1b") || strings.HasSuffix(prefix, "\x1b[") {
				t.Fatalf("prefix(%q, %d) = %q splits a sequence", s, k, prefix)
			}
		}
	}
}

func TestRawPrefixWide(t *testing.T) {
	s := "漢" + red + "字x"
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, ""},
		{2, "漢" + red},
		{3, "漢" + red},
		{4, "漢" + red + "字"},
		{5, s},
	}
	for _, tc := range tests {
		if got := Truncate(s, tc.n); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", s, tc.n, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	s := "12345" + rev + "67890" + reset
	if got, want := Truncate(s, 5), "12345"+rev; got != want {
		t.Fatalf("Truncate = %q, want %q", got, want)
	}
	if got := Truncate(s, 50); got != s {
		t.Fatalf("Truncate past end = %q, want whole string", got)
	}
}

func BenchmarkVisibleLength(b *testing.B) {
	line := "pi = 3.14159265358979 [" + rev + strings.Repeat("#", 40) + reset +
		strings.Repeat(".", 20) + "] 67% | Remaining: 12s, Speed: 1.23G terms/s"
	for i := 0; i < b.N; i++ {
		VisibleLength(line)
	}
}
