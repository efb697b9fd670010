package tty

import (
	// standard
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"
	// external
	"golang.org/x/term"
)

// stripAnsiRegex removes ANSI escape sequences (colors, cursor movements, etc.).
var stripAnsiRegex = regexp.MustCompile(
	"[\u001B\u009B][[\\]()#;?]*(?:(?:(?:[a-zA-Z\\d]*(?:;[a-zA-Z\\d]*)*)?\u0007)|(?:(?:\\d{1,4}(?:;\\d{0,4})*)?[\\dA-PRZcf-ntqry=><~]))",
)

// cacheIsTTY stores the result of IsTTY for each file descriptor,
// avoiding repeated system calls.
var cacheIsTTY sync.Map // Key = file descriptor (uintptr), Value = bool

// IsTTY returns whether w is a terminal. Writers which are not an
// *os.File never are. The result is cached per file descriptor.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	if cached, ok := cacheIsTTY.Load(fd); ok {
		return cached.(bool)
	}
	isTerminal := term.IsTerminal(int(fd))
	cacheIsTTY.Store(fd, isTerminal)
	return isTerminal
}

// Columns returns the width of the terminal behind w, or -1 if w is not
// a terminal. It is not cached: the terminal may be resized at any time.
func Columns(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return -1
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return -1
	}
	return width
}

// OpenTTY opens the controlling terminal for writing, or returns nil if
// the process has none.
func OpenTTY() *os.File {
	f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return nil
	}
	if !IsTTY(f) {
		f.Close()
		return nil
	}
	return f
}

// StripAnsi removes all ANSI escape sequences from a string.
func StripAnsi(str string) string {
	return stripAnsiRegex.ReplaceAllString(str, "")
}

// SmartFprintf behaves like fmt.Fprintf, but automatically strips
// ANSI sequences if w is not a TTY.
func SmartFprintf(w io.Writer, format string, args ...interface{}) (int, error) {
	output := fmt.Sprintf(format, args...)
	if !IsTTY(w) {
		output = StripAnsi(output)
	}
	return io.WriteString(w, output)
}
