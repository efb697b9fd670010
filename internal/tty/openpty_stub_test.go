//go:build !linux && !((darwin || freebsd || openbsd || netbsd || dragonfly) && cgo)

package tty

import "os"

// openPTY stub: no pseudo-terminal helper on this platform, tests needing
// one are skipped.
func openPTY() (*os.File, *os.File, error) {
	return nil, nil, os.ErrNotExist
}
