//go:build linux

package tty

import (
	"os"

	"github.com/google/goterm/term"
)

// openPTY is a tiny wrapper around term.OpenPTY returning the master and
// slave *os.File handles.
func openPTY() (*os.File, *os.File, error) {
	p, err := term.OpenPTY()
	if err != nil {
		return nil, nil, err
	}
	return p.Master, p.Slave, nil
}
