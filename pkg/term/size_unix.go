//go:build unix

package term

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// WindowSize reports the terminal dimensions in columns and rows. It
// probes stdin, stdout, and stderr in order so a partially redirected
// process still finds its controlling terminal; it fails only when all
// three probes fail, in which case callers keep their prior dimensions.
func WindowSize() (width, height int, err error) {
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if err == nil && ws.Col > 0 && ws.Row > 0 {
			return int(ws.Col), int(ws.Row), nil
		}
	}
	return 0, 0, errors.New("term: no winsize from stdin, stdout, or stderr")
}
