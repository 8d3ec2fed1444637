//go:build linux || darwin || freebsd

package confirm

import (
	"github.com/pkg/errors"
	"github.com/pkg/term"
)

// readKey switches the controlling terminal to raw mode long enough to read
// one key.
func readKey() (byte, error) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return 0, errors.Wrap(err, "open tty")
	}
	defer t.Close()
	defer t.Restore()

	var b [1]byte
	if _, err := t.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "read tty")
	}
	return b[0], nil
}
