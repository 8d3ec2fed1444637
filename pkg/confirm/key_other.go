//go:build !(linux || darwin || freebsd)

package confirm

import "github.com/pkg/errors"

func readKey() (byte, error) {
	return 0, errors.New("raw IO not supported")
}
