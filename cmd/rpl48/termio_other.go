//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package main

import "errors"

// enableRawMode reports that this platform has no known termios or console
// mode equivalent wired up.
func enableRawMode(fd int) (func(), error) {
	return nil, errors.New("raw keystroke mode is not supported on this platform")
}
