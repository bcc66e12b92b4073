//go:build linux

package main

import "golang.org/x/sys/unix"

// enableRawMode puts fd into single-keystroke mode: no line buffering, no
// local echo, signals delivered as raw bytes rather than interrupts. The
// returned func restores the terminal's prior settings.
func enableRawMode(fd int) (func(), error) {
	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}
	raw := *orig
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, err
	}
	return func() { unix.IoctlSetTermios(fd, unix.TCSETS, orig) }, nil
}
