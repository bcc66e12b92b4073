//go:build windows

package main

import "golang.org/x/sys/windows"

// enableRawMode puts fd into single-keystroke mode by clearing the console
// input mode's line-input and echo flags. The returned func restores the
// console's prior mode.
func enableRawMode(fd int) (func(), error) {
	h := windows.Handle(fd)
	var orig uint32
	if err := windows.GetConsoleMode(h, &orig); err != nil {
		return nil, err
	}
	raw := orig &^ (windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT)
	if err := windows.SetConsoleMode(h, raw); err != nil {
		return nil, err
	}
	return func() { windows.SetConsoleMode(h, orig) }, nil
}
