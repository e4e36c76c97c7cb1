//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

// Package termsize reports the width of the terminal attached to a file.
package termsize

import "golang.org/x/sys/unix"

// Width returns the column count of the terminal behind fd. ok is false
// when fd is not a terminal.
func Width(fd uintptr) (int, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0, false
	}
	return int(ws.Col), true
}
