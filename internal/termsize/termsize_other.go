//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

// Package termsize reports the width of the terminal attached to a file.
package termsize

// Width always reports no terminal on this platform.
func Width(fd uintptr) (int, bool) {
	return 0, false
}
