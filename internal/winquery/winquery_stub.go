//go:build !windows

package winquery

import "errors"

// Stub implementation for non-Windows platforms.

var errUnsupported = errors.New("window queries are only supported on Windows")

// ProcessAtPoint reports no window on unsupported platforms.
func ProcessAtPoint(pt Point) (uint32, bool) {
	return 0, false
}

// ForegroundPid reports no foreground window on unsupported platforms.
func ForegroundPid() (uint32, bool) {
	return 0, false
}

// CursorPos fails on unsupported platforms.
func CursorPos() (Point, error) {
	return Point{}, errUnsupported
}

// ProcessName returns the unknown sentinel on unsupported platforms.
func ProcessName(pid uint32) string {
	return unknownProcess
}

// EnumerateCandidates returns an empty list on unsupported platforms.
func EnumerateCandidates() []Candidate {
	return nil
}
