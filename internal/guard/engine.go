// Package guard implements the wheel-event suppression engine and the global
// low-level mouse hook that feeds it.
package guard

import (
	"sync/atomic"

	"scrollguard/internal/winquery"
)

// Decision is the verdict for a single low-level mouse event.
type Decision int

const (
	// Forward passes the event unmodified along the hook chain.
	Forward Decision = iota
	// Swallow terminates the event; no window or later observer sees it.
	Swallow
)

// EventKind classifies the low-level mouse events the engine cares about.
// Everything that is not a wheel tick is Other and always forwarded.
type EventKind int

const (
	Other EventKind = iota
	WheelVertical
	WheelHorizontal
)

// Queries are the two point-in-time OS lookups the engine performs per wheel
// event. They are injected so the decision rule is testable without an
// installed hook.
type Queries struct {
	ForegroundPid func() (uint32, bool)
	PidAtPoint    func(winquery.Point) (uint32, bool)
}

// SystemQueries returns Queries backed by the live OS.
func SystemQueries() Queries {
	return Queries{
		ForegroundPid: winquery.ForegroundPid,
		PidAtPoint:    winquery.ProcessAtPoint,
	}
}

// Engine decides, for every wheel event, whether it may reach the window
// under the cursor. It runs on the hook callback, a latency-critical input
// path: no blocking, no allocation, no side effects.
type Engine struct {
	queries Queries
	target  atomic.Uint32 // protected pid; 0 means none selected yet
}

// NewEngine creates an engine with no protected target.
func NewEngine(q Queries) *Engine {
	return &Engine{queries: q}
}

// Protect sets the process the engine guards. Written once before the hook
// is armed; read-only afterwards.
func (e *Engine) Protect(pid uint32) {
	e.target.Store(pid)
}

// Target returns the protected pid, or 0 if none is set.
func (e *Engine) Target() uint32 {
	return e.target.Load()
}

// Decide applies the suppression rule. Wheel events are swallowed only while
// the protected process owns the foreground window and the cursor is not over
// one of that process's own windows. Failed lookups fail open: a transient
// query miss must never block input system-wide.
func (e *Engine) Decide(kind EventKind, pt winquery.Point) Decision {
	if kind == Other {
		return Forward
	}
	target := e.target.Load()
	if target == 0 {
		return Forward
	}
	fgPid, ok := e.queries.ForegroundPid()
	if !ok || fgPid != target {
		return Forward
	}
	// "Not the target" includes no window at all: scrolling over empty
	// desktop while the guarded app is focused is still suppressed.
	if underPid, ok := e.queries.PidAtPoint(pt); ok && underPid == target {
		return Forward
	}
	return Swallow
}
