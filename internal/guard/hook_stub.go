//go:build !windows

package guard

import "errors"

// Stub implementation for non-Windows platforms.

// Hook is a stub hook for non-Windows platforms.
type Hook struct {
	engine *Engine
	done   chan struct{}
}

// NewHook creates a stub hook.
func NewHook(engine *Engine) *Hook {
	return &Hook{engine: engine, done: make(chan struct{})}
}

// Start fails: low-level mouse hooks exist only on Windows.
func (h *Hook) Start() error {
	return errors.New("low-level mouse hooks are only supported on Windows")
}

// Stop is a no-op.
func (h *Hook) Stop() {}

// Done returns a channel that never closes on unsupported platforms.
func (h *Hook) Done() <-chan struct{} {
	return h.done
}
