package guard

import "sync/atomic"

// armState tracks the installed observer handle. The termination signal
// handler may race the message pump's own shutdown, so clearing must hand the
// handle to exactly one caller.
type armState struct {
	handle atomic.Uintptr
}

func (s *armState) set(h uintptr) {
	s.handle.Store(h)
}

func (s *armState) get() uintptr {
	return s.handle.Load()
}

// clear returns the handle to the first caller and 0 to everyone after, so
// the uninstall call runs at most once.
func (s *armState) clear() uintptr {
	return s.handle.Swap(0)
}
