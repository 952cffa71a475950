//go:build windows

package guard

import (
	"fmt"
	"log"
	"runtime"
	"sync/atomic"
	"syscall"
	"unsafe"

	"scrollguard/internal/winapi"
	"scrollguard/internal/winquery"
)

// Hook owns the process-wide WH_MOUSE_LL observer and the message pump that
// keeps it alive.
type Hook struct {
	engine   *Engine
	state    armState
	running  atomic.Bool
	threadID atomic.Uint32
	done     chan struct{}
}

// The low-level hook callback carries no context argument, so the installed
// hook is reachable through a package-level pointer. Exactly one hook is
// armed per run.
var activeHook *Hook

var mouseHookPtr = syscall.NewCallback(mouseHookProc)

// NewHook creates an unarmed hook feeding the given engine.
func NewHook(engine *Engine) *Hook {
	return &Hook{engine: engine, done: make(chan struct{})}
}

// Start installs the low-level mouse hook on a dedicated OS thread and starts
// pumping its messages. It returns once installation has succeeded or failed;
// the pump keeps running until Stop is called.
func (h *Hook) Start() error {
	activeHook = h
	h.running.Store(true)
	installed := make(chan error, 1)

	// The hook must be registered on the same thread that runs its
	// message loop.
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		defer close(h.done)

		tid, _, _ := winapi.GetCurrentThreadId.Call()
		h.threadID.Store(uint32(tid))

		hMod, _, _ := winapi.GetModuleHandle.Call(0)
		handle, _, err := winapi.SetWindowsHookEx.Call(
			winapi.WH_MOUSE_LL,
			mouseHookPtr,
			hMod,
			0,
		)
		if handle == 0 {
			installed <- fmt.Errorf("SetWindowsHookEx failed: %w", err)
			return
		}
		h.state.set(handle)
		installed <- nil
		log.Println("Mouse hook installed.")

		var msg winapi.MSG
		for h.running.Load() {
			ret, _, _ := winapi.GetMessage.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
			if int32(ret) <= 0 {
				break
			}
			winapi.TranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
			winapi.DispatchMessage.Call(uintptr(unsafe.Pointer(&msg)))
		}

		h.uninstall()
	}()

	return <-installed
}

// Stop disarms the hook and ends the message pump. Safe to call from any
// goroutine, concurrently with a dispatch in flight, and more than once.
func (h *Hook) Stop() {
	if !h.running.CompareAndSwap(true, false) {
		return
	}
	h.uninstall()
	if tid := h.threadID.Load(); tid != 0 {
		winapi.PostThreadMessage.Call(uintptr(tid), winapi.WM_QUIT, 0, 0)
	}
}

// Done is closed once the message pump has exited.
func (h *Hook) Done() <-chan struct{} {
	return h.done
}

func (h *Hook) uninstall() {
	if handle := h.state.clear(); handle != 0 {
		winapi.UnhookWindowsHookEx.Call(handle)
		log.Println("Mouse hook removed.")
	}
}

func mouseHookProc(nCode int, wParam uintptr, lParam uintptr) uintptr {
	h := activeHook
	if nCode == winapi.HC_ACTION && h != nil {
		var kind EventKind
		switch uint32(wParam) {
		case winapi.WM_MOUSEWHEEL:
			kind = WheelVertical
		case winapi.WM_MOUSEHWHEEL:
			kind = WheelHorizontal
		}
		if kind != Other {
			info := (*winapi.MSLLHOOKSTRUCT)(unsafe.Pointer(lParam))
			pt := winquery.Point{X: info.Point.X, Y: info.Point.Y}
			if h.engine.Decide(kind, pt) == Swallow {
				// Non-zero return ends the event's propagation: no
				// window or later hook receives it.
				return 1
			}
		}
	}

	var handle uintptr
	if h != nil {
		handle = h.state.get()
	}
	ret, _, _ := winapi.CallNextHookEx.Call(handle, uintptr(nCode), wParam, lParam)
	return ret
}
