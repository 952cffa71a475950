//go:build windows

// Package winapi holds the shared user32/kernel32 declarations used across
// the Windows-specific packages. Define them once to avoid loading the same
// DLLs from multiple places.
package winapi

import (
	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	// Low-level hook lifecycle
	SetWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	UnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	CallNextHookEx      = user32.NewProc("CallNextHookEx")

	// Message pump
	GetMessage        = user32.NewProc("GetMessageW")
	TranslateMessage  = user32.NewProc("TranslateMessage")
	DispatchMessage   = user32.NewProc("DispatchMessageW")
	PostThreadMessage = user32.NewProc("PostThreadMessageW")

	// Window and cursor queries
	GetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	GetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	WindowFromPoint          = user32.NewProc("WindowFromPoint")
	GetAncestor              = user32.NewProc("GetAncestor")
	GetCursorPos             = user32.NewProc("GetCursorPos")
	EnumWindows              = user32.NewProc("EnumWindows")
	IsWindowVisible          = user32.NewProc("IsWindowVisible")
	GetWindowTextLength      = user32.NewProc("GetWindowTextLengthW")
	GetWindowText            = user32.NewProc("GetWindowTextW")

	GetModuleHandle    = kernel32.NewProc("GetModuleHandleW")
	GetCurrentThreadId = kernel32.NewProc("GetCurrentThreadId")
)

const (
	WH_MOUSE_LL = 14
	HC_ACTION   = 0

	WM_MOUSEWHEEL  = 0x020A
	WM_MOUSEHWHEEL = 0x020E
	WM_QUIT        = 0x0012

	GA_ROOT = 2
)

type POINT struct {
	X, Y int32
}

type MSG struct {
	Hwnd    windows.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      POINT
}

// MSLLHOOKSTRUCT is the lParam payload of a WH_MOUSE_LL callback. Point is in
// screen coordinates.
type MSLLHOOKSTRUCT struct {
	Point       POINT
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}
