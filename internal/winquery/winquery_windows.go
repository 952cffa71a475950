//go:build windows

package winquery

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"scrollguard/internal/winapi"
)

func windowPid(hwnd uintptr) uint32 {
	var pid uint32
	winapi.GetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	return pid
}

// ProcessAtPoint resolves the process owning the top-level window at the
// given screen coordinate. Child and owned windows are walked up to their
// root ancestor so clicks inside a frame attribute to the owning app.
// ok is false when no window occupies the point.
func ProcessAtPoint(pt Point) (uint32, bool) {
	// WindowFromPoint takes POINT by value: x in the low dword, y in the high.
	arg := uintptr(uint64(uint32(pt.X)) | uint64(uint32(pt.Y))<<32)
	hwnd, _, _ := winapi.WindowFromPoint.Call(arg)
	if hwnd == 0 {
		return 0, false
	}
	if root, _, _ := winapi.GetAncestor.Call(hwnd, winapi.GA_ROOT); root != 0 {
		hwnd = root
	}
	pid := windowPid(hwnd)
	return pid, pid != 0
}

// ForegroundPid resolves the process owning the current foreground window.
// ok is false during focus transitions when no window is foreground.
func ForegroundPid() (uint32, bool) {
	hwnd, _, _ := winapi.GetForegroundWindow.Call()
	if hwnd == 0 {
		return 0, false
	}
	pid := windowPid(hwnd)
	return pid, pid != 0
}

// CursorPos returns the live cursor position in screen coordinates.
func CursorPos() (Point, error) {
	var pt winapi.POINT
	ret, _, err := winapi.GetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return Point{}, fmt.Errorf("GetCursorPos failed: %w", err)
	}
	return Point{X: pt.X, Y: pt.Y}, nil
}

// ProcessName returns a best-effort display name for a process. It tries the
// module base name first, then the full image path, and never fails.
func ProcessName(pid uint32) string {
	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION|windows.PROCESS_VM_READ, false, pid)
	if err != nil {
		return unknownProcess
	}
	defer windows.CloseHandle(h)

	var buf [windows.MAX_PATH]uint16
	if err := windows.GetModuleBaseName(h, 0, &buf[0], uint32(len(buf))); err == nil {
		if name := windows.UTF16ToString(buf[:]); name != "" {
			return name
		}
	}
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(h, 0, &buf[0], &size); err == nil {
		if full := windows.UTF16ToString(buf[:size]); full != "" {
			return baseName(full)
		}
	}
	return unknownProcess
}

func windowTitle(hwnd uintptr) string {
	length, _, _ := winapi.GetWindowTextLength.Call(hwnd)
	if length == 0 {
		return ""
	}
	buf := make([]uint16, length+1)
	n, _, _ := winapi.GetWindowText.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// EnumWindows callbacks carry no closure, so collection goes through a
// package-level slice guarded for the (rare) concurrent enumeration.
var (
	enumMu  sync.Mutex
	enumOut []Candidate

	enumProc = syscall.NewCallback(func(hwnd, _ uintptr) uintptr {
		if vis, _, _ := winapi.IsWindowVisible.Call(hwnd); vis == 0 {
			return 1
		}
		pid := windowPid(hwnd)
		if pid == 0 {
			return 1
		}
		enumOut = append(enumOut, Candidate{
			HWND:  hwnd,
			Pid:   pid,
			Title: normalizeTitle(windowTitle(hwnd)),
		})
		return 1
	})
)

// EnumerateCandidates lists the visible top-level windows, one per process
// (first window seen wins), sorted by process name then title. An empty
// result is a valid outcome, not an error.
func EnumerateCandidates() []Candidate {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumOut = enumOut[:0]
	winapi.EnumWindows.Call(enumProc, 0)

	apps := dedupeByPid(enumOut)
	for i := range apps {
		apps[i].Process = ProcessName(apps[i].Pid)
	}
	sortCandidates(apps)
	return apps
}
