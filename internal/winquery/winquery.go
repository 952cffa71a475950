// Package winquery resolves top-level windows and their owning processes
// from live screen state: the window under a point, the foreground window,
// and the list of candidate windows for interactive selection.
package winquery

import (
	"sort"
	"strings"
)

// Point is a position in virtual-desktop screen coordinates. Coordinates can
// be negative on multi-monitor layouts.
type Point struct {
	X, Y int32
}

// Candidate is one selectable visible top-level window.
type Candidate struct {
	HWND    uintptr
	Pid     uint32
	Process string
	Title   string
}

const (
	unknownProcess = "(unknown)"
	noTitle        = "[No Title]"
)

// normalizeTitle replaces empty or whitespace-only window titles, common for
// borderless games, with a fixed placeholder.
func normalizeTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return noTitle
	}
	return title
}

// dedupeByPid keeps the first window encountered for each process.
func dedupeByPid(all []Candidate) []Candidate {
	seen := make(map[uint32]bool, len(all))
	out := make([]Candidate, 0, len(all))
	for _, c := range all {
		if c.Pid == 0 || seen[c.Pid] {
			continue
		}
		seen[c.Pid] = true
		out = append(out, c)
	}
	return out
}

// sortCandidates orders by process name then window title, case-insensitively,
// for a stable, readable list.
func sortCandidates(apps []Candidate) {
	sort.SliceStable(apps, func(i, j int) bool {
		pi, pj := strings.ToLower(apps[i].Process), strings.ToLower(apps[j].Process)
		if pi != pj {
			return pi < pj
		}
		return strings.ToLower(apps[i].Title) < strings.ToLower(apps[j].Title)
	})
}

// baseName returns the file name portion of a process image path. Windows
// reports both separators in practice.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}
