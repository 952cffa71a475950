// Package selector implements the one-shot interactive choice of the process
// to protect: a numbered menu of visible windows, with hover-select as the
// fallback.
package selector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"scrollguard/internal/winquery"
)

// Enumerator lists the currently selectable windows.
type Enumerator interface {
	EnumerateCandidates() []winquery.Candidate
}

// Resolver samples the live cursor and maps it to a process.
type Resolver interface {
	CursorPos() (winquery.Point, error)
	ProcessAtPoint(pt winquery.Point) (uint32, bool)
	ProcessName(pid uint32) string
}

// System backs both interfaces with the live OS.
type System struct{}

func (System) EnumerateCandidates() []winquery.Candidate {
	return winquery.EnumerateCandidates()
}

func (System) CursorPos() (winquery.Point, error) {
	return winquery.CursorPos()
}

func (System) ProcessAtPoint(pt winquery.Point) (uint32, bool) {
	return winquery.ProcessAtPoint(pt)
}

func (System) ProcessName(pid uint32) string {
	return winquery.ProcessName(pid)
}

// Choice is the selected protected target.
type Choice struct {
	Pid  uint32
	Name string
}

// Select runs the selection flow exactly once. Malformed input, an
// out-of-range index, or a failed hover-select are fatal; the caller exits
// rather than retrying.
func Select(in io.Reader, out io.Writer, enum Enumerator, res Resolver) (Choice, error) {
	reader := bufio.NewReader(in)

	apps := enum.EnumerateCandidates()
	if len(apps) == 0 {
		fmt.Fprintln(out, "No visible apps found to list. We'll use Hover-Select instead.")
		return hoverSelect(reader, out, res)
	}

	fmt.Fprintln(out, "Pick the application to protect (enter the number).")
	fmt.Fprintln(out, "Or type 0 to use Hover-Select.")
	fmt.Fprintln(out)
	for i, app := range apps {
		fmt.Fprintf(out, "%3d. %s  -  %s\n", i+1, app.Process, app.Title)
	}
	fmt.Fprint(out, "\nSelection (0 for Hover-Select): ")

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return Choice{}, fmt.Errorf("reading selection: %w", err)
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return Choice{}, fmt.Errorf("invalid selection %q", strings.TrimSpace(line))
	}

	switch {
	case choice == 0:
		return hoverSelect(reader, out, res)
	case choice >= 1 && choice <= len(apps):
		picked := apps[choice-1]
		return Choice{Pid: picked.Pid, Name: picked.Process}, nil
	default:
		return Choice{}, fmt.Errorf("selection %d out of range 1..%d", choice, len(apps))
	}
}

func hoverSelect(reader *bufio.Reader, out io.Writer, res Resolver) (Choice, error) {
	fmt.Fprintln(out, "\nHover your mouse over the target app (its main window) and press Enter...")
	// The line's content is ignored; it is only the confirm gesture.
	reader.ReadString('\n')

	pt, err := res.CursorPos()
	if err != nil {
		return Choice{}, fmt.Errorf("reading cursor position: %w", err)
	}
	pid, ok := res.ProcessAtPoint(pt)
	if !ok {
		return Choice{}, fmt.Errorf("no window under the cursor; keep the target window visible and try again")
	}
	return Choice{Pid: pid, Name: res.ProcessName(pid)}, nil
}
