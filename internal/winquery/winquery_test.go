package winquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "Main", normalizeTitle("Main"))
	assert.Equal(t, "[No Title]", normalizeTitle(""))
	assert.Equal(t, "[No Title]", normalizeTitle("   \t"))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "game.exe", baseName(`C:\Games\Some Game\game.exe`))
	assert.Equal(t, "tool.exe", baseName(`C:/mixed/separators\tool.exe`))
	assert.Equal(t, "bare.exe", baseName("bare.exe"))
}

func TestDedupeKeepsFirstWindowPerProcess(t *testing.T) {
	// Two windows of pid 300: only the first encountered survives.
	apps := dedupeByPid([]Candidate{
		{HWND: 1, Pid: 300, Title: "Main"},
		{HWND: 2, Pid: 300, Title: "Settings"},
		{HWND: 3, Pid: 400, Title: "Other"},
	})

	assert.Len(t, apps, 2)
	assert.Equal(t, uint32(300), apps[0].Pid)
	assert.Equal(t, "Main", apps[0].Title)
	assert.Equal(t, uint32(400), apps[1].Pid)
}

func TestDedupeDropsPidZero(t *testing.T) {
	apps := dedupeByPid([]Candidate{
		{HWND: 1, Pid: 0, Title: "Orphan"},
		{HWND: 2, Pid: 500, Title: "Real"},
	})

	assert.Len(t, apps, 1)
	assert.Equal(t, uint32(500), apps[0].Pid)
}

func TestSortIsCaseInsensitiveByProcessThenTitle(t *testing.T) {
	apps := []Candidate{
		{Pid: 1, Process: "zebra.exe", Title: "z"},
		{Pid: 2, Process: "Alpha.exe", Title: "B"},
		{Pid: 3, Process: "alpha.exe", Title: "a"},
		{Pid: 4, Process: "Chrome.exe", Title: "tab"},
	}
	sortCandidates(apps)

	assert.Equal(t, "a", apps[0].Title)
	assert.Equal(t, "B", apps[1].Title)
	assert.Equal(t, "Chrome.exe", apps[2].Process)
	assert.Equal(t, "zebra.exe", apps[3].Process)
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	apps := []Candidate{
		{Pid: 1, Process: "app.exe", Title: "same"},
		{Pid: 2, Process: "APP.exe", Title: "SAME"},
	}
	sortCandidates(apps)

	assert.Equal(t, uint32(1), apps[0].Pid)
	assert.Equal(t, uint32(2), apps[1].Pid)
}
