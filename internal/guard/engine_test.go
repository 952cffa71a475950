package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scrollguard/internal/winquery"
)

const (
	gamePid uint32 = 100
	chatPid uint32 = 200
)

var cursor = winquery.Point{X: 640, Y: 480}

func fakeQueries(fgPid uint32, fgOK bool, underPid uint32, underOK bool) Queries {
	return Queries{
		ForegroundPid: func() (uint32, bool) { return fgPid, fgOK },
		PidAtPoint:    func(winquery.Point) (uint32, bool) { return underPid, underOK },
	}
}

func TestNonWheelEventsAlwaysForwarded(t *testing.T) {
	// Movement and button events pass through even in the worst case for a
	// wheel event: target set, target foreground, cursor over another app.
	e := NewEngine(fakeQueries(gamePid, true, chatPid, true))
	e.Protect(gamePid)

	assert.Equal(t, Forward, e.Decide(Other, cursor))
}

func TestWheelForwardedBeforeTargetChosen(t *testing.T) {
	e := NewEngine(fakeQueries(gamePid, true, chatPid, true))

	assert.Equal(t, Forward, e.Decide(WheelVertical, cursor))
	assert.Equal(t, Forward, e.Decide(WheelHorizontal, cursor))
}

func TestWheelOverOtherAppSwallowed(t *testing.T) {
	// Game is foreground, cursor sits over the chat client on the second
	// monitor: the tick must not scroll the chat.
	e := NewEngine(fakeQueries(gamePid, true, chatPid, true))
	e.Protect(gamePid)

	assert.Equal(t, Swallow, e.Decide(WheelVertical, cursor))
	assert.Equal(t, Swallow, e.Decide(WheelHorizontal, cursor))
}

func TestWheelOverOwnSecondWindowForwarded(t *testing.T) {
	// A secondary window of the protected process is exempt.
	e := NewEngine(fakeQueries(gamePid, true, gamePid, true))
	e.Protect(gamePid)

	assert.Equal(t, Forward, e.Decide(WheelVertical, cursor))
}

func TestWheelForwardedWhenTargetNotForeground(t *testing.T) {
	// Alt-Tab away: protection is inactive regardless of cursor position.
	e := NewEngine(fakeQueries(chatPid, true, chatPid, true))
	e.Protect(gamePid)

	assert.Equal(t, Forward, e.Decide(WheelVertical, cursor))
}

func TestWheelOverEmptyDesktopSwallowed(t *testing.T) {
	// Deliberate and slightly surprising: while the protected app is
	// foreground, "no window under the cursor" counts as "not the target"
	// and is suppressed, matching the suppression condition exactly.
	e := NewEngine(fakeQueries(gamePid, true, 0, false))
	e.Protect(gamePid)

	assert.Equal(t, Swallow, e.Decide(WheelVertical, cursor))
}

func TestForegroundLookupFailureFailsOpen(t *testing.T) {
	// A transient null foreground window must never block input.
	e := NewEngine(fakeQueries(0, false, chatPid, true))
	e.Protect(gamePid)

	assert.Equal(t, Forward, e.Decide(WheelVertical, cursor))
}

func TestPointLookupSkippedWhenTargetNotForeground(t *testing.T) {
	calls := 0
	q := Queries{
		ForegroundPid: func() (uint32, bool) { return chatPid, true },
		PidAtPoint: func(winquery.Point) (uint32, bool) {
			calls++
			return chatPid, true
		},
	}
	e := NewEngine(q)
	e.Protect(gamePid)

	assert.Equal(t, Forward, e.Decide(WheelVertical, cursor))
	assert.Zero(t, calls, "point lookup should not run when protection is inactive")
}

func TestDecideUsesEventPoint(t *testing.T) {
	var got winquery.Point
	q := Queries{
		ForegroundPid: func() (uint32, bool) { return gamePid, true },
		PidAtPoint: func(pt winquery.Point) (uint32, bool) {
			got = pt
			return gamePid, true
		},
	}
	e := NewEngine(q)
	e.Protect(gamePid)

	pt := winquery.Point{X: -1920, Y: 37} // secondary monitor left of primary
	e.Decide(WheelVertical, pt)
	assert.Equal(t, pt, got)
}
