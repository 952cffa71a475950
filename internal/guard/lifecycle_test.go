package guard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearHandsOutHandleOnce(t *testing.T) {
	var s armState
	s.set(0xBEEF)

	assert.Equal(t, uintptr(0xBEEF), s.clear())
	assert.Zero(t, s.clear(), "second clear must not see the handle again")
	assert.Zero(t, s.get())
}

func TestClearOnUnarmedStateIsSafe(t *testing.T) {
	var s armState
	assert.Zero(t, s.clear())
}

func TestConcurrentClearHasSingleWinner(t *testing.T) {
	// The console control handler can race the message pump's own
	// shutdown; only one of them may uninstall the hook.
	var s armState
	s.set(0xBEEF)

	var wg sync.WaitGroup
	winners := make(chan uintptr, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if h := s.clear(); h != 0 {
				winners <- h
			}
		}()
	}
	wg.Wait()
	close(winners)

	var count int
	for h := range winners {
		assert.Equal(t, uintptr(0xBEEF), h)
		count++
	}
	assert.Equal(t, 1, count)
}
