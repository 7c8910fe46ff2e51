package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAcquireRelease(t *testing.T) {
	lm := NewLockManager()

	require.True(t, lm.TryAcquire("plant-1"))

	// Held locks reject a second acquisition
	assert.False(t, lm.TryAcquire("plant-1"))

	lm.Release("plant-1")
	assert.True(t, lm.TryAcquire("plant-1"))
	lm.Release("plant-1")
}

func TestLocksAreIndependentPerKey(t *testing.T) {
	lm := NewLockManager()

	require.True(t, lm.TryAcquire("plant-1"))
	assert.True(t, lm.TryAcquire("plant-2"))

	lm.Release("plant-1")
	lm.Release("plant-2")
}

func TestGetLockReturnsSameMutex(t *testing.T) {
	lm := NewLockManager()

	first := lm.GetLock("key")
	second := lm.GetLock("key")
	assert.Same(t, first, second)

	other := lm.GetLock("other")
	assert.NotSame(t, first, other)
}

func TestConcurrentAcquire_OnlyOneWinner(t *testing.T) {
	lm := NewLockManager()

	const goroutines = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if lm.TryAcquire("contested") {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	lm.Release("contested")
}
