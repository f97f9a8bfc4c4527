package concurrency

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager[int]()
	assert.Same(t, lm.GetLock(1), lm.GetLock(1))
	assert.NotSame(t, lm.GetLock(1), lm.GetLock(2))
}

func TestWithLock_SerialisesPerKey(t *testing.T) {
	lm := NewLockManager[string]()
	counter := 0

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.WithLock("slot", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestWithLock_ReturnsError(t *testing.T) {
	lm := NewLockManager[int]()
	want := errors.New("boom")
	assert.ErrorIs(t, lm.WithLock(3, func() error { return want }), want)

	// the lock is released after an error
	assert.NoError(t, lm.WithLock(3, func() error { return nil }))
}
