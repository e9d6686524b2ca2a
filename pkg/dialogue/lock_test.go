package dialogue

import (
	"sync"
	"testing"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()

	const iterations = 200
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				unlock := km.Lock("session-a")
				counter++
				unlock()
			}
		}()
	}
	wg.Wait()

	if counter != 8*iterations {
		t.Errorf("counter = %d, want %d", counter, 8*iterations)
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := NewKeyedMutex()

	unlockA := km.Lock("session-a")
	defer unlockA()

	// A different key must not block.
	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("session-b")
		unlockB()
		close(done)
	}()

	<-done
}

func TestKeyedMutexReleasesEntries(t *testing.T) {
	km := NewKeyedMutex()

	for i := 0; i < 100; i++ {
		unlock := km.Lock("session-a")
		unlock()
	}

	km.mu.Lock()
	defer km.mu.Unlock()
	if len(km.locks) != 0 {
		t.Errorf("lock map holds %d entries after release, want 0", len(km.locks))
	}
}
