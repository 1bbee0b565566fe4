package checkout

import (
	"sync"
	"testing"
)

func TestUserLockIsStable(t *testing.T) {
	e := NewEngine(nil)

	if e.userLock(1) != e.userLock(1) {
		t.Fatal("expected the same lock for the same user")
	}
	if e.userLock(1) == e.userLock(2) {
		t.Fatal("expected different locks for different users")
	}
}

func TestUserLockSerializes(t *testing.T) {
	e := NewEngine(nil)

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := e.userLock(42)
			l.Lock()
			counter++
			l.Unlock()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50 serialized increments, got %d", counter)
	}
}
