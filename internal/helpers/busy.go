package helpers

import "sync"

// BusyGuard tracks actions that are in flight so the same action cannot be
// triggered twice before the first completes. It does not queue.
type BusyGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewBusyGuard() *BusyGuard {
	return &BusyGuard{inFlight: make(map[string]struct{})}
}

// TryAcquire marks key busy. It reports false when key is already busy.
func (b *BusyGuard) TryAcquire(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, busy := b.inFlight[key]; busy {
		return false
	}
	b.inFlight[key] = struct{}{}
	return true
}

func (b *BusyGuard) Release(key string) {
	b.mu.Lock()
	delete(b.inFlight, key)
	b.mu.Unlock()
}

func (b *BusyGuard) IsBusy(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, busy := b.inFlight[key]
	return busy
}
