package controller

import "sync"

// Busy marks named actions as in progress so the same control cannot be
// triggered twice.
type Busy struct {
	mu     sync.Mutex
	active map[string]bool
}

// Acquire marks name busy. It returns false when name is already busy;
// otherwise the returned release func must be called, typically deferred.
func (b *Busy) Acquire(name string) (release func(), ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active[name] {
		return func() {}, false
	}
	if b.active == nil {
		b.active = make(map[string]bool)
	}
	b.active[name] = true
	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.active, name)
			b.mu.Unlock()
		})
	}, true
}

// Is reports whether name is busy.
func (b *Busy) Is(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active[name]
}
