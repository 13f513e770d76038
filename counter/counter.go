// Package counter provides a mutex-guarded integer that can be shared
// between goroutines. A holder that panics while the lock is held poisons
// the counter and every later acquisition fails with ErrPoisoned.
package counter

import (
	"errors"
	"sync"
)

// ErrPoisoned is returned when the lock was abandoned in an inconsistent
// state by a holder that panicked.
var ErrPoisoned = errors.New("counter: lock poisoned")

// Counter is a shared integer. Share it by pointer.
type Counter struct {
	mu       sync.Mutex
	value    int
	poisoned bool
}

// New returns a counter initialized to 0.
func New() *Counter {
	return &Counter{}
}

// Update runs fn with the protected value while holding the lock.
// The lock is released on every exit path. If fn panics the counter is
// poisoned and the panic is propagated.
func (c *Counter) Update(fn func(v *int)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.poisoned {
		return ErrPoisoned
	}

	completed := false
	defer func() {
		if !completed {
			c.poisoned = true
		}
	}()
	fn(&c.value)
	completed = true
	return nil
}

// Increment adds one to the counter.
func (c *Counter) Increment() error {
	return c.Update(func(v *int) { *v++ })
}

// Value returns the current value.
func (c *Counter) Value() (int, error) {
	var out int
	err := c.Update(func(v *int) { out = *v })
	return out, err
}

// Poison marks the counter as poisoned without a panicking holder.
func (c *Counter) Poison() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.poisoned = true
}

// Poisoned reports whether the counter is poisoned.
func (c *Counter) Poisoned() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.poisoned
}
