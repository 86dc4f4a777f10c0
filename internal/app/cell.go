package app

import "sync"

// Cell provides concurrent access to a single mutable value. Reads take a
// shared lock and return a copy; writes are serialized.
//
// The render cell of a ViewController is a Cell[ports.View]. Only the
// controller writes to it; render targets read snapshots.
type Cell[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewCell creates a Cell initialized with val.
func NewCell[T any](val T) *Cell[T] {
	return &Cell[T]{val: val}
}

// Get returns a copy of the current value under a read lock.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val
}

// Update applies fn to the value under the write lock and returns the
// resulting value. fn must not call back into the Cell.
func (c *Cell[T]) Update(fn func(*T)) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.val)
	return c.val
}
