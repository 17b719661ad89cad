// Package observable holds values that notify subscribers when they change.
package observable

import (
	"reflect"
	"slices"
	"sync"
)

// Listener receives the previous and the new value of a Cell.
type Listener[T any] func(prev, next T)

type subscription[T any] struct {
	id uint64
	fn Listener[T]
}

// Cell is a single value with a subscriber registry. Writes that the
// equality function reports as unchanged are dropped without notifying
// anyone.
//
// Cell is safe for concurrent use. Listeners run on the writing goroutine,
// after the lock is released, in subscription order.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	equal  func(a, b T) bool
	subs   []subscription[T]
	nextID uint64
}

type Option[T any] func(c *Cell[T])

// WithEqual replaces the default reflect.DeepEqual comparison.
func WithEqual[T any](eq func(a, b T) bool) Option[T] {
	return func(c *Cell[T]) {
		c.equal = eq
	}
}

func NewCell[T any](v T, opts ...Option[T]) *Cell[T] {
	c := &Cell[T]{
		value: v,
		equal: func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores v and notifies subscribers. It returns false, without
// notifying, when v equals the current value.
func (c *Cell[T]) Set(v T) bool {
	c.mu.Lock()
	prev := c.value
	if c.equal(prev, v) {
		c.mu.Unlock()
		return false
	}
	c.value = v
	subs := slices.Clone(c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(prev, v)
	}
	return true
}

// Subscribe registers fn and returns a function that removes it. Calling
// the returned function more than once is a no-op.
func (c *Cell[T]) Subscribe(fn Listener[T]) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription[T]{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.subs = slices.DeleteFunc(c.subs, func(s subscription[T]) bool { return s.id == id })
		})
	}
}

// Len returns the number of subscribers.
func (c *Cell[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}
