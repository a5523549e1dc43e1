// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package observable provides a mutable holder of the latest value with a
// registry of change callbacks.
package observable

import "sync"

// Value holds the latest value of type T and notifies subscribers on every
// Set. The zero Value is ready to use and holds the zero T.
type Value[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]func(T)
}

// NewValue returns a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the latest value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores value and calls every subscriber with it, in subscription
// order. Callbacks run on the caller's goroutine after the lock is released,
// so they may call back into v.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	subs := v.snapshot()
	v.mu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

// Subscribe registers fn and immediately calls it with the latest value.
// The returned function removes the subscription; calling it more than once
// is a no-op.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	if v.subs == nil {
		v.subs = make(map[int]func(T))
	}
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	current := v.value
	v.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

// snapshot returns subscribers ordered by id. Caller holds v.mu.
func (v *Value[T]) snapshot() []func(T) {
	out := make([]func(T), 0, len(v.subs))
	for id := 0; id < v.nextID; id++ {
		if fn, ok := v.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}
