// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify is the process-wide sink for user-facing error messages.
//
// The transport publishes one message per failed backend call into
// [Default]. Any number of subscribers receive every message; [Banner] is
// the subscriber the terminal UI renders. Messages are not queued: a
// subscriber that is already showing a message simply replaces it.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a [Banner] keeps a message visible.
const DefaultTTL = 10 * time.Second

// Channel broadcasts messages to its current subscribers.
type Channel struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(string)
}

// NewChannel returns an empty channel.
func NewChannel() *Channel {
	return &Channel{subs: make(map[int]func(string))}
}

var (
	defaultOnce    sync.Once
	defaultChannel *Channel
)

// Default returns the process-wide channel, creating it on first use.
func Default() *Channel {
	defaultOnce.Do(func() {
		defaultChannel = NewChannel()
	})
	return defaultChannel
}

// Publish delivers message to every current subscriber on the caller's
// goroutine. Empty messages are dropped.
func (c *Channel) Publish(message string) {
	if message == "" {
		return
	}

	c.mu.RLock()
	subs := make([]func(string), 0, len(c.subs))
	for id := 0; id < c.nextID; id++ {
		if fn, ok := c.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	c.mu.RUnlock()

	for _, fn := range subs {
		fn(message)
	}
}

// Subscribe registers fn for every future message and returns a function
// that removes it.
func (c *Channel) Subscribe(fn func(string)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}
