// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"sync"
	"time"
)

// Banner shows the latest published message for a fixed time. Each banner
// owns its timer; a new message replaces the visible one and restarts it.
type Banner struct {
	ttl      time.Duration
	onChange func()

	mu      sync.Mutex
	message string
	timer   *time.Timer
	gen     uint64

	unsubscribe func()
}

// NewBanner subscribes a banner to ch. onChange, when non-nil, is called
// after the visible message changes (shown or hidden); it runs on the
// publisher's goroutine or on the timer goroutine. A non-positive ttl means
// [DefaultTTL].
func NewBanner(ch *Channel, ttl time.Duration, onChange func()) *Banner {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	b := &Banner{ttl: ttl, onChange: onChange}
	b.unsubscribe = ch.Subscribe(b.show)
	return b
}

// Message returns the visible message, empty when hidden.
func (b *Banner) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.message
}

// Dismiss hides the message now.
func (b *Banner) Dismiss() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	changed := b.message != ""
	b.message = ""
	b.mu.Unlock()

	if changed {
		b.changed()
	}
}

// Close stops the banner from receiving messages and hides it.
func (b *Banner) Close() {
	b.unsubscribe()
	b.Dismiss()
}

func (b *Banner) show(message string) {
	b.mu.Lock()
	b.message = message
	b.gen++
	gen := b.gen
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.ttl, func() { b.expire(gen) })
	b.mu.Unlock()

	b.changed()
}

func (b *Banner) expire(gen uint64) {
	b.mu.Lock()
	if gen != b.gen {
		b.mu.Unlock()
		return
	}
	b.message = ""
	b.mu.Unlock()

	b.changed()
}

func (b *Banner) changed() {
	if b.onChange != nil {
		b.onChange()
	}
}
