// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Channel ─────────────────────────────────────────────────────────────────

func TestChannel_PublishToAllSubscribers(t *testing.T) {
	ch := NewChannel()

	var a, b []string
	ch.Subscribe(func(m string) { a = append(a, m) })
	ch.Subscribe(func(m string) { b = append(b, m) })
	ch.Publish("Error 500: boom")

	assert.Equal(t, []string{"Error 500: boom"}, a)
	assert.Equal(t, []string{"Error 500: boom"}, b)
}

func TestChannel_Unsubscribe(t *testing.T) {
	ch := NewChannel()

	calls := 0
	unsubscribe := ch.Subscribe(func(string) { calls++ })
	ch.Publish("one")
	unsubscribe()
	ch.Publish("two")

	assert.Equal(t, 1, calls)
}

func TestChannel_DropsEmpty(t *testing.T) {
	ch := NewChannel()

	calls := 0
	ch.Subscribe(func(string) { calls++ })
	ch.Publish("")

	assert.Zero(t, calls)
}

func TestDefault_Singleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

// ── Banner ──────────────────────────────────────────────────────────────────

func TestBanner_ShowsAndHides(t *testing.T) {
	ch := NewChannel()
	var changes atomic.Int32
	b := NewBanner(ch, 30*time.Millisecond, func() { changes.Add(1) })
	defer b.Close()

	ch.Publish("Error: connection refused")
	assert.Equal(t, "Error: connection refused", b.Message())

	assert.Eventually(t, func() bool { return changes.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, b.Message())
}

func TestBanner_NewMessageRestartsTimer(t *testing.T) {
	ch := NewChannel()
	b := NewBanner(ch, 200*time.Millisecond, nil)
	defer b.Close()

	ch.Publish("first")
	time.Sleep(120 * time.Millisecond)
	ch.Publish("second")
	time.Sleep(120 * time.Millisecond)

	// Past the first message's deadline, before the second's.
	assert.Equal(t, "second", b.Message())
	assert.Eventually(t, func() bool { return b.Message() == "" }, time.Second, 5*time.Millisecond)
}

func TestBanner_IndependentTimers(t *testing.T) {
	ch := NewChannel()
	short := NewBanner(ch, 20*time.Millisecond, nil)
	long := NewBanner(ch, time.Hour, nil)
	defer short.Close()
	defer long.Close()

	ch.Publish("msg")

	assert.Eventually(t, func() bool { return short.Message() == "" }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "msg", long.Message())
}

func TestBanner_DismissAndClose(t *testing.T) {
	ch := NewChannel()
	b := NewBanner(ch, time.Hour, nil)

	ch.Publish("msg")
	b.Dismiss()
	require.Empty(t, b.Message())

	b.Close()
	ch.Publish("after close")
	assert.Empty(t, b.Message())
}

func TestBanner_DefaultTTL(t *testing.T) {
	b := NewBanner(NewChannel(), 0, nil)
	defer b.Close()
	assert.Equal(t, DefaultTTL, b.ttl)
}
