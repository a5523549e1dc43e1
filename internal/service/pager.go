// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/doin-client/models"
)

// PageFetcher loads one page of a listing.
type PageFetcher[T any] func(ctx context.Context, page models.PageRequest) (models.Page[T], error)

// Pager accumulates a paginated listing one "load more" step at a time.
// Calls are serialised; a failed step leaves the pager unchanged so that
// the user can retry it.
type Pager[T any] struct {
	fetch PageFetcher[T]
	size  int

	mu    sync.Mutex
	next  int
	items []T
	done  bool
}

// NewPager returns a pager requesting size items per page.
func NewPager[T any](size int, fetch PageFetcher[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch, size: size}
}

// LoadMore fetches the next page and returns only its items. Once the last
// page was seen it returns nil without calling the backend.
func (p *Pager[T]) LoadMore(ctx context.Context) ([]T, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.done {
		return nil, nil
	}

	page, err := p.fetch(ctx, models.PageRequest{Page: p.next, Size: p.size})
	if err != nil {
		return nil, mapAdapterError(err)
	}

	p.items = append(p.items, page.Content...)
	p.next++
	p.done = page.Last || len(page.Content) == 0

	return page.Content, nil
}

// Items returns everything loaded so far.
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.items...)
}

// HasMore reports whether another LoadMore may return items.
func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.done
}

// Reset forgets every loaded page.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.next, p.items, p.done = 0, nil, false
}
