// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

import "sync"

// boundedHistory is a fixed-depth FIFO: pushing past depth drops the oldest
// entry. It backs both the state history (spec.md §4.6) and the events
// history (spec.md §3, "Events history"), which need identical
// drop-oldest-on-full semantics under a mutex.
type boundedHistory[T any] struct {
	mu    sync.Mutex
	buf   []T
	depth int
}

func newBoundedHistory[T any](depth int) *boundedHistory[T] {
	return &boundedHistory[T]{buf: make([]T, 0, depth), depth: depth}
}

func (h *boundedHistory[T]) push(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.buf) == h.depth {
		copy(h.buf, h.buf[1:])
		h.buf = h.buf[:len(h.buf)-1]
	}
	h.buf = append(h.buf, v)
}

func (h *boundedHistory[T]) snapshot() []T {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]T, len(h.buf))
	copy(out, h.buf)
	return out
}
