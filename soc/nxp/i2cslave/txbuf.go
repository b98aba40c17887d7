// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

// SendBuffer is a drainable fixed-capacity staging area for outbound bytes
// (spec.md §3, §4.5). pos <= end <= capacity; bytes in [pos, end) are yet to
// be transmitted. Write may only be called on an empty buffer — the caller
// (the task, through Bridge.Write) is responsible for that precondition
// exactly as send_buffer.rs asserts it (spec.md §4.5, §9).
type SendBuffer struct {
	buf []byte
	pos int
	end int
}

// NewSendBuffer preallocates a buffer of the given capacity (spec.md §6,
// TXBUFSIZE).
func NewSendBuffer(capacity int) *SendBuffer {
	return &SendBuffer{buf: make([]byte, capacity)}
}

// Write copies min(len(src), capacity) bytes into an empty buffer and
// returns the unwritten tail of src (spec.md §4.5, §8 property 2).
//
// Write panics if called on a non-empty buffer: this is a programmer error,
// not a runtime condition the caller should need to check on every call,
// mirroring send_buffer.rs's panic on the same precondition.
func (b *SendBuffer) Write(src []byte) []byte {
	if !b.IsEmpty() {
		panic("i2c: send buffer must be reset before writing")
	}

	n := len(src)
	if n > len(b.buf) {
		n = len(b.buf)
	}

	copy(b.buf[:n], src[:n])
	b.pos = 0
	b.end = n

	return src[n:]
}

// Next yields the next unsent byte and advances pos, or reports false once
// the buffer is empty (spec.md §4.5, §8 property 2).
func (b *SendBuffer) Next() (byte, bool) {
	if b.IsEmpty() {
		return 0, false
	}

	byte := b.buf[b.pos]
	b.pos++

	return byte, true
}

// Reset zeroes both indices. A no-op on an already-empty buffer (spec.md §8
// property 6).
func (b *SendBuffer) Reset() {
	b.pos = 0
	b.end = 0
}

// BytesSent reports how many bytes have been drained via Next since the
// last Write (spec.md §4.5).
func (b *SendBuffer) BytesSent() int {
	return b.pos
}

// IsEmpty reports whether every staged byte has been drained.
func (b *SendBuffer) IsEmpty() bool {
	return b.pos == b.end
}
