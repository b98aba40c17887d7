// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

// ReceiveBuffer is an append-only fixed-capacity staging area for inbound
// bytes, written by the ISR and drained by the task (spec.md §3, §4.4). It
// never grows past its constructed capacity: WriteByte fails instead of
// reallocating.
type ReceiveBuffer struct {
	buf  []byte
	size int
}

// NewReceiveBuffer preallocates a buffer of the given capacity (spec.md §6,
// RXBUFSIZE) and never appends past it.
func NewReceiveBuffer(capacity int) *ReceiveBuffer {
	return &ReceiveBuffer{buf: make([]byte, capacity)}
}

// WriteByte appends byte, failing once the buffer is full (spec.md §4.4).
func (b *ReceiveBuffer) WriteByte(byte byte) error {
	if b.size == len(b.buf) {
		return ErrReceiveBufferFull{}
	}

	b.buf[b.size] = byte
	b.size++

	return nil
}

// Size reports the number of bytes currently staged.
func (b *ReceiveBuffer) Size() int {
	return b.size
}

// Read copies all staged bytes into dst and returns their count, or fails
// with the pending size (and leaves dst untouched) if dst is too small — the
// same call with an empty dst is therefore a size query (spec.md §4.4,
// §8 property 1).
func (b *ReceiveBuffer) Read(dst []byte) (int, error) {
	if len(dst) < b.size {
		return 0, sizeError(b.size)
	}

	copy(dst[:b.size], b.buf[:b.size])
	return b.size, nil
}

// Reset sets the staged size back to zero without touching the backing
// array (spec.md §4.4).
func (b *ReceiveBuffer) Reset() {
	b.size = 0
}

// sizeError is the error Read returns for an undersized destination; its
// Size accessor reports the pending-byte count, and the buffer is left
// unconsumed.
type sizeError int

func (e sizeError) Error() string { return "i2c: destination buffer too small" }
func (e sizeError) Size() int     { return int(e) }
