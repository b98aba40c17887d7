// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

import "testing"

// property 1: reads never observe more bytes than were written since the
// last reset (spec.md §8).
func TestReceiveBufferReadMatchesWrites(t *testing.T) {
	buf := NewReceiveBuffer(4)

	for _, b := range []byte{0x11, 0x22, 0x33} {
		if err := buf.WriteByte(b); err != nil {
			t.Fatalf("WriteByte: %v", err)
		}
	}

	if n := buf.Size(); n != 3 {
		t.Fatalf("Size() = %d, want 3", n)
	}

	dst := make([]byte, 3)
	n, err := buf.Read(dst)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if n != 3 {
		t.Fatalf("Read() = %d, want 3", n)
	}

	want := []byte{0x11, 0x22, 0x33}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestReceiveBufferFullFails(t *testing.T) {
	buf := NewReceiveBuffer(2)

	if err := buf.WriteByte(1); err != nil {
		t.Fatalf("WriteByte 1: %v", err)
	}
	if err := buf.WriteByte(2); err != nil {
		t.Fatalf("WriteByte 2: %v", err)
	}

	if err := buf.WriteByte(3); err == nil {
		t.Fatal("WriteByte on full buffer succeeded, want error")
	}
}

func TestReceiveBufferReadUndersizedDst(t *testing.T) {
	buf := NewReceiveBuffer(4)
	buf.WriteByte(1)
	buf.WriteByte(2)

	dst := make([]byte, 1)

	_, err := buf.Read(dst)
	if err == nil {
		t.Fatal("Read with undersized dst succeeded, want error")
	}

	se, ok := err.(sizeError)
	if !ok {
		t.Fatalf("error type = %T, want sizeError", err)
	}

	if se.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", se.Size())
	}
}

func TestReceiveBufferResetAllowsReuse(t *testing.T) {
	buf := NewReceiveBuffer(2)
	buf.WriteByte(1)
	buf.Reset()

	if n := buf.Size(); n != 0 {
		t.Fatalf("Size() after Reset = %d, want 0", n)
	}

	if err := buf.WriteByte(2); err != nil {
		t.Fatalf("WriteByte after Reset: %v", err)
	}
}
