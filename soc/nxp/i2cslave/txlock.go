// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

// TxLockKind selects which interrupts a TxLock disables while the ISR
// waits on the task (spec.md §4.5, §9).
//
// TxOnly leaves the event interrupt enabled so BTF can still wake the ISR
// while the peripheral finishes shifting out the byte already on the wire.
// TxAndBtf disables both while the task is actively preparing new bytes.
// Getting this wrong causes either lost bytes or spurious ISR storms
// (spec.md §9, "Tx lock granularity").
type TxLockKind uint8

const (
	TxOnly TxLockKind = iota
	TxAndBtf
)

// TxLock has no owned state of its own: it encapsulates two write-only bits
// of the peripheral's control register (spec.md §3, §4.5). Lock/Unlock are
// idempotent (spec.md §8 property 6).
type TxLock struct {
	regs Registers
}

// NewTxLock wraps the control-register bits behind regs.
func NewTxLock(regs Registers) *TxLock {
	return &TxLock{regs: regs}
}

// Lock disables the buffer-empty interrupt, and — for TxAndBtf — the event
// interrupt too.
func (t *TxLock) Lock(kind TxLockKind) {
	t.regs.SetTxIRQ(false, kind == TxOnly)
}

// Unlock re-enables both interrupts, re-arming the data path after the ISR
// stalled on an empty send buffer (spec.md §4.7).
func (t *TxLock) Unlock() {
	t.regs.SetTxIRQ(true, true)
}
