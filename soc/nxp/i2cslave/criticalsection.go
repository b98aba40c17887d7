// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

// IRQLine is the capability a CriticalSection needs: the ability to mask and
// unmask the interrupt lines that could otherwise race the task. It is
// satisfied directly by arm.CPU (EnableInterrupts/DisableInterrupts in
// arm/irq.go); tests supply a counting fake instead of real hardware.
type IRQLine interface {
	DisableInterrupts()
	EnableInterrupts()
}

// CriticalSection is a zero-size token proving interrupts are currently
// masked. Every access to mutable state shared with the ISR from task
// context must hold one (spec.md §5, "Mutual exclusion"); the ISR itself
// never needs to take one against itself since it cannot re-enter on a
// single-core MCU, but accepts the same token to keep the buffer/state APIs
// uniform across both call sites (spec.md §4.7).
type CriticalSection struct{}

// WithCriticalSection disables interrupts on irq, runs f with a
// CriticalSection token, then restores interrupts. It must not be called
// from within another critical section or from ISR context.
func WithCriticalSection(irq IRQLine, f func(cs CriticalSection)) {
	irq.DisableInterrupts()
	defer irq.EnableInterrupts()

	f(CriticalSection{})
}
