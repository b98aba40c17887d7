// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

import (
	"sync/atomic"
)

// State is the slave session state machine (spec.md §3, §4.1). Transitions
// happen only inside ISR context; reads are permitted from any context.
type State uint32

const (
	Idle State = iota
	TxInitial
	TxRepeated
	Rx
	Nack
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case TxInitial:
		return "TxInitial"
	case TxRepeated:
		return "TxRepeated"
	case Rx:
		return "Rx"
	case Nack:
		return "Nack"
	default:
		return "Invalid"
	}
}

// StateHolder keeps the current session state in an atomic cell for
// lock-free reads from any context, alongside a bounded history of the last
// states for post-mortem diagnostics only (spec.md §4.6).
//
// The atomic cell and the history are deliberately not unified behind one
// lock: folding them together would force a task merely peeking at the
// current state to disable interrupts for the duration, which the ISR does
// not need and the task should not pay for (spec.md §9, "Atomic current-state
// field").
type StateHolder struct {
	current atomic.Uint32
	history *boundedHistory[State]
}

// NewStateHolder returns a StateHolder starting at Idle with a history of
// the given depth (spec.md §6, "History depths: fixed at 5").
func NewStateHolder(depth int) *StateHolder {
	h := &StateHolder{history: newBoundedHistory[State](depth)}
	h.current.Store(uint32(Idle))
	return h
}

// Set pushes state into the history (dropping the oldest entry once full)
// and then stores it atomically. The push and the atomic store are not
// atomic together: a reader of Get may observe the new state slightly
// before it appears in History. This is acceptable since history is
// diagnostic only (spec.md §4.6).
func (h *StateHolder) Set(state State) {
	h.history.push(state)
	h.current.Store(uint32(state))
}

// Get atomically loads the current state.
func (h *StateHolder) Get() State {
	return State(h.current.Load())
}

// History returns a copy of the state history, oldest first, under a
// critical section (spec.md §4.6, "borrow the history under a critical
// section"). The CriticalSection parameter documents that the caller already
// holds one; StateHolder uses its own mutex internally to protect against
// the task/ISR overlap that a plain slice read would otherwise race.
func (h *StateHolder) History(_ CriticalSection) []State {
	return h.history.snapshot()
}
