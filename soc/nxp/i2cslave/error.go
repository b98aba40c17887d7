// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

import "fmt"

// I2CError covers the hardware error flags besides acknowledge failure,
// which is handled specially and never surfaces as an I2CError (spec.md
// §4.3). BusError and AcknowledgeFailure are never raised by this package —
// BusError is cleared silently (spec.md §9, Open Question (b)) and
// AcknowledgeFailure drives a state transition (spec.md §4.1 Nack) instead
// of a Reason — both are kept here only because the source enumerates them.
type I2CError uint8

const (
	BusError I2CError = iota
	ArbitrationLoss
	AcknowledgeFailure
	Overrun
	PecError
	Timeout
	SmBusAlert
)

func (e I2CError) Error() string {
	switch e {
	case BusError:
		return "i2c: bus error"
	case ArbitrationLoss:
		return "i2c: arbitration loss"
	case AcknowledgeFailure:
		return "i2c: acknowledge failure"
	case Overrun:
		return "i2c: overrun"
	case PecError:
		return "i2c: PEC error"
	case Timeout:
		return "i2c: timeout"
	case SmBusAlert:
		return "i2c: SMBus alert"
	default:
		return "i2c: unknown hardware error"
	}
}

func (I2CError) reason() {}

// ProtocolError covers flag combinations that should never occur if the
// state machine and hardware agree (spec.md §4.2).
type ProtocolError uint8

const (
	RxneAndTxne ProtocolError = iota
	AddrDuringTransmission
	RxneWhileNotReceiving
	TxeWhileNotTranseiving
	StopDuringTransmission
	NackWhileNotTranseiving
)

func (e ProtocolError) Error() string {
	switch e {
	case RxneAndTxne:
		return "i2c: protocol violation: RXNE and TXE set simultaneously"
	case AddrDuringTransmission:
		return "i2c: protocol violation: ADDR while transmitting"
	case RxneWhileNotReceiving:
		return "i2c: protocol violation: RXNE while not receiving"
	case TxeWhileNotTranseiving:
		return "i2c: protocol violation: TXE while not transmitting"
	case StopDuringTransmission:
		return "i2c: protocol violation: STOP while transmitting"
	case NackWhileNotTranseiving:
		return "i2c: protocol violation: NACK while not transmitting"
	default:
		return "i2c: unknown protocol violation"
	}
}

func (ProtocolError) reason() {}

// ErrReceiveBufferFull is returned, wrapped in a Reason, when the ISR cannot
// append another byte to the receive buffer (spec.md §3, §4.4).
type ErrReceiveBufferFull struct{}

func (ErrReceiveBufferFull) Error() string { return "i2c: receive buffer full" }
func (ErrReceiveBufferFull) reason()       {}

// Reason is implemented by I2CError, ProtocolError and ErrReceiveBufferFull
// — the three kinds of fatal session-ending condition (spec.md §3, §7).
type Reason interface {
	error
	reason()
}

// StateDump captures recent history for post-mortem diagnostics, included
// in an Error only when Config.Dump is set (spec.md §4.6, §6).
type StateDump struct {
	StateHistory []State
	CurrentState State
	EventHistory []Event
}

// Error is what Listen returns once the session has ended (spec.md §3, §7).
// Dump is nil unless the Bridge was constructed with Config.Dump set.
type Error struct {
	Reason Reason
	Dump   *StateDump
}

func (e *Error) Error() string {
	return fmt.Sprintf("i2c slave: session terminated: %v", e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Reason
}
