// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

import (
	"context"
)

// StateHistoryDepth and EventHistoryDepth are fixed at 5 per spec.md §6
// ("History depths: fixed at 5 for states and 5 for events").
const (
	StateHistoryDepth = 5
	EventHistoryDepth = 5
)

// result is what the ISR enqueues and the task dequeues: exactly one of
// Event or Err is set (spec.md §3, "Channel — bounded SPSC queue of
// Result<Event, Error>").
type result struct {
	event Event
	err   *Error
}

// Bridge owns every piece of session state shared between ISR and task
// context and mediates between them through a bounded channel (spec.md
// §4.7). It has two faces — ISR-side methods, called only from interrupt
// context with interrupts implicitly disabled, and task-side methods,
// called only from the single cooperative application task — modeled here
// as two method sets on one concrete type rather than two interfaces, since
// a single instance always implements both and the split exists for
// documentation, not for substitutability (spec.md §9, "Polymorphism").
type Bridge struct {
	regs Registers

	channel chan result

	txLock        *TxLock
	sendBuffer    *SendBuffer
	receiveBuffer *ReceiveBuffer

	state         *StateHolder
	eventsHistory *boundedHistory[Event]

	dump bool
}

// BridgeConfig sizes the fixed-capacity resources a Bridge owns (spec.md
// §6). None of these can change after NewBridge returns.
type BridgeConfig struct {
	// ChannelSize is the bounded SPSC channel capacity (spec.md §3,
	// CHSIZE). Too small for the worst-case event burst within one
	// transaction is a programmer error (spec.md §7).
	ChannelSize int
	// TxBufSize is the send buffer capacity (TXBUFSIZE).
	TxBufSize int
	// RxBufSize is the receive buffer capacity (RXBUFSIZE).
	RxBufSize int
	// Dump includes a StateDump in every Error when true (spec.md §6).
	Dump bool
}

// NewBridge constructs a Bridge over regs with the given fixed capacities.
// The Bridge must outlive the program: its address is captured by the
// interrupt vector once the slave facade registers it (spec.md §5,
// "Resource lifecycle").
func NewBridge(regs Registers, cfg BridgeConfig) *Bridge {
	return &Bridge{
		regs:          regs,
		channel:       make(chan result, cfg.ChannelSize),
		txLock:        NewTxLock(regs),
		sendBuffer:    NewSendBuffer(cfg.TxBufSize),
		receiveBuffer: NewReceiveBuffer(cfg.RxBufSize),
		state:         NewStateHolder(StateHistoryDepth),
		eventsHistory: newBoundedHistory[Event](EventHistoryDepth),
		dump:          cfg.Dump,
	}
}

// ---- ISR-side API (spec.md §4.7) ----
// Called only from interrupt context, which on a single-core MCU cannot
// re-enter before returning, so the ISR never needs a CriticalSection
// against itself. It still threads one through to the buffer accessors to
// keep their signature identical on both sides of the bridge.

// GetState forwards to the StateHolder.
func (b *Bridge) GetState() State {
	return b.state.Get()
}

// SetState forwards to the StateHolder.
func (b *Bridge) SetState(state State) {
	b.state.Set(state)
}

// Fail disables the peripheral and sends a terminal Error to the channel.
// Any further ISR activity on this Bridge until the facade re-initializes
// the hardware is a programming error (spec.md §4.7, §7).
func (b *Bridge) Fail(reason Reason) {
	b.regs.SetPE(false)

	err := &Error{Reason: reason}
	if b.dump {
		err.Dump = b.dumpState()
	}

	b.sendResult(result{err: err})
}

// Notify appends event to the events history and delivers it to the task
// (spec.md §4.7).
func (b *Bridge) Notify(event Event) {
	b.eventsHistory.push(event)
	b.sendResult(result{event: event})
}

// sendResult is the channel's only producer-side entry point. A full
// channel is a programmer misconfiguration (CHSIZE too small for the
// worst-case per-transaction event burst) and must crash immediately rather
// than silently drop or block the ISR (spec.md §3 "Full-send is a
// programming error", §7).
func (b *Bridge) sendResult(r result) {
	select {
	case b.channel <- r:
	default:
		panic("i2c slave: event channel is full")
	}
}

// LockTx forwards to the TxLock.
func (b *Bridge) LockTx(kind TxLockKind) {
	b.txLock.Lock(kind)
}

// UnlockTx forwards to the TxLock.
func (b *Bridge) UnlockTx() {
	b.txLock.Unlock()
}

// GetRxBufSize forwards to the receive buffer under cs.
func (b *Bridge) GetRxBufSize(_ CriticalSection) int {
	return b.receiveBuffer.Size()
}

// WriteRxBufByte forwards to the receive buffer under cs.
func (b *Bridge) WriteRxBufByte(_ CriticalSection, byte byte) error {
	return b.receiveBuffer.WriteByte(byte)
}

// PopTxBufByte forwards to the send buffer under cs.
func (b *Bridge) PopTxBufByte(_ CriticalSection) (byte, bool) {
	return b.sendBuffer.Next()
}

// ResetTxBuf resets the send buffer under cs and reports how many bytes had
// been sent before the reset (spec.md §4.3, used on NACK to report Sent).
func (b *Bridge) ResetTxBuf(_ CriticalSection) int {
	sent := b.sendBuffer.BytesSent()
	b.sendBuffer.Reset()
	return sent
}

func (b *Bridge) dumpState() *StateDump {
	return &StateDump{
		StateHistory: b.state.History(CriticalSection{}),
		CurrentState: b.state.Get(),
		EventHistory: b.eventsHistory.snapshot(),
	}
}

// ---- Task-side API (spec.md §4.7) ----

// Receive awaits the next event or terminal error (spec.md §4.7, §5
// "Suspension points"). It is the only operation that may suspend the
// caller; dropping ctx at an await point leaks nothing because the channel
// itself is left untouched and a later Receive can resume consuming it
// (spec.md §5, "Cancellation & timeouts").
func (b *Bridge) Receive(ctx context.Context) (Event, error) {
	select {
	case r := <-b.channel:
		if r.err != nil {
			return nil, r.err
		}
		return r.event, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Write writes buf into the send buffer under cs and unlocks TX, re-arming
// the data path after the ISR stalled on an empty buffer (spec.md §4.7). It
// returns the tail of buf that did not fit.
func (b *Bridge) Write(_ CriticalSection, buf []byte) []byte {
	remainder := b.sendBuffer.Write(buf)
	b.UnlockTx()
	return remainder
}

// Read copies pending bytes out of the receive buffer and resets it on
// success (spec.md §4.7).
func (b *Bridge) Read(_ CriticalSection, dst []byte) (int, error) {
	n, err := b.receiveBuffer.Read(dst)
	if err != nil {
		return 0, err
	}

	b.receiveBuffer.Reset()
	return n, nil
}
