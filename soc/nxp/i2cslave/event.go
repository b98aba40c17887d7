// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

// Event is produced by the ISR for the task (spec.md §3). Every concrete
// event type below implements Event by embedding notificationTag or
// controlTag, so a type switch on the Event returned by (*Slave).Listen is
// exhaustive over exactly the variants spec.md §3 enumerates. Category
// reports which of the two groups spec.md §3 organizes them into
// (Notification: bus activity the task may ignore; Control: the ISR is
// waiting on the task) without requiring a nested type switch to get there.
type Event interface {
	event()
	Category() EventCategory
}

// EventCategory mirrors spec.md §3's Notification/Control split.
type EventCategory uint8

const (
	NotificationEvent EventCategory = iota
	ControlEvent
)

type notificationTag struct{}

func (notificationTag) event() {}

func (notificationTag) Category() EventCategory { return NotificationEvent }

type controlTag struct{}

func (controlTag) event() {}

func (controlTag) Category() EventCategory { return ControlEvent }

// Notification events report bus activity the task doesn't need to act on
// synchronously; Control events demand a response (supply bytes, drain the
// receive buffer).

// Addr reports that the bus addressed this slave (spec.md §3,
// "Notification(Addr)").
type Addr struct {
	notificationTag
	Tx      bool // true: master wants to read from us
	GenCall bool
}

// Sent reports that the master accepted Sent bytes before NACKing
// (spec.md §3, "Notification(Sent)").
type Sent struct {
	notificationTag
	Sent int
}

// StopEvent reports a STOP condition on the bus (spec.md §3,
// "Notification(Stop)"). Named StopEvent rather than Stop.
type StopEvent struct {
	notificationTag
}

// Received reports that Size bytes are waiting in the receive buffer; Write
// is true when the master has turned the bus around to read in the same
// transaction (a combined-format transfer) (spec.md §3, "Control(Received)").
type Received struct {
	controlTag
	Size  int
	Write bool
}

// TxEmpty reports that the ISR needs bytes to transmit. Initial is true for
// the first demand of a given read transaction; it is reported verbatim and
// its meaning is left to the consumer (spec.md §9, Open Question (a)).
type TxEmpty struct {
	controlTag
	Initial bool
}
