// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package i2cslave implements a slave-mode driver for the STM32-style I2C
// controller register family, bridging its interrupt-context state machine
// to a cooperative application task through a bounded channel of events
// (original_source/src/lib.rs, "async I2C slave").
//
// Only slave mode is implemented. Clock gating and SCL/SDA pin muxing are
// not implemented here: the caller performs them, either before Init or by
// supplying ClockEnabler and PinConfigurer hooks that Init calls.
package i2cslave

import (
	"context"

	"periph.io/x/conn/v3/physic"
)

// ClockEnabler ungates the peripheral clock feeding a controller instance.
// Pin muxing and clock tree setup are board-specific and out of scope for
// this package (spec.md, Non-goals); Init calls this once, before
// programming any register.
type ClockEnabler interface {
	EnableClock()
}

// PinConfigurer configures one GPIO pad for its I2C alternate function
// (SCL or SDA). Init calls Configure once per pin, before programming any
// register.
type PinConfigurer interface {
	Configure()
}

// Config collects everything Init needs to bring up a slave session
// (spec.md §5 "Resource lifecycle", §6 "Assertions made during init").
type Config struct {
	// OwnAddress is this controller's 7-bit slave address. Must be <=
	// 0x7f; 10-bit addressing is not implemented.
	OwnAddress uint8

	// Speed is the bus clock rate to answer at. Only standard mode (up
	// to 100kHz) is supported.
	Speed physic.Frequency

	// BusClock is the controller's input clock (PCLK1 in ST's
	// datasheets). Must be at least 2MHz (spec.md §6).
	BusClock physic.Frequency

	// ChannelSize, TxBufSize and RxBufSize size the Bridge's fixed
	// capacity resources (spec.md §6). Zero is invalid for all three.
	ChannelSize int
	TxBufSize   int
	RxBufSize   int

	// Dump includes a state/event history snapshot in every terminal
	// Error when true (spec.md §6).
	Dump bool

	// Clock and SCL/SDA are optional out-of-scope collaborators (see
	// ClockEnabler, PinConfigurer). Nil entries are skipped, on the
	// assumption the caller already brought the pins and clock up.
	Clock    ClockEnabler
	SCL, SDA PinConfigurer
}

// maxOwnAddress is the highest representable 7-bit address.
const maxOwnAddress = 0x7f

// maxSpeed and minBusClock bound Config per spec.md §6's init assertions:
// "own address fits the 7-bit field", "speed does not exceed 100kHz
// (standard mode only)", "bus clock is fast enough to derive a working
// prescaler from (at least 2MHz)".
const (
	maxSpeed    = 100 * physic.KiloHertz
	minBusClock = 2 * physic.MegaHertz
)

// Slave is a running slave-mode session: the register file, the bridge
// mediating ISR/task communication, and the two interrupt entry points the
// caller must wire to the controller's event and error interrupt lines.
type Slave struct {
	regs   Registers
	bridge *Bridge
}

// Init brings up a slave session on regs and returns a Slave ready to
// Listen. It panics if cfg violates the assertions spec.md §6 requires of
// init, the same way soc/nxp/i2c.(*I2C).Init panics on a zeroed controller
// instance.
func Init(regs Registers, irq IRQLine, cfg Config) *Slave {
	if irq == nil {
		panic("i2c slave: nil IRQLine")
	}

	if cfg.OwnAddress > maxOwnAddress {
		panic("i2c slave: own address exceeds 7-bit range")
	}

	if cfg.Speed <= 0 || cfg.Speed > maxSpeed {
		panic("i2c slave: speed must be > 0 and <= 100kHz")
	}

	if cfg.BusClock < minBusClock {
		panic("i2c slave: bus clock too slow to derive a prescaler")
	}

	if cfg.ChannelSize <= 0 || cfg.TxBufSize <= 0 || cfg.RxBufSize <= 0 {
		panic("i2c slave: channel and buffer sizes must be positive")
	}

	if cfg.Clock != nil {
		cfg.Clock.EnableClock()
	}

	if cfg.SCL != nil {
		cfg.SCL.Configure()
	}

	if cfg.SDA != nil {
		cfg.SDA.Configure()
	}

	WithCriticalSection(irq, func(CriticalSection) {
		regs.Configure(cfg.OwnAddress, uint32(cfg.Speed/physic.Hertz), uint32(cfg.BusClock/physic.Hertz))
	})

	bridge := NewBridge(regs, BridgeConfig{
		ChannelSize: cfg.ChannelSize,
		TxBufSize:   cfg.TxBufSize,
		RxBufSize:   cfg.RxBufSize,
		Dump:        cfg.Dump,
	})

	return &Slave{regs: regs, bridge: bridge}
}

// HandleEventInterrupt decodes this session's event-line interrupt. Wire it
// to the controller's event interrupt vector.
func (s *Slave) HandleEventInterrupt() {
	HandleEventInterrupt(s.bridge)
}

// HandleErrorInterrupt decodes this session's error-line interrupt. Wire it
// to the controller's error interrupt vector.
func (s *Slave) HandleErrorInterrupt() {
	HandleErrorInterrupt(s.bridge)
}

// Listen awaits the next Event or terminal Error (spec.md §4.7).
func (s *Slave) Listen(ctx context.Context) (Event, error) {
	return s.bridge.Receive(ctx)
}

// Write queues buf for transmission, entering its own critical section, and
// returns the tail of buf that did not fit in the send buffer.
func (s *Slave) Write(irq IRQLine, buf []byte) (remainder []byte) {
	WithCriticalSection(irq, func(cs CriticalSection) {
		remainder = s.bridge.Write(cs, buf)
	})
	return remainder
}

// WriteCS is the Write variant for a caller that already holds a
// CriticalSection.
func (s *Slave) WriteCS(cs CriticalSection, buf []byte) []byte {
	return s.bridge.Write(cs, buf)
}

// Read copies pending received bytes into dst, entering its own critical
// section.
func (s *Slave) Read(irq IRQLine, dst []byte) (n int, err error) {
	WithCriticalSection(irq, func(cs CriticalSection) {
		n, err = s.bridge.Read(cs, dst)
	})
	return n, err
}

// ReadCS is the Read variant for a caller that already holds a
// CriticalSection.
func (s *Slave) ReadCS(cs CriticalSection, dst []byte) (int, error) {
	return s.bridge.Read(cs, dst)
}

// NRead reports how many received bytes are currently pending, entering its
// own critical section.
func (s *Slave) NRead(irq IRQLine) (n int) {
	WithCriticalSection(irq, func(cs CriticalSection) {
		n = s.bridge.GetRxBufSize(cs)
	})
	return n
}
