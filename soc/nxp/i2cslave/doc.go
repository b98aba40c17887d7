// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package i2cslave implements an interrupt-driven I2C slave controller for
// MCUs whose I2C block is governed by memory-mapped status/control
// registers and two interrupt lines (event, error), adopting the following
// reference model:
//   - status/control register shape assumed in regs.go (SR1, SR2, CR1, CR2,
//     OAR1, CCR, TRISE, DR), the same register family as
//     soc/nxp/i2c (master mode) but driven in slave mode from interrupt
//     context instead of polled from a blocking call.
//
// Two execution contexts exist: the event/error interrupt handlers (Bridge's
// ISR-side methods, called with interrupts already disabled on a
// single-core MCU) and a single cooperative application goroutine (Bridge's
// task-side methods, which must hold a CriticalSection to touch anything the
// ISR also touches). There is no master mode, no 10-bit addressing, no
// fast-mode (>100kHz), no DMA, and no dynamic buffer growth: RXBUFSIZE,
// TXBUFSIZE and CHSIZE are fixed at construction and never exceeded.
//
// A typical integration loop looks like:
//
//	slave := i2cslave.Init(regs, irq, cfg) // panics on an invalid cfg
//
//	for {
//		ev, err := slave.Listen(ctx)
//		if err != nil {
//			// peripheral is disabled, err.(*i2cslave.Error) carries the
//			// reason and, if Config.Dump is set, a state/event history.
//			break
//		}
//
//		switch e := ev.(type) {
//		case i2cslave.Received:
//			buf := make([]byte, e.Size)
//			slave.Read(irq, buf)
//			// ... inspect the register write the master just performed ...
//		case i2cslave.TxEmpty:
//			slave.Write(irq, registerValue(lastReadingRegister))
//		}
//	}
//
// This package only implements the controller itself; it does not implement
// a register-emulator application on top of it (such as the BME280-style
// emulator this design was distilled from) — that remains the integrator's
// responsibility.
package i2cslave
