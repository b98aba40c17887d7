// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

// I2C registers, assumed shape (spec.md §6).
//
// This mirrors the layout soc/nxp/i2c.go uses for master mode on the same
// register family: two status registers (SR1, SR2, the latter clearing ADDR
// on read), two control registers (CR1, CR2), an own-address register
// (OAR1), a clock-control register (CCR), a rise-time register (TRISE) and a
// data register (DR).
const (
	I2Cx_SR1  = 0x0014
	SR1_SB    = 0
	SR1_ADDR  = 1
	SR1_BTF   = 2
	SR1_ADD10 = 3
	SR1_STOPF = 4
	SR1_RXNE  = 6
	SR1_TXE   = 7

	// Error flags, SR1 (spec.md §4.3)
	SR1_BERR    = 8
	SR1_ARLO    = 9
	SR1_AF      = 10
	SR1_OVR     = 11
	SR1_PECERR  = 12
	SR1_TIMEOUT = 14
	SR1_ALERT   = 15

	I2Cx_SR2    = 0x0018
	SR2_MSL     = 0
	SR2_BUSY    = 1
	SR2_TRA     = 2
	SR2_GENCALL = 4

	I2Cx_CR1 = 0x0000
	CR1_PE   = 0
	CR1_ENGC = 6
	CR1_ACK  = 10

	I2Cx_CR2    = 0x0004
	CR2_FREQ    = 0
	CR2_ITERREN = 8
	CR2_ITEVTEN = 9
	CR2_ITBUFEN = 10

	I2Cx_OAR1    = 0x0008
	OAR1_ADD0    = 0
	OAR1_ADD71   = 1
	OAR1_ADDMODE = 15

	I2Cx_CCR = 0x001c
	CCR_CCR  = 0
	CCR_DUTY = 14
	CCR_FS   = 15

	I2Cx_TRISE = 0x0020
	I2Cx_DR    = 0x0010
)

// Registers abstracts the memory-mapped status/control/data registers of a
// single I2C controller instance in slave mode. HWRegisters implements it
// against real hardware via internal/reg; tests drive the ISR decoders
// against a fakeRegisters mock register file (spec.md §8, "mock register
// file + synthetic interrupt invocations").
type Registers interface {
	// ReadSR1 reads SR1 once, as the event and error ISRs both do on
	// entry (spec.md §4.2, §4.3: "reads a status register once").
	ReadSR1() SR1
	// ReadSR2 reads SR2, which on real hardware clears ADDR as a
	// side-effect of the read (spec.md §6).
	ReadSR2() SR2

	ReadDR() byte
	WriteDR(byte)

	ClearAF()
	ClearBERR()
	ClearARLO()
	ClearOVR()
	ClearPECERR()
	ClearTIMEOUT()
	ClearALERT()

	SetPE(enabled bool)

	// SetTxIRQ configures CR2.ITBUFEN/ITEVTEN, the two bits the Tx Lock
	// (txlock.go) manipulates.
	SetTxIRQ(itbufen, itevten bool)

	// Configure programs OAR1 (own address, 7-bit mode), CR2 (FREQ,
	// ITERREN, ITBUFEN, ITEVTEN), CCR/TRISE (clock rate) and finally
	// CR1 (general-call enable, ACK, PE) in that order (spec.md §5,
	// "Resource lifecycle"; original_source/src/slave.rs's I2CSlave::new).
	// ownAddress, speedHz and busClockHz have already been asserted valid
	// by the caller.
	Configure(ownAddress uint8, speedHz, busClockHz uint32)
}

// SR1 is a decoded snapshot of the status register 1 flags relevant to the
// event and error ISRs (spec.md §4.2, §4.3).
type SR1 struct {
	TXE, RXNE, ADDR, STOPF, BTF bool
	AF, BERR, ARLO, OVR, PECERR, TIMEOUT, ALERT bool
}

// SR2 is a decoded snapshot of the status register 2 flags read on an ADDR
// event (spec.md §4.2 step 2).
type SR2 struct {
	TRA, GENCALL bool
}
