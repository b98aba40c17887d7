// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

import (
	"github.com/usbarmory/tamago-i2c-slave/internal/reg"
)

// HWRegisters implements Registers against real memory-mapped hardware,
// following the same Base/CCGR/CG addressing scheme soc/nxp/i2c.(*I2C)
// uses for master mode on the same register family.
type HWRegisters struct {
	// Base is the controller's register base address.
	Base uint32
	// CCGR is the clock gate register controlling this controller's
	// peripheral clock.
	CCGR uint32
	// CG is the clock gate field within CCGR.
	CG int

	sr1, sr2, cr1, cr2, oar1, ccr, trise, dr uint32
}

// Init resolves register addresses and enables the peripheral clock. It
// must be called once before the Registers methods are used.
func (hw *HWRegisters) Init() {
	if hw.Base == 0 || hw.CCGR == 0 {
		panic("i2c: invalid controller instance")
	}

	hw.sr1 = hw.Base + I2Cx_SR1
	hw.sr2 = hw.Base + I2Cx_SR2
	hw.cr1 = hw.Base + I2Cx_CR1
	hw.cr2 = hw.Base + I2Cx_CR2
	hw.oar1 = hw.Base + I2Cx_OAR1
	hw.ccr = hw.Base + I2Cx_CCR
	hw.trise = hw.Base + I2Cx_TRISE
	hw.dr = hw.Base + I2Cx_DR

	reg.SetN(hw.CCGR, hw.CG, 0b11, 0b11)
}

func (hw *HWRegisters) ReadSR1() SR1 {
	v := reg.Read16(hw.sr1)

	return SR1{
		TXE:     v&(1<<SR1_TXE) != 0,
		RXNE:    v&(1<<SR1_RXNE) != 0,
		ADDR:    v&(1<<SR1_ADDR) != 0,
		STOPF:   v&(1<<SR1_STOPF) != 0,
		BTF:     v&(1<<SR1_BTF) != 0,
		AF:      v&(1<<SR1_AF) != 0,
		BERR:    v&(1<<SR1_BERR) != 0,
		ARLO:    v&(1<<SR1_ARLO) != 0,
		OVR:     v&(1<<SR1_OVR) != 0,
		PECERR:  v&(1<<SR1_PECERR) != 0,
		TIMEOUT: v&(1<<SR1_TIMEOUT) != 0,
		ALERT:   v&(1<<SR1_ALERT) != 0,
	}
}

// ReadSR2 reads SR2, which clears ADDR as a side-effect on real hardware
// (spec.md §6).
func (hw *HWRegisters) ReadSR2() SR2 {
	v := reg.Read16(hw.sr2)

	return SR2{
		TRA:     v&(1<<SR2_TRA) != 0,
		GENCALL: v&(1<<SR2_GENCALL) != 0,
	}
}

func (hw *HWRegisters) ReadDR() byte {
	return byte(reg.Read16(hw.dr) & 0xff)
}

func (hw *HWRegisters) WriteDR(b byte) {
	reg.Write16(hw.dr, uint16(b))
}

func (hw *HWRegisters) ClearAF() {
	reg.Clear16(hw.sr1, SR1_AF)
}

func (hw *HWRegisters) ClearBERR() {
	reg.Clear16(hw.sr1, SR1_BERR)
}

func (hw *HWRegisters) ClearARLO() {
	reg.Clear16(hw.sr1, SR1_ARLO)
}

func (hw *HWRegisters) ClearOVR() {
	reg.Clear16(hw.sr1, SR1_OVR)
}

func (hw *HWRegisters) ClearPECERR() {
	reg.Clear16(hw.sr1, SR1_PECERR)
}

func (hw *HWRegisters) ClearTIMEOUT() {
	reg.Clear16(hw.sr1, SR1_TIMEOUT)
}

func (hw *HWRegisters) ClearALERT() {
	reg.Clear16(hw.sr1, SR1_ALERT)
}

func (hw *HWRegisters) SetPE(enabled bool) {
	reg.SetTo16(hw.cr1, CR1_PE, enabled)
}

func (hw *HWRegisters) SetTxIRQ(itbufen, itevten bool) {
	reg.SetTo16(hw.cr2, CR2_ITBUFEN, itbufen)
	reg.SetTo16(hw.cr2, CR2_ITEVTEN, itevten)
}

// Configure programs the controller for 7-bit-addressed slave mode at
// speedHz, deriving CCR/TRISE from busClockHz exactly as
// original_source/src/slave.rs's I2CSlave::new does.
func (hw *HWRegisters) Configure(ownAddress uint8, speedHz, busClockHz uint32) {
	reg.SetTo16(hw.cr1, CR1_PE, false)

	reg.SetN16(hw.oar1, OAR1_ADDMODE, 0b1, 0) // 7-bit addressing
	reg.SetN16(hw.oar1, OAR1_ADD71, 0x7f, uint16(ownAddress))

	freqMHz := busClockHz / 1_000_000

	reg.SetTo16(hw.cr2, CR2_ITBUFEN, true)
	reg.SetTo16(hw.cr2, CR2_ITEVTEN, true)
	reg.SetTo16(hw.cr2, CR2_ITERREN, true)
	reg.SetN16(hw.cr2, CR2_FREQ, 0x3f, uint16(freqMHz))

	reg.Write16(hw.trise, uint16(freqMHz+1))

	reg.SetN16(hw.ccr, CCR_CCR, 0xfff, uint16(busClockHz/speedHz/2))
	reg.SetTo16(hw.ccr, CCR_DUTY, false)
	reg.SetTo16(hw.ccr, CCR_FS, false)

	reg.SetTo16(hw.cr1, CR1_ENGC, true)
	reg.SetTo16(hw.cr1, CR1_ACK, true)
	reg.SetTo16(hw.cr1, CR1_PE, true)
}
