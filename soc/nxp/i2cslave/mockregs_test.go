// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

// fakeRegisters is a plain, directly poke-able register file standing in
// for hardware in tests: it records flag clears, PE writes, the Tx IRQ bits
// and the Configure arguments, and lets a test set
// SR1/SR2/DR before invoking an ISR handler (spec.md §8, "mock register
// file + synthetic interrupt invocations").
type fakeRegisters struct {
	sr1 SR1
	sr2 SR2
	dr  byte

	pe        bool
	peHistory []bool

	itbufen, itevten bool

	cleared []string

	configured bool
	ownAddress uint8
	speedHz    uint32
	busClockHz uint32
}

func newFakeRegisters() *fakeRegisters {
	return &fakeRegisters{pe: true, itbufen: true, itevten: true}
}

func (f *fakeRegisters) ReadSR1() SR1 { return f.sr1 }
func (f *fakeRegisters) ReadSR2() SR2 { return f.sr2 }
func (f *fakeRegisters) ReadDR() byte { return f.dr }
func (f *fakeRegisters) WriteDR(b byte) { f.dr = b }

func (f *fakeRegisters) ClearAF() { f.sr1.AF = false; f.cleared = append(f.cleared, "AF") }
func (f *fakeRegisters) ClearBERR() { f.sr1.BERR = false; f.cleared = append(f.cleared, "BERR") }
func (f *fakeRegisters) ClearARLO() { f.sr1.ARLO = false; f.cleared = append(f.cleared, "ARLO") }
func (f *fakeRegisters) ClearOVR() { f.sr1.OVR = false; f.cleared = append(f.cleared, "OVR") }
func (f *fakeRegisters) ClearPECERR() { f.sr1.PECERR = false; f.cleared = append(f.cleared, "PECERR") }
func (f *fakeRegisters) ClearTIMEOUT() { f.sr1.TIMEOUT = false; f.cleared = append(f.cleared, "TIMEOUT") }
func (f *fakeRegisters) ClearALERT() { f.sr1.ALERT = false; f.cleared = append(f.cleared, "ALERT") }

func (f *fakeRegisters) SetPE(enabled bool) {
	f.pe = enabled
	f.peHistory = append(f.peHistory, enabled)
}

func (f *fakeRegisters) SetTxIRQ(itbufen, itevten bool) {
	f.itbufen = itbufen
	f.itevten = itevten
}

func (f *fakeRegisters) Configure(ownAddress uint8, speedHz, busClockHz uint32) {
	f.configured = true
	f.ownAddress = ownAddress
	f.speedHz = speedHz
	f.busClockHz = busClockHz
}

// fakeIRQ counts enable/disable calls instead of touching real interrupt
// state, so tests can assert WithCriticalSection was used without needing
// actual hardware.
type fakeIRQ struct {
	disabled bool
	disableN int
	enableN  int
}

func (f *fakeIRQ) DisableInterrupts() {
	f.disabled = true
	f.disableN++
}

func (f *fakeIRQ) EnableInterrupts() {
	f.disabled = false
	f.enableN++
}
