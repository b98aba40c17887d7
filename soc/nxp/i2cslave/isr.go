// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

// cs is the zero-value CriticalSection token the ISR passes to the buffer
// accessors. The ISR never races itself on a single-core MCU, so this
// exists only to satisfy the API the task side also uses (spec.md §4.7).
var cs CriticalSection

// HandleEventInterrupt decodes the event-line status flags in the fixed
// priority order spec.md §4.2 requires and drives the state machine. It
// must be wired to the peripheral's event interrupt vector.
//
// The flags are read once on entry; several may be true at once (e.g.
// ADDR+BTF) and are all processed, in order, within this single
// invocation. A fail() decision returns immediately, skipping any flags not
// yet decoded (spec.md §9, Open Question (c)).
func HandleEventInterrupt(b *Bridge) {
	sr1 := b.regs.ReadSR1()

	if sr1.RXNE && sr1.TXE {
		b.Fail(RxneAndTxne)
		return
	}

	if sr1.ADDR {
		switch state := b.GetState(); state {
		case Idle, Rx, Nack:
			sr2 := b.regs.ReadSR2()

			transmission := sr2.TRA
			generalCall := sr2.GENCALL

			if state == Rx {
				b.Notify(Received{
					Size:  b.GetRxBufSize(cs),
					Write: transmission,
				})
			}

			if transmission {
				b.SetState(TxInitial)
			} else {
				b.SetState(Rx)
			}

			b.Notify(Addr{Tx: transmission, GenCall: generalCall})
		case TxInitial, TxRepeated:
			b.Fail(AddrDuringTransmission)
			return
		}
	}

	if sr1.RXNE {
		switch b.GetState() {
		case Rx:
			byte := b.regs.ReadDR()

			if err := b.WriteRxBufByte(cs, byte); err != nil {
				b.Fail(ErrReceiveBufferFull{})
				return
			}
		default:
			b.Fail(RxneWhileNotReceiving)
			return
		}
	}

	if sr1.TXE {
		switch state := b.GetState(); state {
		case TxInitial, TxRepeated:
			initial := state == TxInitial

			if initial || sr1.BTF {
				if next, ok := b.PopTxBufByte(cs); ok {
					b.regs.WriteDR(next)

					if initial {
						b.SetState(TxRepeated)
					}
				} else {
					b.LockTx(TxAndBtf)
					b.Notify(TxEmpty{Initial: initial})
				}
			} else {
				// Waiting for BTF: the byte currently on the
				// wire hasn't finished shifting out yet.
				b.LockTx(TxOnly)
			}
		default:
			b.Fail(TxeWhileNotTranseiving)
			return
		}
	}

	if sr1.STOPF {
		// Always re-enable the peripheral, even on the way to a
		// protocol error below (spec.md §4.2 step 5).
		b.regs.SetPE(true)

		switch state := b.GetState(); state {
		case Idle, Rx, Nack:
			if state == Rx {
				b.Notify(Received{
					Size:  b.GetRxBufSize(cs),
					Write: false,
				})
			}

			if state != Idle {
				b.SetState(Idle)
				b.Notify(StopEvent{})
			}
		case TxInitial, TxRepeated:
			b.Fail(StopDuringTransmission)
			return
		}
	}
}

// HandleErrorInterrupt decodes the error-line status flags (spec.md §4.3).
// It must be wired to the peripheral's error interrupt vector.
func HandleErrorInterrupt(b *Bridge) {
	sr1 := b.regs.ReadSR1()

	if sr1.AF {
		b.regs.ClearAF()

		switch b.GetState() {
		case TxInitial, TxRepeated:
			b.SetState(Nack)
			sent := b.ResetTxBuf(cs)
			b.Notify(Sent{Sent: sent})
		default:
			b.Fail(NackWhileNotTranseiving)
			return
		}
	}

	// Remaining error flags, in the fixed order spec.md §4.3 names. Bus
	// error is cleared silently — it is spurious on many parts and is
	// never surfaced as an I2CError (spec.md §9, Open Question (b)). Each
	// of the rest clears its flag and fails the session, returning
	// immediately like every other fail() decision: a single invocation
	// reports only the first of these flags that is set, and later flags
	// are left uncleared.
	if sr1.BERR {
		b.regs.ClearBERR()
	}

	if sr1.ARLO {
		b.regs.ClearARLO()
		b.Fail(ArbitrationLoss)
		return
	}

	if sr1.OVR {
		b.regs.ClearOVR()
		b.Fail(Overrun)
		return
	}

	if sr1.PECERR {
		b.regs.ClearPECERR()
		b.Fail(PecError)
		return
	}

	if sr1.TIMEOUT {
		b.regs.ClearTIMEOUT()
		b.Fail(Timeout)
		return
	}

	if sr1.ALERT {
		b.regs.ClearALERT()
		b.Fail(SmBusAlert)
		return
	}
}
