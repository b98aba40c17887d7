// NXP-style I2C slave peripheral controller
// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package i2cslave

import (
	"reflect"
	"testing"
)

// property 3: History never exceeds its configured depth and always
// reflects the most recent transitions, oldest first (spec.md §8).
func TestStateHolderHistoryDropsOldest(t *testing.T) {
	h := NewStateHolder(3)

	for _, s := range []State{Rx, TxInitial, Nack, Idle, Rx} {
		h.Set(s)
	}

	got := h.History(CriticalSection{})
	want := []State{Nack, Idle, Rx}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("History() = %v, want %v", got, want)
	}
}

func TestStateHolderGetReflectsLastSet(t *testing.T) {
	h := NewStateHolder(5)

	if s := h.Get(); s != Idle {
		t.Fatalf("initial Get() = %v, want Idle", s)
	}

	h.Set(TxRepeated)

	if s := h.Get(); s != TxRepeated {
		t.Fatalf("Get() = %v, want TxRepeated", s)
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		Idle:       "Idle",
		TxInitial:  "TxInitial",
		TxRepeated: "TxRepeated",
		Rx:         "Rx",
		Nack:       "Nack",
		State(99):  "Invalid",
	}

	for state, want := range cases {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
