// https://github.com/usbarmory/tamago
//
// Copyright (c) The TamaGo Authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package reg

import (
	"sync/atomic"
	"unsafe"
)

// SetN sets the mask-wide field at pos to val, leaving the rest of the
// 32-bit register untouched. This is the only 32-bit primitive this driver
// needs (the clock gate register); like reg16.go it carries no build
// constraint, so the package also compiles for the host-side tests.
func SetN(addr uint32, pos int, mask int, val uint32) {
	reg := (*uint32)(unsafe.Pointer(uintptr(addr)))

	r := atomic.LoadUint32(reg)
	r = (r & (^(uint32(mask) << pos))) | (val << pos)

	atomic.StoreUint32(reg, r)
}
