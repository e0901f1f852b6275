// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package memory

import "encoding/binary"

// replacement BIOS used when no BIOS image has been loaded. the exception
// vectors return immediately except for IRQ, which saves the scratch
// registers and calls the user handler stored at 0x03007ffc. the handler is
// read through the mirror at 0x03fffffc so that it can be addressed relative
// to the I/O base, as the real BIOS does
var replacementBIOS = []uint32{
	0xe3a0f408, // 00  mov pc, #0x08000000  (reset)
	0xe1b0f00e, // 04  movs pc, lr          (undefined)
	0xe1b0f00e, // 08  movs pc, lr          (swi)
	0xe25ef004, // 0c  subs pc, lr, #4      (prefetch abort)
	0xe25ef008, // 10  subs pc, lr, #8      (data abort)
	0xe1a00000, // 14  nop
	0xea000000, // 18  b 0x20               (irq)
	0xe25ef004, // 1c  subs pc, lr, #4      (fiq)
	0xe92d500f, // 20  stmfd sp!, {r0-r3, r12, lr}
	0xe3a00301, // 24  mov r0, #0x04000000
	0xe28fe000, // 28  add lr, pc, #0
	0xe510f004, // 2c  ldr pc, [r0, #-4]
	0xe8bd500f, // 30  ldmfd sp!, {r0-r3, r12, lr}
	0xe25ef004, // 34  subs pc, lr, #4
}

func installBIOS(buf []uint8) {
	clear(buf)
	for i, op := range replacementBIOS {
		binary.LittleEndian.PutUint32(buf[i*4:], op)
	}
}
