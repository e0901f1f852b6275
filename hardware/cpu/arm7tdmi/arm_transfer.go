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

package arm7tdmi

import "math/bits"

// "4.9 Single Data Transfer (LDR, STR)"
//
//	Cond 01 I P U B W L Rn Rd Offset
func armSingleDataTransfer(arm *ARM, opcode uint32) {
	registerOffset := opcode&0x02000000 == 0x02000000
	preIndex := opcode&0x01000000 == 0x01000000
	up := opcode&0x00800000 == 0x00800000
	byteTransfer := opcode&0x00400000 == 0x00400000
	writeBack := opcode&0x00200000 == 0x00200000
	load := opcode&0x00100000 == 0x00100000
	rn := (opcode >> 16) & 0x0f
	rd := (opcode >> 12) & 0x0f

	var offset uint32
	if registerOffset {
		// the shift amount of a register offset is always an immediate value.
		// the carry out of the shifter is not used
		rm := opcode & 0x0f
		typ := shiftType((opcode >> 5) & 0x03)
		amount := (opcode >> 7) & 0x1f
		offset, _ = shiftImmediate(typ, arm.regs.r[rm], amount, arm.regs.status.carry)
	} else {
		offset = opcode & 0x0fff
	}

	base := arm.regs.r[rn]
	offsetBase := base
	if up {
		offsetBase += offset
	} else {
		offsetBase -= offset
	}

	addr := base
	if preIndex {
		addr = offsetBase
	}

	// post-indexed transfers always write back
	updateBase := (!preIndex || writeBack) && rn != rPC

	if load {
		var v uint32
		if byteTransfer {
			v = uint32(arm.mem.Read8(addr))
		} else {
			v = rotateMisaligned(arm.mem.Read32(addr&^0x03), addr)
		}
		arm.internal(1)

		// the base is written back before the loaded value so that when the
		// base and destination are the same register the loaded value wins
		if updateBase {
			arm.regs.r[rn] = offsetBase
		}

		// loading the PC does not change processor state on ARMv4
		arm.writeRegister(rd, v)
		return
	}

	v := arm.regs.r[rd]
	if rd == rPC {
		v += 4
	}

	if byteTransfer {
		arm.mem.Write8(addr, uint8(v))
	} else {
		arm.mem.Write32(addr&^0x03, v)
	}

	if updateBase {
		arm.regs.r[rn] = offsetBase
	}
}

// "4.10 Halfword and Signed Data Transfer (LDRH/STRH/LDRSB/LDRSH)"
//
//	Cond 000 P U I W L Rn Rd Offset1 1 S H 1 Offset2
//
// the I bit selects the immediate form. in the register form Offset2 is Rm.
func armHalfwordTransfer(arm *ARM, opcode uint32) {
	preIndex := opcode&0x01000000 == 0x01000000
	up := opcode&0x00800000 == 0x00800000
	immediate := opcode&0x00400000 == 0x00400000
	writeBack := opcode&0x00200000 == 0x00200000
	load := opcode&0x00100000 == 0x00100000
	rn := (opcode >> 16) & 0x0f
	rd := (opcode >> 12) & 0x0f
	sh := (opcode >> 5) & 0x03

	var offset uint32
	if immediate {
		offset = ((opcode >> 4) & 0xf0) | (opcode & 0x0f)
	} else {
		offset = arm.regs.r[opcode&0x0f]
	}

	base := arm.regs.r[rn]
	offsetBase := base
	if up {
		offsetBase += offset
	} else {
		offsetBase -= offset
	}

	addr := base
	if preIndex {
		addr = offsetBase
	}

	updateBase := (!preIndex || writeBack) && rn != rPC

	if !load {
		// STRH is the only store form. the decoder does not send the others
		// here
		v := arm.regs.r[rd]
		if rd == rPC {
			v += 4
		}
		arm.mem.Write16(addr&^0x01, uint16(v))
		if updateBase {
			arm.regs.r[rn] = offsetBase
		}
		return
	}

	var v uint32
	switch sh {
	case 0b01:
		// LDRH. a misaligned address loads the aligned halfword rotated by
		// eight bits
		v = uint32(arm.mem.Read16(addr &^ 0x01))
		if addr&0x01 == 0x01 {
			v = bits.RotateLeft32(v, -8)
		}
	case 0b10:
		// LDRSB
		v = uint32(int32(int8(arm.mem.Read8(addr))))
	case 0b11:
		// LDRSH. a misaligned address behaves like LDRSB
		if addr&0x01 == 0x01 {
			v = uint32(int32(int8(arm.mem.Read8(addr))))
		} else {
			v = uint32(int32(int16(arm.mem.Read16(addr))))
		}
	}
	arm.internal(1)

	if updateBase {
		arm.regs.r[rn] = offsetBase
	}
	arm.writeRegister(rd, v)
}

// "4.12 Single Data Swap (SWP)"
//
//	Cond 00010 B 00 Rn Rd 0000 1001 Rm
func armSwap(arm *ARM, opcode uint32) {
	byteTransfer := opcode&0x00400000 == 0x00400000
	rn := (opcode >> 16) & 0x0f
	rd := (opcode >> 12) & 0x0f
	rm := opcode & 0x0f

	addr := arm.regs.r[rn]
	src := arm.regs.r[rm]

	var v uint32
	if byteTransfer {
		v = uint32(arm.mem.Read8(addr))
		arm.mem.Write8(addr, uint8(src))
	} else {
		v = rotateMisaligned(arm.mem.Read32(addr&^0x03), addr)
		arm.mem.Write32(addr&^0x03, src)
	}
	arm.internal(1)

	arm.writeRegister(rd, v)
}

// "4.11 Block Data Transfer (LDM, STM)"
//
//	Cond 100 P U S W L Rn Register list
//
// "The registers are transferred in the order lowest to highest, so R15 (if
// in the list) will always be transferred last. The lowest register also
// gets transferred to/from the lowest memory address."
func armBlockDataTransfer(arm *ARM, opcode uint32) {
	preIndex := opcode&0x01000000 == 0x01000000
	up := opcode&0x00800000 == 0x00800000
	psr := opcode&0x00400000 == 0x00400000
	writeBack := opcode&0x00200000 == 0x00200000
	load := opcode&0x00100000 == 0x00100000
	rn := (opcode >> 16) & 0x0f
	list := opcode & 0xffff

	size := uint32(bits.OnesCount32(list)) * 4

	// an empty list transfers the PC and the base moves as though all sixteen
	// registers had been transferred
	if list == 0 {
		list = 1 << rPC
		size = 0x40
	}

	base := arm.regs.r[rn]

	// the direction flag only changes the start address. the transfer itself
	// is always ascending
	var addr uint32
	var newBase uint32
	if up {
		addr = base
		if preIndex {
			addr += 4
		}
		newBase = base + size
	} else {
		addr = base - size
		if !preIndex {
			addr += 4
		}
		newBase = base - size
	}

	writeBack = writeBack && rn != rPC

	// with the S bit set, and without the PC being loaded, the transfer uses
	// the user bank
	userBank := psr && !(load && list&(1<<rPC) != 0)

	if load {
		if writeBack {
			arm.regs.r[rn] = newBase
		}

		var pc uint32
		for i := 0; i < NumRegisters; i++ {
			if list&(1<<i) == 0 {
				continue
			}
			v := arm.mem.Read32(addr &^ 0x03)
			addr += 4

			switch {
			case i == rPC:
				pc = v
			case userBank:
				arm.regs.SetRegWithMode(ModeUser, i, v)
			default:
				arm.regs.r[i] = v
			}
		}
		arm.internal(1)

		if list&(1<<rPC) != 0 {
			if psr {
				arm.restoreCPSR()
			}
			arm.branchTo(pc)
		}
		return
	}

	first := true
	for i := 0; i < NumRegisters; i++ {
		if list&(1<<i) == 0 {
			continue
		}

		var v uint32
		if userBank {
			v = arm.regs.RegWithMode(ModeUser, i)
		} else {
			v = arm.regs.r[i]
		}

		switch {
		case i == rPC:
			v += 4
		case uint32(i) == rn && writeBack && !first:
			// the base has already been updated by the time the second
			// register is stored
			v = newBase
		}

		arm.mem.Write32(addr&^0x03, v)
		addr += 4
		first = false
	}

	if writeBack {
		arm.regs.r[rn] = newBase
	}
}
