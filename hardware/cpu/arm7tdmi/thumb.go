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

// thumbInstruction is the uniform signature of every thumb instruction
// implementation.
type thumbInstruction func(arm *ARM, opcode uint16)

// thumbTable is indexed by the top eight bits of the instruction.
var thumbTable [256]thumbInstruction

// thumbALUTable is indexed by bits 9 to 6 of the ALU operations
// instructions.
var thumbALUTable [16]func(arm *ARM, rd uint32, rs uint32)

func init() {
	for i := range thumbTable {
		thumbTable[i] = decodeThumb(uint16(i))
	}

	thumbALUTable = [16]func(arm *ARM, rd uint32, rs uint32){
		thumbAND, thumbEOR, thumbLSL, thumbLSR,
		thumbASR, thumbADC, thumbSBC, thumbROR,
		thumbTST, thumbNEG, thumbCMP, thumbCMN,
		thumbORR, thumbMUL, thumbBIC, thumbMVN,
	}
}

// decodeThumb returns the implementation for the top eight bits of the
// instruction. format numbers are from "5.1 Format Summary" of the ARM7TDMI
// data sheet.
func decodeThumb(hi uint16) thumbInstruction {
	switch {
	case hi < 0x18:
		return thumbMoveShiftedRegister
	case hi < 0x20:
		return thumbAddSubtract
	case hi < 0x40:
		return thumbMovCmpAddSubImm
	case hi < 0x44:
		return thumbALUOperations
	case hi < 0x48:
		return thumbHiRegisterOps
	case hi < 0x50:
		return thumbPCRelativeLoad
	case hi < 0x60:
		if hi&0x02 == 0x00 {
			return thumbLoadStoreRegisterOffset
		}
		return thumbLoadStoreSignExtended
	case hi < 0x80:
		return thumbLoadStoreImmediateOffset
	case hi < 0x90:
		return thumbLoadStoreHalfword
	case hi < 0xa0:
		return thumbSPRelativeLoadStore
	case hi < 0xb0:
		return thumbLoadAddress
	case hi == 0xb0:
		return thumbAddOffsetToSP
	case hi == 0xb4 || hi == 0xb5 || hi == 0xbc || hi == 0xbd:
		return thumbPushPopRegisters
	case hi < 0xc0:
		return thumbUndefined
	case hi < 0xd0:
		return thumbMultipleLoadStore
	case hi < 0xde:
		return thumbConditionalBranch
	case hi == 0xdf:
		return thumbSoftwareInterrupt
	case hi < 0xe0:
		return thumbUndefined
	case hi < 0xe8:
		return thumbUnconditionalBranch
	case hi < 0xf0:
		return thumbUndefined
	}
	return thumbLongBranchWithLink
}

func thumbUndefined(arm *ARM, opcode uint16) {
	arm.undefined(uint32(opcode))
}

// format 1: move shifted register
func thumbMoveShiftedRegister(arm *ARM, opcode uint16) {
	typ := shiftType((opcode >> 11) & 0x03)
	amount := uint32((opcode >> 6) & 0x1f)
	rs := (opcode >> 3) & 0x07
	rd := opcode & 0x07

	result, carry := shiftImmediate(typ, arm.regs.r[rs], amount, arm.regs.status.carry)
	arm.regs.r[rd] = result
	arm.regs.status.setNZ(result)
	arm.regs.status.carry = carry
}

// format 2: add/subtract
func thumbAddSubtract(arm *ARM, opcode uint16) {
	immediate := opcode&0x0400 == 0x0400
	subtract := opcode&0x0200 == 0x0200
	rn := uint32((opcode >> 6) & 0x07)
	rs := (opcode >> 3) & 0x07
	rd := opcode & 0x07

	var operand uint32
	if immediate {
		operand = rn
	} else {
		operand = arm.regs.r[rn]
	}

	var result uint32
	var carry, overflow bool
	if subtract {
		result, carry, overflow = sub(arm.regs.r[rs], operand)
	} else {
		result, carry, overflow = add(arm.regs.r[rs], operand)
	}

	arm.regs.r[rd] = result
	arm.regs.status.setNZCV(result, carry, overflow)
}

// format 3: move/compare/add/subtract immediate
func thumbMovCmpAddSubImm(arm *ARM, opcode uint16) {
	op := (opcode >> 11) & 0x03
	rd := (opcode >> 8) & 0x07
	imm := uint32(opcode & 0xff)

	switch op {
	case 0b00:
		// MOV
		arm.regs.r[rd] = imm
		arm.regs.status.setNZ(imm)
	case 0b01:
		// CMP
		result, carry, overflow := sub(arm.regs.r[rd], imm)
		arm.regs.status.setNZCV(result, carry, overflow)
	case 0b10:
		// ADD
		result, carry, overflow := add(arm.regs.r[rd], imm)
		arm.regs.r[rd] = result
		arm.regs.status.setNZCV(result, carry, overflow)
	case 0b11:
		// SUB
		result, carry, overflow := sub(arm.regs.r[rd], imm)
		arm.regs.r[rd] = result
		arm.regs.status.setNZCV(result, carry, overflow)
	}
}

// format 4: ALU operations
func thumbALUOperations(arm *ARM, opcode uint16) {
	op := (opcode >> 6) & 0x0f
	rs := uint32((opcode >> 3) & 0x07)
	rd := uint32(opcode & 0x07)
	thumbALUTable[op](arm, rd, rs)
}

func thumbAND(arm *ARM, rd uint32, rs uint32) {
	arm.regs.r[rd] &= arm.regs.r[rs]
	arm.regs.status.setNZ(arm.regs.r[rd])
}

func thumbEOR(arm *ARM, rd uint32, rs uint32) {
	arm.regs.r[rd] ^= arm.regs.r[rs]
	arm.regs.status.setNZ(arm.regs.r[rd])
}

func thumbShift(arm *ARM, typ shiftType, rd uint32, rs uint32) {
	result, carry := shiftRegister(typ, arm.regs.r[rd], arm.regs.r[rs], arm.regs.status.carry)
	arm.regs.r[rd] = result
	arm.regs.status.setNZ(result)
	arm.regs.status.carry = carry
	arm.internal(1)
}

func thumbLSL(arm *ARM, rd uint32, rs uint32) {
	thumbShift(arm, shiftLSL, rd, rs)
}

func thumbLSR(arm *ARM, rd uint32, rs uint32) {
	thumbShift(arm, shiftLSR, rd, rs)
}

func thumbASR(arm *ARM, rd uint32, rs uint32) {
	thumbShift(arm, shiftASR, rd, rs)
}

func thumbROR(arm *ARM, rd uint32, rs uint32) {
	thumbShift(arm, shiftROR, rd, rs)
}

func thumbADC(arm *ARM, rd uint32, rs uint32) {
	result, carry, overflow := adc(arm.regs.r[rd], arm.regs.r[rs], arm.regs.status.carry)
	arm.regs.r[rd] = result
	arm.regs.status.setNZCV(result, carry, overflow)
}

func thumbSBC(arm *ARM, rd uint32, rs uint32) {
	result, carry, overflow := sbc(arm.regs.r[rd], arm.regs.r[rs], arm.regs.status.carry)
	arm.regs.r[rd] = result
	arm.regs.status.setNZCV(result, carry, overflow)
}

func thumbTST(arm *ARM, rd uint32, rs uint32) {
	arm.regs.status.setNZ(arm.regs.r[rd] & arm.regs.r[rs])
}

func thumbNEG(arm *ARM, rd uint32, rs uint32) {
	result, carry, overflow := sub(0, arm.regs.r[rs])
	arm.regs.r[rd] = result
	arm.regs.status.setNZCV(result, carry, overflow)
}

func thumbCMP(arm *ARM, rd uint32, rs uint32) {
	result, carry, overflow := sub(arm.regs.r[rd], arm.regs.r[rs])
	arm.regs.status.setNZCV(result, carry, overflow)
}

func thumbCMN(arm *ARM, rd uint32, rs uint32) {
	result, carry, overflow := add(arm.regs.r[rd], arm.regs.r[rs])
	arm.regs.status.setNZCV(result, carry, overflow)
}

func thumbORR(arm *ARM, rd uint32, rs uint32) {
	arm.regs.r[rd] |= arm.regs.r[rs]
	arm.regs.status.setNZ(arm.regs.r[rd])
}

func thumbMUL(arm *ARM, rd uint32, rs uint32) {
	arm.internal(multiplyCycles(arm.regs.r[rd]))
	arm.regs.r[rd] *= arm.regs.r[rs]
	arm.regs.status.setNZ(arm.regs.r[rd])
}

func thumbBIC(arm *ARM, rd uint32, rs uint32) {
	arm.regs.r[rd] &^= arm.regs.r[rs]
	arm.regs.status.setNZ(arm.regs.r[rd])
}

func thumbMVN(arm *ARM, rd uint32, rs uint32) {
	arm.regs.r[rd] = ^arm.regs.r[rs]
	arm.regs.status.setNZ(arm.regs.r[rd])
}

// format 5: hi register operations/branch exchange
func thumbHiRegisterOps(arm *ARM, opcode uint16) {
	op := (opcode >> 8) & 0x03
	rs := uint32((opcode >> 3) & 0x0f)
	rd := uint32(opcode&0x07) | uint32((opcode>>4)&0x08)

	switch op {
	case 0b00:
		// ADD. flags are not affected
		arm.writeRegister(rd, arm.regs.r[rd]+arm.regs.r[rs])
	case 0b01:
		// CMP
		result, carry, overflow := sub(arm.regs.r[rd], arm.regs.r[rs])
		arm.regs.status.setNZCV(result, carry, overflow)
	case 0b10:
		// MOV. flags are not affected
		arm.writeRegister(rd, arm.regs.r[rs])
	case 0b11:
		// BX
		v := arm.regs.r[rs]
		arm.regs.status.thumb = v&0x01 == 0x01
		arm.branchTo(v)
	}
}

// format 6: PC-relative load. bit 1 of the PC is forced to zero so that the
// address is always word aligned
func thumbPCRelativeLoad(arm *ARM, opcode uint16) {
	rd := (opcode >> 8) & 0x07
	addr := (arm.regs.r[rPC] &^ 0x02) + uint32(opcode&0xff)<<2
	arm.regs.r[rd] = arm.mem.Read32(addr)
	arm.internal(1)
}

// format 7: load/store with register offset
func thumbLoadStoreRegisterOffset(arm *ARM, opcode uint16) {
	load := opcode&0x0800 == 0x0800
	byteTransfer := opcode&0x0400 == 0x0400
	ro := (opcode >> 6) & 0x07
	rb := (opcode >> 3) & 0x07
	rd := opcode & 0x07

	addr := arm.regs.r[rb] + arm.regs.r[ro]

	switch {
	case load && byteTransfer:
		arm.regs.r[rd] = uint32(arm.mem.Read8(addr))
		arm.internal(1)
	case load:
		arm.regs.r[rd] = rotateMisaligned(arm.mem.Read32(addr&^0x03), addr)
		arm.internal(1)
	case byteTransfer:
		arm.mem.Write8(addr, uint8(arm.regs.r[rd]))
	default:
		arm.mem.Write32(addr&^0x03, arm.regs.r[rd])
	}
}

// format 8: load/store sign-extended byte/halfword
func thumbLoadStoreSignExtended(arm *ARM, opcode uint16) {
	op := (opcode >> 10) & 0x03
	ro := (opcode >> 6) & 0x07
	rb := (opcode >> 3) & 0x07
	rd := opcode & 0x07

	addr := arm.regs.r[rb] + arm.regs.r[ro]

	switch op {
	case 0b00:
		// STRH
		arm.mem.Write16(addr&^0x01, uint16(arm.regs.r[rd]))
		return
	case 0b01:
		// LDRH
		v := uint32(arm.mem.Read16(addr &^ 0x01))
		if addr&0x01 == 0x01 {
			v = bits.RotateLeft32(v, -8)
		}
		arm.regs.r[rd] = v
	case 0b10:
		// LDSB
		arm.regs.r[rd] = uint32(int32(int8(arm.mem.Read8(addr))))
	case 0b11:
		// LDSH
		if addr&0x01 == 0x01 {
			arm.regs.r[rd] = uint32(int32(int8(arm.mem.Read8(addr))))
		} else {
			arm.regs.r[rd] = uint32(int32(int16(arm.mem.Read16(addr))))
		}
	}
	arm.internal(1)
}

// format 9: load/store with immediate offset
func thumbLoadStoreImmediateOffset(arm *ARM, opcode uint16) {
	byteTransfer := opcode&0x1000 == 0x1000
	load := opcode&0x0800 == 0x0800
	offset := uint32((opcode >> 6) & 0x1f)
	rb := (opcode >> 3) & 0x07
	rd := opcode & 0x07

	if !byteTransfer {
		offset <<= 2
	}
	addr := arm.regs.r[rb] + offset

	switch {
	case load && byteTransfer:
		arm.regs.r[rd] = uint32(arm.mem.Read8(addr))
		arm.internal(1)
	case load:
		arm.regs.r[rd] = rotateMisaligned(arm.mem.Read32(addr&^0x03), addr)
		arm.internal(1)
	case byteTransfer:
		arm.mem.Write8(addr, uint8(arm.regs.r[rd]))
	default:
		arm.mem.Write32(addr&^0x03, arm.regs.r[rd])
	}
}

// format 10: load/store halfword
func thumbLoadStoreHalfword(arm *ARM, opcode uint16) {
	load := opcode&0x0800 == 0x0800
	offset := uint32((opcode>>6)&0x1f) << 1
	rb := (opcode >> 3) & 0x07
	rd := opcode & 0x07

	addr := arm.regs.r[rb] + offset

	if load {
		v := uint32(arm.mem.Read16(addr &^ 0x01))
		if addr&0x01 == 0x01 {
			v = bits.RotateLeft32(v, -8)
		}
		arm.regs.r[rd] = v
		arm.internal(1)
		return
	}

	arm.mem.Write16(addr&^0x01, uint16(arm.regs.r[rd]))
}

// format 11: SP-relative load/store
func thumbSPRelativeLoadStore(arm *ARM, opcode uint16) {
	load := opcode&0x0800 == 0x0800
	rd := (opcode >> 8) & 0x07
	addr := arm.regs.r[rSP] + uint32(opcode&0xff)<<2

	if load {
		arm.regs.r[rd] = rotateMisaligned(arm.mem.Read32(addr&^0x03), addr)
		arm.internal(1)
		return
	}

	arm.mem.Write32(addr&^0x03, arm.regs.r[rd])
}

// format 12: load address
func thumbLoadAddress(arm *ARM, opcode uint16) {
	sp := opcode&0x0800 == 0x0800
	rd := (opcode >> 8) & 0x07
	offset := uint32(opcode&0xff) << 2

	if sp {
		arm.regs.r[rd] = arm.regs.r[rSP] + offset
	} else {
		arm.regs.r[rd] = (arm.regs.r[rPC] &^ 0x02) + offset
	}
}

// format 13: add offset to stack pointer
func thumbAddOffsetToSP(arm *ARM, opcode uint16) {
	offset := uint32(opcode&0x7f) << 2
	if opcode&0x80 == 0x80 {
		arm.regs.r[rSP] -= offset
	} else {
		arm.regs.r[rSP] += offset
	}
}

// format 14: push/pop registers
func thumbPushPopRegisters(arm *ARM, opcode uint16) {
	pop := opcode&0x0800 == 0x0800
	pclr := opcode&0x0100 == 0x0100
	list := uint32(opcode & 0xff)

	if pop {
		addr := arm.regs.r[rSP]
		for i := 0; i < 8; i++ {
			if list&(1<<i) != 0 {
				arm.regs.r[i] = arm.mem.Read32(addr &^ 0x03)
				addr += 4
			}
		}
		if pclr {
			v := arm.mem.Read32(addr &^ 0x03)
			addr += 4
			arm.regs.r[rSP] = addr
			arm.branchTo(v)
		} else {
			arm.regs.r[rSP] = addr
		}
		arm.internal(1)
		return
	}

	count := uint32(bits.OnesCount32(list))
	if pclr {
		count++
	}

	addr := arm.regs.r[rSP] - count*4
	arm.regs.r[rSP] = addr

	for i := 0; i < 8; i++ {
		if list&(1<<i) != 0 {
			arm.mem.Write32(addr&^0x03, arm.regs.r[i])
			addr += 4
		}
	}
	if pclr {
		arm.mem.Write32(addr&^0x03, arm.regs.r[rLR])
	}
}

// format 15: multiple load/store
func thumbMultipleLoadStore(arm *ARM, opcode uint16) {
	load := opcode&0x0800 == 0x0800
	rb := uint32((opcode >> 8) & 0x07)
	list := uint32(opcode & 0xff)

	addr := arm.regs.r[rb]

	// an empty list transfers the PC and moves the base by 0x40
	if list == 0 {
		if load {
			v := arm.mem.Read32(addr &^ 0x03)
			arm.regs.r[rb] = addr + 0x40
			arm.branchTo(v)
		} else {
			arm.mem.Write32(addr&^0x03, arm.regs.r[rPC]+2)
			arm.regs.r[rb] = addr + 0x40
		}
		return
	}

	newBase := addr + uint32(bits.OnesCount32(list))*4

	if load {
		arm.regs.r[rb] = newBase
		for i := 0; i < 8; i++ {
			if list&(1<<i) != 0 {
				arm.regs.r[i] = arm.mem.Read32(addr &^ 0x03)
				addr += 4
			}
		}
		arm.internal(1)
		return
	}

	first := true
	for i := 0; i < 8; i++ {
		if list&(1<<i) != 0 {
			v := arm.regs.r[i]
			if uint32(i) == rb && !first {
				v = newBase
			}
			arm.mem.Write32(addr&^0x03, v)
			addr += 4
			first = false
		}
	}
	arm.regs.r[rb] = newBase
}

// format 16: conditional branch
func thumbConditionalBranch(arm *ARM, opcode uint16) {
	cond := uint32((opcode >> 8) & 0x0f)
	if !arm.regs.status.condition(cond) {
		return
	}
	offset := uint32(int32(int8(opcode&0xff)) << 1)
	arm.branchTo(arm.regs.r[rPC] + offset)
}

// format 17: software interrupt
func thumbSoftwareInterrupt(arm *ARM, _ uint16) {
	arm.exception(exceptionSWI, arm.executingPC+2)
}

// format 18: unconditional branch
func thumbUnconditionalBranch(arm *ARM, opcode uint16) {
	// sign extend the eleven bit offset and shift left by one
	offset := uint32(int32(uint32(opcode)<<21) >> 20)
	arm.branchTo(arm.regs.r[rPC] + offset)
}

// format 19: long branch with link. the instruction is in two halves. the
// first half adds the high part of the offset to the PC and stores the result
// in LR. the second half adds the low part of the offset to LR and branches,
// leaving the address of the instruction following the second half in LR
// with bit zero set
func thumbLongBranchWithLink(arm *ARM, opcode uint16) {
	offset := uint32(opcode & 0x07ff)

	if opcode&0x0800 == 0x0000 {
		// sign extend the eleven bit offset and shift into the high part
		arm.regs.r[rLR] = arm.regs.r[rPC] + uint32(int32(offset<<21)>>9)
		return
	}

	target := arm.regs.r[rLR] + offset<<1
	arm.regs.r[rLR] = (arm.executingPC + 2) | 0x01
	arm.branchTo(target)
}
