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

// data processing opcodes
const (
	opAND = iota
	opEOR
	opSUB
	opRSB
	opADD
	opADC
	opSBC
	opRSC
	opTST
	opTEQ
	opCMP
	opCMN
	opORR
	opMOV
	opBIC
	opMVN
)

// "4.5 Data Processing"
//
//	Cond 00 I Opcode S Rn Rd Operand2
func armDataProcessing(arm *ARM, opcode uint32) {
	op := (opcode >> 21) & 0x0f
	setFlags := opcode&0x00100000 == 0x00100000
	rn := (opcode >> 16) & 0x0f
	rd := (opcode >> 12) & 0x0f

	a := arm.regs.r[rn]
	carry := arm.regs.status.carry

	var operand uint32
	var shiftCarry bool

	if opcode&0x02000000 == 0x02000000 {
		// immediate operand is an eight bit value rotated right by twice the
		// rotate field
		imm := opcode & 0xff
		rot := ((opcode >> 8) & 0x0f) * 2
		operand = bits.RotateLeft32(imm, -int(rot))
		if rot == 0 {
			shiftCarry = carry
		} else {
			shiftCarry = operand&0x80000000 == 0x80000000
		}
	} else {
		rm := opcode & 0x0f
		typ := shiftType((opcode >> 5) & 0x03)

		if opcode&0x10 == 0x10 {
			// shift amount in register. the PC is one instruction further
			// ahead because of the extra cycle needed to read the register
			rs := (opcode >> 8) & 0x0f
			v := arm.regs.r[rm]
			if rm == rPC {
				v += 4
			}
			if rn == rPC {
				a += 4
			}
			operand, shiftCarry = shiftRegister(typ, v, arm.regs.r[rs], carry)
			arm.internal(1)
		} else {
			amount := (opcode >> 7) & 0x1f
			operand, shiftCarry = shiftImmediate(typ, arm.regs.r[rm], amount, carry)
		}
	}

	var result uint32
	c := shiftCarry
	v := arm.regs.status.overflow
	write := true

	switch op {
	case opAND:
		result = a & operand
	case opEOR:
		result = a ^ operand
	case opSUB:
		result, c, v = sub(a, operand)
	case opRSB:
		result, c, v = rsb(a, operand)
	case opADD:
		result, c, v = add(a, operand)
	case opADC:
		result, c, v = adc(a, operand, carry)
	case opSBC:
		result, c, v = sbc(a, operand, carry)
	case opRSC:
		result, c, v = rsc(a, operand, carry)
	case opTST:
		result = a & operand
		write = false
	case opTEQ:
		result = a ^ operand
		write = false
	case opCMP:
		result, c, v = sub(a, operand)
		write = false
	case opCMN:
		result, c, v = add(a, operand)
		write = false
	case opORR:
		result = a | operand
	case opMOV:
		result = operand
	case opBIC:
		result = a &^ operand
	case opMVN:
		result = ^operand
	}

	if write && rd == rPC {
		// "When Rd is R15 and the S flag is set the result of the operation
		// is placed in R15 and the SPSR corresponding to the current mode is
		// moved to the CPSR"
		if setFlags {
			arm.restoreCPSR()
		}
		arm.branchTo(result)
		return
	}

	if write {
		arm.regs.r[rd] = result
	}

	if setFlags {
		arm.regs.status.setNZCV(result, c, v)
	}
}

// "4.6 PSR Transfer (MRS, MSR)"
//
//	Cond 00010 Ps 001111 Rd 000000000000
func armMRS(arm *ARM, opcode uint32) {
	rd := (opcode >> 12) & 0x0f
	if opcode&0x00400000 == 0x00400000 {
		arm.writeRegister(rd, arm.regs.SPSR())
	} else {
		arm.writeRegister(rd, arm.regs.CPSR())
	}
}

// "4.6 PSR Transfer (MRS, MSR)"
//
//	Cond 00 I 10 Pd 10 field 1111 Source operand
//
// only the flags and control fields have any meaning on the ARM7TDMI.
func armMSR(arm *ARM, opcode uint32) {
	var v uint32
	if opcode&0x02000000 == 0x02000000 {
		imm := opcode & 0xff
		rot := ((opcode >> 8) & 0x0f) * 2
		v = bits.RotateLeft32(imm, -int(rot))
	} else {
		v = arm.regs.r[opcode&0x0f]
	}

	var mask uint32
	if opcode&0x00080000 == 0x00080000 {
		mask |= 0xf0000000
	}

	// the control field can not be changed in user mode
	if opcode&0x00010000 == 0x00010000 && arm.regs.status.mode != ModeUser {
		mask |= 0x000000ff
	}

	if opcode&0x00400000 == 0x00400000 {
		arm.regs.SetSPSR((arm.regs.SPSR() &^ mask) | (v & mask))
		return
	}

	// the T bit must not be changed by MSR
	mask &^= thumbMask
	arm.setCPSR((arm.regs.CPSR() &^ mask) | (v & mask))
}
