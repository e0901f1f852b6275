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

// "4.7 Multiply and Multiply-Accumulate (MUL, MLA)"
//
//	Cond 000000 A S Rd Rn Rs 1001 Rm
//
// the C flag is set to a meaningless value by the ARM7TDMI. it is left
// unchanged here
func armMultiply(arm *ARM, opcode uint32) {
	accumulate := opcode&0x00200000 == 0x00200000
	setFlags := opcode&0x00100000 == 0x00100000
	rd := (opcode >> 16) & 0x0f
	rn := (opcode >> 12) & 0x0f
	rs := (opcode >> 8) & 0x0f
	rm := opcode & 0x0f

	result := arm.regs.r[rm] * arm.regs.r[rs]
	cycles := multiplyCycles(arm.regs.r[rs])
	if accumulate {
		result += arm.regs.r[rn]
		cycles++
	}
	arm.internal(cycles)

	arm.writeRegister(rd, result)

	if setFlags {
		arm.regs.status.setNZ(result)
	}
}

// "4.8 Multiply Long and Multiply-Accumulate Long (MULL, MLAL)"
//
//	Cond 00001 U A S RdHi RdLo Rs 1001 Rm
func armMultiplyLong(arm *ARM, opcode uint32) {
	signed := opcode&0x00400000 == 0x00400000
	accumulate := opcode&0x00200000 == 0x00200000
	setFlags := opcode&0x00100000 == 0x00100000
	rdHi := (opcode >> 16) & 0x0f
	rdLo := (opcode >> 12) & 0x0f
	rs := (opcode >> 8) & 0x0f
	rm := opcode & 0x0f

	var result uint64
	if signed {
		result = uint64(int64(int32(arm.regs.r[rm])) * int64(int32(arm.regs.r[rs])))
	} else {
		result = uint64(arm.regs.r[rm]) * uint64(arm.regs.r[rs])
	}

	cycles := multiplyCycles(arm.regs.r[rs]) + 1
	if accumulate {
		result += uint64(arm.regs.r[rdHi])<<32 | uint64(arm.regs.r[rdLo])
		cycles++
	}
	arm.internal(cycles)

	arm.writeRegister(rdLo, uint32(result))
	arm.writeRegister(rdHi, uint32(result>>32))

	if setFlags {
		arm.regs.status.negative = result&0x8000000000000000 == 0x8000000000000000
		arm.regs.status.zero = result == 0
	}
}
