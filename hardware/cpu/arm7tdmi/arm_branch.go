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

// "4.3 Branch and Exchange (BX)"
//
//	Cond 0001 0010 1111 1111 1111 0001 Rn
func armBranchExchange(arm *ARM, opcode uint32) {
	v := arm.regs.r[opcode&0x0f]
	arm.regs.status.thumb = v&0x01 == 0x01
	arm.branchTo(v)
}

// "4.4 Branch and Branch with Link (B, BL)"
//
//	Cond 101 L Offset
func armBranch(arm *ARM, opcode uint32) {
	// sign extend the 24bit offset and shift left by two
	offset := uint32(int32(opcode<<8) >> 6)

	if opcode&0x01000000 == 0x01000000 {
		arm.regs.r[rLR] = arm.executingPC + 4
	}

	arm.branchTo(arm.regs.r[rPC] + offset)
}

// "4.13 Software Interrupt (SWI)"
//
//	Cond 1111 Comment field (ignored by processor)
func armSoftwareInterrupt(arm *ARM, _ uint32) {
	arm.exception(exceptionSWI, arm.executingPC+4)
}
