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

// armInstruction is the uniform signature of every ARM instruction
// implementation.
type armInstruction func(arm *ARM, opcode uint32)

// armTable is indexed by bits 27 to 20 (the top eight bits of the index) and
// bits 7 to 4 (the bottom four bits) of the instruction.
var armTable [4096]armInstruction

func init() {
	for i := range armTable {
		armTable[i] = decodeARM(uint32(i))
	}
}

// decodeARM returns the implementation for the table index. the order of the
// cases matters because the encodings of the multiply, swap, halfword and PSR
// transfer instructions all live inside the data processing encoding space.
//
// see "4.1 Instruction Set Summary" of the ARM7TDMI data sheet.
func decodeARM(idx uint32) armInstruction {
	hi := idx >> 4
	lo := idx & 0x0f

	switch {
	case hi == 0x12 && lo == 0x01:
		return armBranchExchange

	case hi&0xfc == 0x00 && lo == 0x09:
		return armMultiply

	case hi&0xf8 == 0x08 && lo == 0x09:
		return armMultiplyLong

	case hi&0xfb == 0x10 && lo == 0x09:
		return armSwap

	case hi&0xe0 == 0x00 && lo&0x09 == 0x09:
		// remaining encodings with bits 7 and 4 set are halfword transfers
		// but only if SH is not zero. signed stores (LDRD/STRD in later
		// architectures) are undefined
		if lo == 0x09 {
			return armUndefined
		}
		if hi&0x01 == 0x00 && lo != 0x0b {
			return armUndefined
		}
		return armHalfwordTransfer

	case hi&0xfb == 0x10 && lo == 0x00:
		return armMRS

	case hi&0xfb == 0x12 && lo == 0x00:
		return armMSR

	case hi&0xfb == 0x32:
		return armMSR

	case hi&0xfb == 0x30:
		return armUndefined

	case hi&0xc0 == 0x00:
		// test and compare instructions without the S bit are not data
		// processing instructions. everything that has not been claimed
		// above is undefined
		if hi&0x19 == 0x10 {
			return armUndefined
		}
		return armDataProcessing

	case hi&0xe0 == 0x60 && lo&0x01 == 0x01:
		return armUndefined

	case hi&0xc0 == 0x40:
		return armSingleDataTransfer

	case hi&0xe0 == 0x80:
		return armBlockDataTransfer

	case hi&0xe0 == 0xa0:
		return armBranch

	case hi&0xf0 == 0xf0:
		return armSoftwareInterrupt
	}

	// coprocessor instructions. there is no coprocessor in the console
	return armUndefined
}

func armUndefined(arm *ARM, opcode uint32) {
	arm.undefined(opcode)
}
