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

// the four shift types of the barrel shifter. the values match the encoding
// of the shift type field in ARM instructions and the opcode field of the
// thumb move shifted register instructions.
type shiftType uint32

const (
	shiftLSL shiftType = iota
	shiftLSR
	shiftASR
	shiftROR
)

func (s shiftType) String() string {
	switch s {
	case shiftLSL:
		return "LSL"
	case shiftLSR:
		return "LSR"
	case shiftASR:
		return "ASR"
	case shiftROR:
		return "ROR"
	}
	return "???"
}

// shiftRegister is the barrel shifter when the shift amount has been taken
// from a register. only the bottom byte of the amount is used.
//
// a shift amount of zero leaves the value and the carry flag unchanged for
// every shift type.
func shiftRegister(typ shiftType, value uint32, amount uint32, carry bool) (uint32, bool) {
	amount &= 0xff
	if amount == 0 {
		return value, carry
	}

	switch typ {
	case shiftLSL:
		if amount < 32 {
			return value << amount, value&(1<<(32-amount)) != 0
		}
		if amount == 32 {
			return 0, value&0x01 == 0x01
		}
		return 0, false

	case shiftLSR:
		if amount < 32 {
			return value >> amount, (value>>(amount-1))&0x01 == 0x01
		}
		if amount == 32 {
			return 0, value>>31 == 0x01
		}
		return 0, false

	case shiftASR:
		if amount < 32 {
			return uint32(int32(value) >> amount), (value>>(amount-1))&0x01 == 0x01
		}
		if value&0x80000000 == 0x80000000 {
			return 0xffffffff, true
		}
		return 0, false

	case shiftROR:
		// "ROR by n where n is greater than 32 will give the same result and
		// carry out as ROR by n-32"
		amount &= 0x1f
		if amount == 0 {
			return value, value>>31 == 0x01
		}
		return bits.RotateLeft32(value, -int(amount)), (value>>(amount-1))&0x01 == 0x01
	}

	panic("impossible shift type")
}

// shiftImmediate is the barrel shifter when the shift amount is encoded in the
// instruction. the amount is between 0 and 31. the encoding of zero amounts is
// reused for shifts that would otherwise be impossible to express:
//
//	LSL #0 no shift, carry unchanged
//	LSR #0 is LSR #32
//	ASR #0 is ASR #32
//	ROR #0 is RRX (rotate right by one through the carry flag)
func shiftImmediate(typ shiftType, value uint32, amount uint32, carry bool) (uint32, bool) {
	if amount == 0 {
		switch typ {
		case shiftLSL:
			return value, carry
		case shiftLSR, shiftASR:
			amount = 32
		case shiftROR:
			var c uint32
			if carry {
				c = 0x80000000
			}
			return (value >> 1) | c, value&0x01 == 0x01
		}
	}
	return shiftRegister(typ, value, amount, carry)
}

// adc is the basis of all the arithmetic primitives. it returns the result,
// the carry out and the overflow.
func adc(a uint32, b uint32, carry bool) (uint32, bool, bool) {
	var c uint64
	if carry {
		c = 1
	}
	r := uint64(a) + uint64(b) + c
	result := uint32(r)

	// overflow occurs if the inputs have the same sign and the result has a
	// different sign
	overflow := (^(a ^ b)&(a^result))&0x80000000 == 0x80000000

	return result, r > 0xffffffff, overflow
}

func add(a uint32, b uint32) (uint32, bool, bool) {
	return adc(a, b, false)
}

// subtraction is addition of the inverted operand with the carry in. the
// carry out is therefore the inverse of the borrow, which is the ARM
// convention
func sbc(a uint32, b uint32, carry bool) (uint32, bool, bool) {
	return adc(a, ^b, carry)
}

func sub(a uint32, b uint32) (uint32, bool, bool) {
	return adc(a, ^b, true)
}

func rsb(a uint32, b uint32) (uint32, bool, bool) {
	return sub(b, a)
}

func rsc(a uint32, b uint32, carry bool) (uint32, bool, bool) {
	return sbc(b, a, carry)
}

// the number of internal cycles used by a multiply instruction depends on the
// value of the multiplier. "m" in the ARM7TDMI data sheet
func multiplyCycles(rs uint32) uint32 {
	switch {
	case rs&0xffffff00 == 0 || rs&0xffffff00 == 0xffffff00:
		return 1
	case rs&0xffff0000 == 0 || rs&0xffff0000 == 0xffff0000:
		return 2
	case rs&0xff000000 == 0 || rs&0xff000000 == 0xff000000:
		return 3
	}
	return 4
}

// rotate a word loaded from a misaligned address. the bus always returns the
// aligned word and the ARM7TDMI rotates it so that the addressed byte is in
// the bottom byte of the register
func rotateMisaligned(v uint32, addr uint32) uint32 {
	return bits.RotateLeft32(v, -int((addr&0x03)*8))
}
