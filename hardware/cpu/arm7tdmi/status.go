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

import (
	"strings"
)

// CPSR bit positions
const (
	bitNegative   = 31
	bitZero       = 30
	bitCarry      = 29
	bitOverflow   = 28
	bitIRQDisable = 7
	bitFIQDisable = 6
	bitThumb      = 5

	// mask for the mode field
	modeMask = 0x1f

	// the T bit as a mask
	thumbMask = 1 << bitThumb
)

// the status type is the unpacked form of the CPSR. the individual flags are
// tested and set far more often than the packed word is needed so it makes
// sense to keep them as separate fields. the packed form is created on demand
// by the pack() function
type status struct {
	negative bool
	zero     bool
	carry    bool
	overflow bool

	// interrupt masks. the console has no FIQ source so the FIQ disable bit
	// is always set. the field is kept for completeness in the packed form
	irqDisable bool
	fiqDisable bool

	// processor is in thumb state
	thumb bool

	mode Mode
}

func (sr status) String() string {
	s := strings.Builder{}

	if sr.negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if sr.overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}
	if sr.irqDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.fiqDisable {
		s.WriteRune('F')
	} else {
		s.WriteRune('f')
	}
	if sr.thumb {
		s.WriteRune('T')
	} else {
		s.WriteRune('t')
	}
	s.WriteRune(' ')
	s.WriteString(sr.mode.String())

	return s.String()
}

func b2u(b bool, bit int) uint32 {
	if b {
		return 1 << bit
	}
	return 0
}

// pack the status into a 32bit word
func (sr status) pack() uint32 {
	return b2u(sr.negative, bitNegative) |
		b2u(sr.zero, bitZero) |
		b2u(sr.carry, bitCarry) |
		b2u(sr.overflow, bitOverflow) |
		b2u(sr.irqDisable, bitIRQDisable) |
		b2u(true, bitFIQDisable) |
		b2u(sr.thumb, bitThumb) |
		uint32(sr.mode)
}

// unpack the flags and interrupt/thumb bits from the word. the mode field is
// not touched because changing the mode requires the register banks to be
// swapped. see Registers.SetCPSR()
func (sr *status) unpack(v uint32) {
	sr.negative = v&(1<<bitNegative) != 0
	sr.zero = v&(1<<bitZero) != 0
	sr.carry = v&(1<<bitCarry) != 0
	sr.overflow = v&(1<<bitOverflow) != 0
	sr.irqDisable = v&(1<<bitIRQDisable) != 0
	sr.fiqDisable = true
	sr.thumb = v&(1<<bitThumb) != 0
}

func (sr *status) isNegative(a uint32) {
	sr.negative = a&0x80000000 == 0x80000000
}

func (sr *status) isZero(a uint32) {
	sr.zero = a == 0x00
}

// set the N and Z flags from the result of an operation
func (sr *status) setNZ(a uint32) {
	sr.isNegative(a)
	sr.isZero(a)
}

// set all four flags. used by the arithmetic instructions
func (sr *status) setNZCV(a uint32, carry bool, overflow bool) {
	sr.isNegative(a)
	sr.isZero(a)
	sr.carry = carry
	sr.overflow = overflow
}

// condition codes from "4.2 The Condition Field" of the ARM7TDMI data sheet.
// the same encoding is used by the thumb conditional branch
func (sr *status) condition(cond uint32) bool {
	switch cond {
	case 0b0000:
		// EQ: Z set
		return sr.zero
	case 0b0001:
		// NE: Z clear
		return !sr.zero
	case 0b0010:
		// CS: C set
		return sr.carry
	case 0b0011:
		// CC: C clear
		return !sr.carry
	case 0b0100:
		// MI: N set
		return sr.negative
	case 0b0101:
		// PL: N clear
		return !sr.negative
	case 0b0110:
		// VS: V set
		return sr.overflow
	case 0b0111:
		// VC: V clear
		return !sr.overflow
	case 0b1000:
		// HI: C set and Z clear
		return sr.carry && !sr.zero
	case 0b1001:
		// LS: C clear or Z set
		return !sr.carry || sr.zero
	case 0b1010:
		// GE: N equals V
		return sr.negative == sr.overflow
	case 0b1011:
		// LT: N not equal to V
		return sr.negative != sr.overflow
	case 0b1100:
		// GT: Z clear and N equals V
		return !sr.zero && sr.negative == sr.overflow
	case 0b1101:
		// LE: Z set or N not equal to V
		return sr.zero || sr.negative != sr.overflow
	case 0b1110:
		// AL
		return true
	}

	// NV. never on ARMv4
	return false
}
