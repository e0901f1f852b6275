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
	"fmt"
	"strings"
)

// register names.
const (
	rSP = 13 + iota
	rLR
	rPC
	NumRegisters
)

// Mode is the value of the mode field in the CPSR.
type Mode uint32

// List of valid Mode values.
const (
	ModeUser       Mode = 0x10
	ModeFIQ        Mode = 0x11
	ModeIRQ        Mode = 0x12
	ModeSupervisor Mode = 0x13
	ModeAbort      Mode = 0x17
	ModeUndefined  Mode = 0x1b
	ModeSystem     Mode = 0x1f
)

func (m Mode) String() string {
	switch m {
	case ModeUser:
		return "USR"
	case ModeFIQ:
		return "FIQ"
	case ModeIRQ:
		return "IRQ"
	case ModeSupervisor:
		return "SVC"
	case ModeAbort:
		return "ABT"
	case ModeUndefined:
		return "UND"
	case ModeSystem:
		return "SYS"
	}
	return fmt.Sprintf("%02x?", uint32(m))
}

// register banks. user and system modes share a bank
const (
	bankUser = iota
	bankFIQ
	bankIRQ
	bankSupervisor
	bankAbort
	bankUndefined
	numBanks
)

// bank returns the bank index for the mode. the second return value is false
// if the mode is not valid.
func (m Mode) bank() (int, bool) {
	switch m {
	case ModeUser, ModeSystem:
		return bankUser, true
	case ModeFIQ:
		return bankFIQ, true
	case ModeIRQ:
		return bankIRQ, true
	case ModeSupervisor:
		return bankSupervisor, true
	case ModeAbort:
		return bankAbort, true
	case ModeUndefined:
		return bankUndefined, true
	}
	return 0, false
}

// Valid returns true if the Mode is one of the seven defined values.
func (m Mode) Valid() bool {
	_, ok := m.bank()
	return ok
}

// hasSPSR returns true if the mode has a saved program status register.
func (m Mode) hasSPSR() bool {
	return m != ModeUser && m != ModeSystem && m.Valid()
}

// Registers is the register file of the ARM7TDMI. The sixteen visible
// registers are always in the r field. Registers that are banked by the
// current mode are swapped in and out of r by switchMode().
type Registers struct {
	r [NumRegisters]uint32

	status status

	// saved program status register for each bank. the entry for the user
	// bank is never used
	spsr [numBanks]uint32

	// r13 and r14 for each bank
	banked [numBanks][2]uint32

	// r8 to r12 are banked only for FIQ mode. fiqHigh holds the FIQ copies
	// when FIQ is not the current mode; userHigh holds the copies for every
	// other mode when FIQ is the current mode
	fiqHigh  [5]uint32
	userHigh [5]uint32
}

func (r *Registers) String() string {
	s := strings.Builder{}
	for i := 0; i < NumRegisters; i++ {
		if i > 0 {
			if i%4 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString("\t")
			}
		}
		s.WriteString(fmt.Sprintf("R%-2d: %08x", i, r.r[i]))
	}
	s.WriteString("\n")
	s.WriteString(r.status.String())
	return s.String()
}

// reset the register file. all registers are zeroed and the processor is in
// supervisor mode with interrupts disabled
func (r *Registers) reset() {
	*r = Registers{}
	r.status.mode = ModeSupervisor
	r.status.irqDisable = true
	r.status.fiqDisable = true
}

// Reg returns the value of the visible register.
func (r *Registers) Reg(i int) uint32 {
	return r.r[i]
}

// SetReg sets the value of the visible register. Setting r15 with this
// function does not cause a pipeline flush.
func (r *Registers) SetReg(i int, v uint32) {
	r.r[i] = v
}

// Mode returns the current processor mode.
func (r *Registers) Mode() Mode {
	return r.status.mode
}

// RegWithMode returns the value of register i as seen by the specified mode.
// An invalid mode is treated as user mode.
func (r *Registers) RegWithMode(m Mode, i int) uint32 {
	switch {
	case i < 8 || i == rPC:
		return r.r[i]
	case i < rSP:
		if m == ModeFIQ {
			if r.status.mode == ModeFIQ {
				return r.r[i]
			}
			return r.fiqHigh[i-8]
		}
		if r.status.mode == ModeFIQ {
			return r.userHigh[i-8]
		}
		return r.r[i]
	}

	nb, _ := m.bank()
	cb, _ := r.status.mode.bank()
	if nb == cb {
		return r.r[i]
	}
	return r.banked[nb][i-rSP]
}

// SetRegWithMode sets the value of register i as seen by the specified mode.
// An invalid mode is treated as user mode.
func (r *Registers) SetRegWithMode(m Mode, i int, v uint32) {
	switch {
	case i < 8 || i == rPC:
		r.r[i] = v
		return
	case i < rSP:
		if m == ModeFIQ {
			if r.status.mode == ModeFIQ {
				r.r[i] = v
			} else {
				r.fiqHigh[i-8] = v
			}
			return
		}
		if r.status.mode == ModeFIQ {
			r.userHigh[i-8] = v
		} else {
			r.r[i] = v
		}
		return
	}

	nb, _ := m.bank()
	cb, _ := r.status.mode.bank()
	if nb == cb {
		r.r[i] = v
		return
	}
	r.banked[nb][i-rSP] = v
}

// CPSR returns the current program status register.
func (r *Registers) CPSR() uint32 {
	return r.status.pack()
}

// SetCPSR sets the current program status register, switching the register
// banks if the mode field has changed. Returns false if the mode field is not
// a valid mode, in which case the mode is left unchanged but the other fields
// are still updated. The FIQ disable bit is always set.
func (r *Registers) SetCPSR(v uint32) bool {
	r.status.unpack(v)
	return r.switchMode(Mode(v & modeMask))
}

// SPSR returns the saved program status register for the current mode. User
// and system modes do not have an SPSR and the CPSR is returned instead.
func (r *Registers) SPSR() uint32 {
	if !r.status.mode.hasSPSR() {
		return r.CPSR()
	}
	b, _ := r.status.mode.bank()
	return r.spsr[b]
}

// SetSPSR sets the saved program status register for the current mode. The
// write is ignored in user and system modes.
func (r *Registers) SetSPSR(v uint32) {
	if !r.status.mode.hasSPSR() {
		return
	}
	b, _ := r.status.mode.bank()
	r.spsr[b] = v
}

// switchMode changes the mode field of the CPSR and swaps banked registers in
// and out of the visible register file. the flags and the thumb bit are
// unchanged. returns false if the new mode is not valid
func (r *Registers) switchMode(m Mode) bool {
	nb, ok := m.bank()
	if !ok {
		return false
	}

	cur := r.status.mode
	cb, _ := cur.bank()

	if cb != nb {
		r.banked[cb][0] = r.r[rSP]
		r.banked[cb][1] = r.r[rLR]
		r.r[rSP] = r.banked[nb][0]
		r.r[rLR] = r.banked[nb][1]

		if cur == ModeFIQ {
			copy(r.fiqHigh[:], r.r[8:13])
			copy(r.r[8:13], r.userHigh[:])
		} else if m == ModeFIQ {
			copy(r.userHigh[:], r.r[8:13])
			copy(r.r[8:13], r.fiqHigh[:])
		}
	}

	r.status.mode = m
	return true
}
