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

// the seven exceptions of the ARM7TDMI
type exception int

const (
	exceptionReset exception = iota
	exceptionUndefined
	exceptionSWI
	exceptionPrefetchAbort
	exceptionDataAbort
	exceptionIRQ
	exceptionFIQ
)

// vector address and mode for each exception. from "2.8 Exceptions" of the
// ARM7TDMI data sheet. address 0x14 is reserved.
var exceptionVectors = [...]struct {
	address uint32
	mode    Mode
}{
	exceptionReset:         {address: 0x00, mode: ModeSupervisor},
	exceptionUndefined:     {address: 0x04, mode: ModeUndefined},
	exceptionSWI:           {address: 0x08, mode: ModeSupervisor},
	exceptionPrefetchAbort: {address: 0x0c, mode: ModeAbort},
	exceptionDataAbort:     {address: 0x10, mode: ModeAbort},
	exceptionIRQ:           {address: 0x18, mode: ModeIRQ},
	exceptionFIQ:           {address: 0x1c, mode: ModeFIQ},
}

// take exception. the return address is written to the link register of the
// exception mode. it is the responsibility of the caller to calculate the
// correct return address for the exception:
//
//	SWI and undefined: the instruction following the exception
//	IRQ: the next instruction to be executed plus 4
//
// the link register is not written for the reset exception.
//
// "When handling an exception, the ARM7TDMI:
//
//  1. Preserves the address of the next instruction in the appropriate Link
//     Register.
//  2. Copies the CPSR into the appropriate SPSR
//  3. Forces the CPSR mode bits to a value which depends on the exception
//  4. Forces the PC to fetch the next instruction from the relevant exception
//     vector
//
// It may also set the interrupt disable flags to prevent otherwise
// unmanageable nestings of exceptions."
func (arm *ARM) exception(ex exception, returnAddress uint32) {
	v := exceptionVectors[ex]

	cpsr := arm.regs.CPSR()
	arm.regs.switchMode(v.mode)
	arm.regs.SetSPSR(cpsr)

	if ex != exceptionReset {
		arm.regs.r[rLR] = returnAddress
	}

	arm.regs.status.irqDisable = true
	arm.regs.status.fiqDisable = true
	arm.regs.status.thumb = false

	arm.branchTo(v.address)
}
