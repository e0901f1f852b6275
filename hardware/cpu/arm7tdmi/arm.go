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

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/clocks"
	"github.com/jetsetilly/gopheradvance/logger"
)

// ExecutionError is returned by Step() when the program counter points to a
// region of memory that can not contain instructions. This is always a fatal
// error for the emulation.
const ExecutionError = "arm7tdmi: cannot execute from %08x"

// ARM implements the ARM7TDMI processor.
type ARM struct {
	env logger.Permission
	mem Memory
	clk *clocks.Clock

	regs Registers

	// address of the instruction currently being executed
	executingPC uint32

	// set whenever an instruction writes to the program counter. the
	// pipeline is flushed and the next instruction is fetched from the new
	// address rather than from the address following executingPC
	branched bool
}

// NewARM is the preferred method of initialisation for the ARM type.
func NewARM(env logger.Permission, mem Memory, clk *clocks.Clock) *ARM {
	arm := &ARM{
		env: env,
		mem: mem,
		clk: clk,
	}
	arm.Reset()
	return arm
}

func (arm *ARM) String() string {
	return arm.regs.String()
}

// Reset the processor. The reset exception is taken: the processor enters
// supervisor mode in ARM state, with interrupts disabled, and the program
// counter is set to the reset vector.
func (arm *ARM) Reset() {
	arm.regs.reset()
	arm.exception(exceptionReset, 0)
}

// SkipBIOS prepares the processor as it would be after the BIOS has finished
// the boot sequence, so that a cartridge can be run without a BIOS image.
// The processor is put into system mode and the stack pointers for the user,
// IRQ and supervisor banks are initialised.
func (arm *ARM) SkipBIOS(entry uint32) {
	arm.regs.reset()
	arm.regs.status.irqDisable = false

	arm.regs.SetRegWithMode(ModeSupervisor, rSP, 0x03007fe0)
	arm.regs.SetRegWithMode(ModeIRQ, rSP, 0x03007fa0)
	arm.regs.switchMode(ModeSystem)
	arm.regs.r[rSP] = 0x03007f00
	arm.regs.r[rPC] = entry
}

// Registers returns a pointer to the register file. The register file can be
// changed through the pointer but changes to the program counter should be
// made with SetPC().
func (arm *ARM) Registers() *Registers {
	return &arm.regs
}

// PC returns the address of the next instruction to be executed.
func (arm *ARM) PC() uint32 {
	return arm.regs.r[rPC]
}

// SetPC sets the address of the next instruction to be executed. The address
// is aligned according to the current processor state.
func (arm *ARM) SetPC(addr uint32) {
	if arm.regs.status.thumb {
		arm.regs.r[rPC] = addr &^ 0x01
	} else {
		arm.regs.r[rPC] = addr &^ 0x03
	}
}

// Thumb returns true if the processor is in Thumb state.
func (arm *ARM) Thumb() bool {
	return arm.regs.status.thumb
}

// Step executes a single instruction. If an interrupt is pending, and
// interrupts are not masked, then the interrupt is taken before the next
// instruction is executed.
//
// The only error returned is the ExecutionError.
func (arm *ARM) Step() error {
	if !arm.regs.status.irqDisable && arm.mem.InterruptPending() {
		arm.exception(exceptionIRQ, arm.regs.r[rPC]+4)
	}

	pc := arm.regs.r[rPC]
	if !arm.mem.IsExecutable(pc) {
		return curated.Errorf(ExecutionError, pc)
	}

	arm.executingPC = pc
	arm.branched = false

	if arm.regs.status.thumb {
		opcode := arm.mem.Prefetch16(pc)
		arm.regs.r[rPC] = pc + 4
		thumbTable[opcode>>8](arm, opcode)
		if !arm.branched {
			arm.regs.r[rPC] = pc + 2
		}
		return nil
	}

	opcode := arm.mem.Prefetch32(pc)
	arm.regs.r[rPC] = pc + 8
	if arm.regs.status.condition(opcode >> 28) {
		armTable[((opcode>>16)&0xff0)|((opcode>>4)&0x0f)](arm, opcode)
	}
	if !arm.branched {
		arm.regs.r[rPC] = pc + 4
	}

	return nil
}

// branch to the address. the address is aligned according to the current
// processor state
func (arm *ARM) branchTo(addr uint32) {
	arm.SetPC(addr)
	arm.branched = true

	// refilling the pipeline costs two fetches. the memory implementation
	// accounts for the fetch of the instruction at the new address so only
	// one additional cycle is added here
	arm.internal(1)
}

// write to register. writes to the program counter are a branch
func (arm *ARM) writeRegister(reg uint32, v uint32) {
	if reg == rPC {
		arm.branchTo(v)
		return
	}
	arm.regs.r[reg] = v
}

// copy the SPSR of the current mode into the CPSR. used by data processing
// instructions with the S bit set and the PC as the destination and by LDM
// with the S bit set and the PC in the register list. this is how exception
// handlers return
func (arm *ARM) restoreCPSR() {
	if !arm.regs.status.mode.hasSPSR() {
		logger.Logf(arm.env, "ARM7", "no SPSR in %s mode (%08x)", arm.regs.status.mode, arm.executingPC)
		return
	}
	arm.setCPSR(arm.regs.SPSR())
}

// set CPSR and log if the mode field is not valid
func (arm *ARM) setCPSR(v uint32) {
	if !arm.regs.SetCPSR(v) {
		logger.Logf(arm.env, "ARM7", "invalid mode (%02x) at %08x", v&modeMask, arm.executingPC)
	}
}

// internal cycles. the "I" cycles of the ARM7TDMI data sheet
func (arm *ARM) internal(n uint32) {
	arm.clk.Add(n)
}

// the address of the instruction following the one being executed
func (arm *ARM) nextInstruction() uint32 {
	if arm.regs.status.thumb {
		return arm.executingPC + 2
	}
	return arm.executingPC + 4
}

func (arm *ARM) undefined(opcode uint32) {
	if arm.regs.status.thumb {
		logger.Logf(arm.env, "ARM7", "undefined thumb instruction (%04x) at %08x", opcode, arm.executingPC)
	} else {
		logger.Logf(arm.env, "ARM7", "undefined instruction (%08x) at %08x", opcode, arm.executingPC)
	}
	arm.exception(exceptionUndefined, arm.nextInstruction())
}

// Summary returns a one line summary of the processor state.
func (arm *ARM) Summary() string {
	return fmt.Sprintf("PC=%08x %s", arm.regs.r[rPC], arm.regs.status.String())
}
