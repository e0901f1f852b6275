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

package arm7tdmi_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/clocks"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/arm7tdmi"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/test"
)

// flat memory for testing. the address is masked to the size of the memory.
// addresses at or above limit are not executable
type testMemory struct {
	data    []byte
	limit   uint32
	pending bool
}

func (mem *testMemory) idx(addr uint32) uint32 {
	return addr & uint32(len(mem.data)-1)
}

func (mem *testMemory) Read8(addr uint32) uint8 {
	return mem.data[mem.idx(addr)]
}

func (mem *testMemory) Read16(addr uint32) uint16 {
	return binary.LittleEndian.Uint16(mem.data[mem.idx(addr):])
}

func (mem *testMemory) Read32(addr uint32) uint32 {
	return binary.LittleEndian.Uint32(mem.data[mem.idx(addr):])
}

func (mem *testMemory) Write8(addr uint32, data uint8) {
	mem.data[mem.idx(addr)] = data
}

func (mem *testMemory) Write16(addr uint32, data uint16) {
	binary.LittleEndian.PutUint16(mem.data[mem.idx(addr):], data)
}

func (mem *testMemory) Write32(addr uint32, data uint32) {
	binary.LittleEndian.PutUint32(mem.data[mem.idx(addr):], data)
}

func (mem *testMemory) Prefetch16(addr uint32) uint16 {
	return mem.Read16(addr)
}

func (mem *testMemory) Prefetch32(addr uint32) uint32 {
	return mem.Read32(addr)
}

func (mem *testMemory) IsExecutable(addr uint32) bool {
	return addr < mem.limit
}

func (mem *testMemory) InterruptPending() bool {
	return mem.pending
}

// put a sequence of ARM instructions into memory
func (mem *testMemory) arm(addr uint32, opcodes ...uint32) {
	for _, op := range opcodes {
		mem.Write32(addr, op)
		addr += 4
	}
}

// put a sequence of thumb instructions into memory
func (mem *testMemory) thumb(addr uint32, opcodes ...uint16) {
	for _, op := range opcodes {
		mem.Write16(addr, op)
		addr += 2
	}
}

func prepareTestARM(t *testing.T) (*arm7tdmi.ARM, *testMemory) {
	t.Helper()
	mem := &testMemory{
		data:  make([]byte, 0x10000),
		limit: 0x8000,
	}
	arm := arm7tdmi.NewARM(logger.Allow, mem, &clocks.Clock{})

	// start every test in system mode with interrupts enabled
	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeSystem))
	return arm, mem
}

func step(t *testing.T, arm *arm7tdmi.ARM, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, arm.Step())
	}
}

const (
	flagN = 1 << 31
	flagZ = 1 << 30
	flagC = 1 << 29
	flagV = 1 << 28
	flagI = 1 << 7
	flagF = 1 << 6
	flagT = 1 << 5
)

func flags(arm *arm7tdmi.ARM) uint32 {
	return arm.Registers().CPSR() & (flagN | flagZ | flagC | flagV)
}

func TestReset(t *testing.T) {
	arm, _ := prepareTestARM(t)
	arm.Reset()
	test.ExpectEquality(t, arm.PC(), 0)
	test.ExpectEquality(t, arm.Registers().Mode(), arm7tdmi.ModeSupervisor)
	test.ExpectEquality(t, arm.Registers().CPSR()&(flagI|flagF|flagT), flagI|flagF)
}

func TestSkipBIOS(t *testing.T) {
	arm, _ := prepareTestARM(t)
	arm.SkipBIOS(0x08000000)
	r := arm.Registers()
	test.ExpectEquality(t, arm.PC(), 0x08000000)
	test.ExpectEquality(t, r.Mode(), arm7tdmi.ModeSystem)
	test.ExpectEquality(t, r.Reg(13), 0x03007f00)
	test.ExpectEquality(t, r.RegWithMode(arm7tdmi.ModeIRQ, 13), 0x03007fa0)
	test.ExpectEquality(t, r.RegWithMode(arm7tdmi.ModeSupervisor, 13), 0x03007fe0)
	test.ExpectEquality(t, r.CPSR()&flagF, flagF)
}

// ADDS r0, r1, r2 with r1 = 0x7fffffff and r2 = 1
func TestADDSOverflow(t *testing.T) {
	arm, mem := prepareTestARM(t)
	mem.arm(0x100, 0xe0910002)
	arm.SetPC(0x100)
	arm.Registers().SetReg(1, 0x7fffffff)
	arm.Registers().SetReg(2, 1)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(0), 0x80000000)
	test.ExpectEquality(t, flags(arm), flagN|flagV)
	test.ExpectEquality(t, arm.PC(), 0x104)
}

// thumb LSL r0, r1, #0 with r1 = 0xdeadbeef and the carry flag clear
func TestThumbLSLZero(t *testing.T) {
	arm, mem := prepareTestARM(t)
	mem.thumb(0x100, 0x0008)
	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeSystem) | flagT)
	arm.SetPC(0x100)
	arm.Registers().SetReg(1, 0xdeadbeef)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(0), 0xdeadbeef)
	test.ExpectEquality(t, flags(arm), flagN)
	test.ExpectEquality(t, arm.PC(), 0x102)

	// carry is preserved when set
	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeSystem) | flagT | flagC)
	arm.SetPC(0x100)
	step(t, arm, 1)
	test.ExpectEquality(t, flags(arm), flagN|flagC)
}

// BX r0 with r0 = 0x08000101
func TestBranchExchange(t *testing.T) {
	arm, mem := prepareTestARM(t)
	mem.arm(0x100, 0xe12fff10)
	arm.SetPC(0x100)
	arm.Registers().SetReg(0, 0x08000101)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x08000100)
	test.ExpectSuccess(t, arm.Thumb())
	test.ExpectEquality(t, arm.Registers().CPSR()&flagT, flagT)
}

func TestDataProcessingFlags(t *testing.T) {
	type dp struct {
		name   string
		opcode uint32
		r1, r2 uint32
		carry  bool
		r0     uint32
		flags  uint32
	}

	tests := []dp{
		// SUBS r0, r1, r2
		{"SUBS no borrow", 0xe0510002, 5, 3, false, 2, flagC},
		{"SUBS borrow", 0xe0510002, 3, 5, false, 0xfffffffe, flagN},
		{"SUBS zero", 0xe0510002, 3, 3, false, 0, flagZ | flagC},
		// ANDS r0, r1, r2, LSL #1 (carry from the shifter)
		{"ANDS shifter carry", 0xe0110082, 0xffffffff, 0x80000001, false, 2, flagC},
		// MOVS r0, r1, LSR #32
		{"MOVS LSR #32", 0xe1b00021, 0x80000000, 0, false, 0, flagZ | flagC},
		// MOVS r0, r1, RRX
		{"MOVS RRX", 0xe1b00061, 0x00000001, 0, true, 0x80000000, flagN | flagC},
		// ADCS r0, r1, r2
		{"ADCS carry in", 0xe0b10002, 1, 1, true, 3, 0},
		// RSBS r0, r1, r2
		{"RSBS", 0xe0710002, 3, 5, false, 2, flagC},
		// MVNS r0, r2
		{"MVNS", 0xe1f00002, 0, 0, false, 0xffffffff, flagN},
		// EORS r0, r1, r2
		{"EORS zero", 0xe0310002, 0x55, 0x55, false, 0, flagZ},
		// ORR r0, r1, r2 without S leaves flags alone
		{"ORR", 0xe1810002, 0xf0, 0x0f, true, 0xff, flagC},
		// BICS r0, r1, #0xff
		{"BICS", 0xe3d100ff, 0x1ff, 0, false, 0x100, 0},
	}

	for _, d := range tests {
		arm, mem := prepareTestARM(t)
		mem.arm(0x100, d.opcode)
		cpsr := uint32(arm7tdmi.ModeSystem)
		if d.carry {
			cpsr |= flagC
		}
		arm.Registers().SetCPSR(cpsr)
		arm.SetPC(0x100)
		arm.Registers().SetReg(1, d.r1)
		arm.Registers().SetReg(2, d.r2)

		step(t, arm, 1)
		test.ExpectEquality(t, arm.Registers().Reg(0), d.r0, d.name)
		test.ExpectEquality(t, flags(arm), d.flags, d.name)
	}
}

func TestCompareFlags(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// CMP r1, r2; CMN r1, r2; TST r1, r2; TEQ r1, r2
	mem.arm(0x100, 0xe1510002, 0xe1710002, 0xe1110002, 0xe1310002)
	arm.SetPC(0x100)
	arm.Registers().SetReg(0, 0x1234)
	arm.Registers().SetReg(1, 0x80000000)
	arm.Registers().SetReg(2, 0x80000000)

	step(t, arm, 1)
	test.ExpectEquality(t, flags(arm), flagZ|flagC)
	step(t, arm, 1)
	test.ExpectEquality(t, flags(arm), flagZ|flagC|flagV)
	step(t, arm, 1)
	test.ExpectEquality(t, flags(arm)&(flagN|flagZ), flagN)
	step(t, arm, 1)
	test.ExpectEquality(t, flags(arm)&(flagN|flagZ), flagZ)

	// destination register is never written by the compare instructions
	test.ExpectEquality(t, arm.Registers().Reg(0), 0x1234)
}

func TestConditionalExecution(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// MOVEQ r0, #1; MOVNE r0, #2
	mem.arm(0x100, 0x03a00001, 0x13a00002)
	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeSystem) | flagZ)
	arm.SetPC(0x100)

	step(t, arm, 2)
	test.ExpectEquality(t, arm.Registers().Reg(0), 1)
	test.ExpectEquality(t, arm.PC(), 0x108)
}

func TestPCAccounting(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// ADD r0, pc, #0
	// ADD r1, pc, r2, LSL r3
	// STR pc, [r4]
	mem.arm(0x100, 0xe28f0000, 0xe08f1312, 0xe584f000)
	arm.SetPC(0x100)
	arm.Registers().SetReg(2, 0)
	arm.Registers().SetReg(3, 0)
	arm.Registers().SetReg(4, 0x4000)

	step(t, arm, 3)
	test.ExpectEquality(t, arm.Registers().Reg(0), 0x108)
	test.ExpectEquality(t, arm.Registers().Reg(1), 0x110)
	test.ExpectEquality(t, mem.Read32(0x4000), 0x114)
}

func TestBranch(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// BL +8 (to 0x110)
	mem.arm(0x100, 0xeb000002)
	// B -8 (to 0x110 + 8 - 8 = 0x110)
	mem.arm(0x110, 0xeafffffe)
	arm.SetPC(0x100)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x110)
	test.ExpectEquality(t, arm.Registers().Reg(14), 0x104)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x110)
}

func TestLoadStore(t *testing.T) {
	arm, mem := prepareTestARM(t)

	mem.Write32(0x4000, 0x11223344)

	// LDR r0, [r1, #1]
	// LDRB r2, [r1, #2]!
	// STRH r0, [r3], #2
	// LDRSH r4, [r5]
	// LDRSB r6, [r5]
	mem.arm(0x100, 0xe5910001, 0xe5f12002, 0xe0c300b2, 0xe1d540f0, 0xe1d560d0)
	arm.SetPC(0x100)
	arm.Registers().SetReg(1, 0x4000)
	arm.Registers().SetReg(3, 0x5000)
	arm.Registers().SetReg(5, 0x4002)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(0), 0x44112233)
	test.ExpectEquality(t, arm.Registers().Reg(1), 0x4000)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(2), 0x22)
	test.ExpectEquality(t, arm.Registers().Reg(1), 0x4002)

	step(t, arm, 1)
	test.ExpectEquality(t, mem.Read16(0x5000), 0x2233)
	test.ExpectEquality(t, arm.Registers().Reg(3), 0x5002)

	mem.Write16(0x4002, 0x8001)
	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(4), 0xffff8001)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(6), 0x00000001)
}

func TestMultiply(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// MULS r0, r1, r2
	// MLA r3, r1, r2, r4
	// SMULL r5, r6, r1, r7
	// UMULL r8, r9, r1, r7
	mem.arm(0x100, 0xe0100291, 0xe0234291, 0xe0c65791, 0xe0898791)
	arm.SetPC(0x100)
	arm.Registers().SetReg(1, 0xfffffffe)
	arm.Registers().SetReg(2, 3)
	arm.Registers().SetReg(4, 10)
	arm.Registers().SetReg(7, 2)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(0), 0xfffffffa)
	test.ExpectEquality(t, flags(arm)&(flagN|flagZ), flagN)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(3), 4)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(5), 0xfffffffc)
	test.ExpectEquality(t, arm.Registers().Reg(6), 0xffffffff)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(8), 0xfffffffc)
	test.ExpectEquality(t, arm.Registers().Reg(9), 0x00000001)
}

func TestSWIRoundTrip(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// MOVS pc, lr at the SWI vector
	mem.arm(0x08, 0xe1b0f00e)
	mem.arm(0x100, 0xef000000)

	cpsr := uint32(arm7tdmi.ModeSystem) | flagC | flagZ
	arm.Registers().SetCPSR(cpsr)
	arm.SetPC(0x100)
	cpsr = arm.Registers().CPSR()

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x08)
	test.ExpectEquality(t, arm.Registers().Mode(), arm7tdmi.ModeSupervisor)
	test.ExpectEquality(t, arm.Registers().Reg(14), 0x104)
	test.ExpectEquality(t, arm.Registers().SPSR(), cpsr)
	test.ExpectEquality(t, arm.Registers().CPSR()&flagI, flagI)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x104)
	test.ExpectEquality(t, arm.Registers().CPSR(), cpsr)
}

func TestThumbSWIRoundTrip(t *testing.T) {
	arm, mem := prepareTestARM(t)

	mem.arm(0x08, 0xe1b0f00e)
	mem.thumb(0x100, 0xdf00)

	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeSystem) | flagT)
	arm.SetPC(0x100)
	cpsr := arm.Registers().CPSR()

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x08)
	test.ExpectFailure(t, arm.Thumb())
	test.ExpectEquality(t, arm.Registers().Reg(14), 0x102)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x102)
	test.ExpectSuccess(t, arm.Thumb())
	test.ExpectEquality(t, arm.Registers().CPSR(), cpsr)
}

func TestIRQRoundTrip(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// SUBS pc, lr, #4 at the IRQ vector
	mem.arm(0x18, 0xe25ef004)
	// MOV r0, #1; MOV r0, #2
	mem.arm(0x100, 0xe3a00001, 0xe3a00002)
	arm.SetPC(0x100)
	cpsr := arm.Registers().CPSR()

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x104)

	// interrupt is taken before the next instruction. the instruction at the
	// vector is executed in the same step
	mem.pending = true
	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x104)
	test.ExpectEquality(t, arm.Registers().CPSR(), cpsr)
	test.ExpectEquality(t, arm.Registers().Reg(0), 1)

	mem.pending = false
	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(0), 2)
}

func TestIRQMasked(t *testing.T) {
	arm, mem := prepareTestARM(t)
	mem.arm(0x100, 0xe3a00001)
	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeSystem) | flagI)
	arm.SetPC(0x100)
	mem.pending = true

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x104)
	test.ExpectEquality(t, arm.Registers().Mode(), arm7tdmi.ModeSystem)
}

func TestUndefined(t *testing.T) {
	arm, mem := prepareTestARM(t)
	mem.arm(0x100, 0xe7f000f0)
	arm.SetPC(0x100)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x04)
	test.ExpectEquality(t, arm.Registers().Mode(), arm7tdmi.ModeUndefined)
	test.ExpectEquality(t, arm.Registers().Reg(14), 0x104)
}

func TestPushPopRoundTrip(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// STMFD sp!, {r0-r12, lr}
	// LDMFD sp!, {r0-r12, lr}
	mem.arm(0x100, 0xe92d5fff, 0xe8bd5fff)
	arm.SetPC(0x100)

	r := arm.Registers()
	for i := 0; i < 15; i++ {
		r.SetReg(i, 0x1000+uint32(i))
	}
	r.SetReg(13, 0x7000)
	var before [16]uint32
	for i := range before {
		before[i] = r.Reg(i)
	}

	step(t, arm, 1)
	test.ExpectEquality(t, r.Reg(13), 0x7000-14*4)

	for i := 0; i < 13; i++ {
		r.SetReg(i, 0)
	}
	r.SetReg(14, 0)

	step(t, arm, 1)
	for i := 0; i < 15; i++ {
		test.ExpectEquality(t, r.Reg(i), before[i], i)
	}
}

func TestThumbPushPopRoundTrip(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// PUSH {r0-r7, lr}
	// POP {r0-r7}
	mem.thumb(0x100, 0xb5ff, 0xbcff)
	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeSystem) | flagT)
	arm.SetPC(0x100)

	r := arm.Registers()
	for i := 0; i < 8; i++ {
		r.SetReg(i, 0x2000+uint32(i))
	}
	r.SetReg(13, 0x7000)
	r.SetReg(14, 0x301)

	step(t, arm, 1)
	test.ExpectEquality(t, r.Reg(13), 0x7000-9*4)
	test.ExpectEquality(t, mem.Read32(0x7000-4), 0x301)

	for i := 0; i < 8; i++ {
		r.SetReg(i, 0)
	}

	step(t, arm, 1)
	for i := 0; i < 8; i++ {
		test.ExpectEquality(t, r.Reg(i), 0x2000+uint32(i), i)
	}
	test.ExpectEquality(t, r.Reg(13), 0x7000-4)
}

func TestBlockTransferUserBank(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// STMIA r0, {r13, r14}^
	mem.arm(0x100, 0xe8c06000)

	r := arm.Registers()
	r.SetReg(13, 0x1111)
	r.SetReg(14, 0x2222)
	r.SetCPSR(uint32(arm7tdmi.ModeIRQ))
	r.SetReg(13, 0x3333)
	r.SetReg(0, 0x4000)
	arm.SetPC(0x100)

	step(t, arm, 1)
	test.ExpectEquality(t, mem.Read32(0x4000), 0x1111)
	test.ExpectEquality(t, mem.Read32(0x4004), 0x2222)
}

func TestThumbLongBranchWithLink(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// BL to 0x208
	mem.thumb(0x200, 0xf000, 0xf802)
	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeSystem) | flagT)
	arm.SetPC(0x200)

	step(t, arm, 2)
	test.ExpectEquality(t, arm.PC(), 0x208)
	test.ExpectEquality(t, arm.Registers().Reg(14), 0x205)
}

func TestThumbInstructions(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// MOV r0, #0x40          2040
	// ADD r1, r0, #3         1cc1
	// SUB r2, r1, r0         1a0a
	// CMP r2, #3             2a03
	// BEQ +2 (skip next)     d000
	// MOV r3, #1             2301
	// LDR r4, [pc, #4]       4c01
	// ADD r5, sp, #8         ad02
	// NEG r6, r0             4246
	mem.thumb(0x100, 0x2040, 0x1cc1, 0x1a0a, 0x2a03, 0xd000, 0x2301, 0x4c01, 0xad02, 0x4246)
	mem.Write32(0x114, 0xcafef00d)

	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeSystem) | flagT)
	arm.SetPC(0x100)
	arm.Registers().SetReg(13, 0x7000)

	step(t, arm, 4)
	test.ExpectEquality(t, arm.Registers().Reg(1), 0x43)
	test.ExpectEquality(t, arm.Registers().Reg(2), 3)
	test.ExpectEquality(t, flags(arm), flagZ|flagC)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x10c)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Reg(4), 0xcafef00d)
	test.ExpectEquality(t, arm.Registers().Reg(3), 0)

	step(t, arm, 2)
	test.ExpectEquality(t, arm.Registers().Reg(5), 0x7008)
	test.ExpectEquality(t, arm.Registers().Reg(6), 0xffffffc0)
}

func TestThumbBranchExchange(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// BX r0 to ARM state
	mem.thumb(0x100, 0x4700)
	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeSystem) | flagT)
	arm.SetPC(0x100)
	arm.Registers().SetReg(0, 0x200)

	step(t, arm, 1)
	test.ExpectEquality(t, arm.PC(), 0x200)
	test.ExpectFailure(t, arm.Thumb())
}

func TestMSR(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// MSR CPSR_fc, r0
	// MRS r1, CPSR
	mem.arm(0x100, 0xe129f000, 0xe10f1000)
	arm.SetPC(0x100)

	// attempt to set thumb and clear F at the same time as changing mode
	arm.Registers().SetReg(0, 0xf0000000|uint32(arm7tdmi.ModeIRQ)|flagT)

	step(t, arm, 2)
	test.ExpectEquality(t, arm.Registers().Mode(), arm7tdmi.ModeIRQ)
	test.ExpectFailure(t, arm.Thumb())
	test.ExpectEquality(t, arm.Registers().Reg(1), 0xf0000000|uint32(arm7tdmi.ModeIRQ)|flagF)
}

func TestMSRUserMode(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// MSR CPSR_fc, r0
	mem.arm(0x100, 0xe129f000)
	arm.Registers().SetCPSR(uint32(arm7tdmi.ModeUser))
	arm.SetPC(0x100)
	arm.Registers().SetReg(0, 0x80000000|uint32(arm7tdmi.ModeSupervisor))

	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().Mode(), arm7tdmi.ModeUser)
	test.ExpectEquality(t, flags(arm), flagN)
}

func TestExecutionError(t *testing.T) {
	arm, _ := prepareTestARM(t)
	arm.SetPC(0x9000)
	err := arm.Step()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, arm7tdmi.ExecutionError))
}

func TestFIQDisableInvariant(t *testing.T) {
	arm, mem := prepareTestARM(t)

	// MSR CPSR_c, #0x1f (attempt to clear F)
	mem.arm(0x100, 0xe321f01f)
	arm.SetPC(0x100)
	step(t, arm, 1)
	test.ExpectEquality(t, arm.Registers().CPSR()&flagF, flagF)
}
