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

package hardware_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/arm7tdmi"
	"github.com/jetsetilly/gopheradvance/hardware/interrupts"
	"github.com/jetsetilly/gopheradvance/hardware/lcd"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
	"github.com/jetsetilly/gopheradvance/test"
)

// cartridge containing a single branch-to-self instruction
var loopForever = []uint8{0xfe, 0xff, 0xff, 0xea}

// interrupt handler that acknowledges every interrupt and increments a
// counter at the start of IWRAM
var countingHandler = []uint32{
	0xe3a00301, // mov r0, #0x04000000
	0xe2800c02, // add r0, r0, #0x200
	0xe1d010b2, // ldrh r1, [r0, #2]
	0xe1c010b2, // strh r1, [r0, #2]
	0xe3a03403, // mov r3, #0x03000000
	0xe5932000, // ldr r2, [r3]
	0xe2822001, // add r2, r2, #1
	0xe5832000, // str r2, [r3]
	0xe12fff1e, // bx lr
}

const handlerAddress = memory.OriginIWRAM + 0x100

func prepareGBA() *hardware.GBA {
	gba := hardware.NewGBA(nil)
	gba.Quiet(true)
	gba.AttachCartridge(loopForever)
	return gba
}

func installHandler(gba *hardware.GBA) {
	for i, op := range countingHandler {
		gba.Mem.Write32(handlerAddress+uint32(i)*4, op)
	}
	gba.Mem.Write32(0x03007ffc, handlerAddress)
}

type frameCounter struct {
	frames int
	last   *lcd.Frame
}

func (fc *frameCounter) NewFrame(frame *lcd.Frame) error {
	fc.frames++
	fc.last = frame
	return nil
}

func TestSkipBIOS(t *testing.T) {
	gba := prepareGBA()
	regs := gba.CPU.Registers()

	test.ExpectEquality(t, gba.CPU.PC(), memory.OriginROM)
	test.ExpectEquality(t, regs.Mode(), arm7tdmi.ModeSystem)
	test.ExpectEquality(t, regs.Reg(13), 0x03007f00)
	test.ExpectEquality(t, regs.RegWithMode(arm7tdmi.ModeIRQ, 13), 0x03007fa0)
	test.ExpectEquality(t, regs.RegWithMode(arm7tdmi.ModeSupervisor, 13), 0x03007fe0)
	test.ExpectEquality(t, gba.Mem.IO.Get16(ioreg.KEYINPUT), 0x03ff)
}

func TestFrame(t *testing.T) {
	gba := prepareGBA()

	var fc frameCounter
	gba.AddFrameRenderer(&fc)

	err := gba.RunFrame()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, gba.FrameNum(), 1)
	test.ExpectEquality(t, fc.frames, 1)
	test.ExpectEquality(t, fc.last, gba.Frame())
	test.ExpectSuccess(t, gba.Clock.Cycles >= hardware.CyclesFrame)

	// the frame ends during horizontal blank of the last line. vertical blank
	// has been cleared
	test.ExpectEquality(t, gba.Mem.IO.Get16(ioreg.VCOUNT), hardware.TotalLines-1)
	stat := gba.Mem.IO.Get16(ioreg.DISPSTAT)
	test.ExpectEquality(t, stat&0x0001, 0)
	test.ExpectEquality(t, stat&0x0002, 0x0002)

	// the processor is still in the loop
	test.ExpectEquality(t, gba.CPU.PC(), memory.OriginROM)
}

func TestRunForFrameCount(t *testing.T) {
	gba := prepareGBA()

	var frames []int
	err := gba.RunForFrameCount(3, func(frame int) (bool, error) {
		frames = append(frames, frame)
		return true, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gba.FrameNum(), 3)
	test.ExpectEquality(t, len(frames), 3)
	test.ExpectEquality(t, frames[2], 3)

	// continue check can end the run early
	err = gba.RunForFrameCount(10, func(frame int) (bool, error) {
		return frame < 5, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gba.FrameNum(), 5)
}

func TestRunExit(t *testing.T) {
	gba := prepareGBA()

	err := gba.Run(func() (bool, error) {
		if gba.FrameNum() == 2 {
			gba.Exit()
		}
		return true, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gba.FrameNum(), 2)
}

func TestVBlankInterrupt(t *testing.T) {
	gba := prepareGBA()
	installHandler(gba)

	io := &gba.Mem.IO
	io.Write16(ioreg.DISPSTAT, 0x0008)
	io.Write16(ioreg.IE, uint16(interrupts.VBlank))
	io.Write16(ioreg.IME, 0x0001)

	err := gba.RunForFrameCount(3, nil)
	test.DemandSuccess(t, err)

	// handler has been called once per frame and each interrupt has been
	// acknowledged
	test.ExpectEquality(t, gba.Mem.Read32(memory.OriginIWRAM), 3)
	test.ExpectEquality(t, io.Get16(ioreg.IF), 0)

	// processor has returned to the main loop
	test.ExpectEquality(t, gba.CPU.Registers().Mode(), arm7tdmi.ModeSystem)
}

func TestVCountInterrupt(t *testing.T) {
	gba := prepareGBA()
	io := &gba.Mem.IO

	// VCount interrupt on line 100. interrupts are not enabled so the request
	// remains in IF
	io.Write16(ioreg.DISPSTAT, 100<<8|0x0020)
	err := gba.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, io.Get16(ioreg.IF), uint16(interrupts.VCount))

	// the VCount flag is cleared when the line does not match
	test.ExpectEquality(t, io.Get16(ioreg.DISPSTAT)&0x0004, 0)
}

func TestHalt(t *testing.T) {
	gba := prepareGBA()
	io := &gba.Mem.IO

	// halted with no interrupts enabled. the processor does not run
	io.Write8(ioreg.HALTCNT, 0x00)
	err := gba.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, io.Halted())
	test.ExpectSuccess(t, gba.Clock.Cycles >= hardware.CyclesFrame)

	// an enabled interrupt wakes the processor even if IME is clear
	io.Write16(ioreg.DISPSTAT, 0x0008)
	io.Write16(ioreg.IE, uint16(interrupts.VBlank))
	err = gba.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, io.Halted())
}

func TestBitmapFrame(t *testing.T) {
	gba := prepareGBA()

	gba.Mem.IO.Write16(ioreg.DISPCNT, 0x0403)
	binary.LittleEndian.PutUint16(gba.Mem.VRAM[(10*lcd.Width+20)*2:], 0x001f)

	err := gba.RunFrame()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, gba.Frame()[10][20], lcd.RGB{255, 0, 0})
	test.ExpectEquality(t, gba.Frame()[10][21], lcd.RGB{0, 0, 0})
}

func TestExecutionError(t *testing.T) {
	gba := hardware.NewGBA(nil)
	gba.Quiet(true)

	// no cartridge. execution from the cartridge area is not possible
	err := gba.RunFrame()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.FatalError))
	test.ExpectSuccess(t, curated.Has(err, arm7tdmi.ExecutionError))
}
