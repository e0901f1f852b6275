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

package hardware

import (
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/dma"
	"github.com/jetsetilly/gopheradvance/hardware/interrupts"
	"github.com/jetsetilly/gopheradvance/hardware/lcd"
	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
)

// Scanline timings in CPU cycles.
const (
	CyclesHDraw  = 960
	CyclesHBlank = 272
	CyclesLine   = CyclesHDraw + CyclesHBlank

	// the first line of vertical blank. lines before this are visible
	VBlankLine = lcd.Height

	// number of scanlines in a frame including vertical blank
	TotalLines = 228

	CyclesFrame = CyclesLine * TotalLines
)

// ClockSpeed is the number of CPU cycles per second.
const ClockSpeed = 16777216

// RefreshRate is the number of frames per second produced by the hardware.
const RefreshRate = float64(ClockSpeed) / CyclesFrame

// status bits in DISPSTAT
const (
	statVBlank    = 0x0001
	statHBlank    = 0x0002
	statVCount    = 0x0004
	statVBlankIRQ = 0x0008
	statHBlankIRQ = 0x0010
	statVCountIRQ = 0x0020
)

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called at the end of every frame and should return false when
// the emulation should stop. The emulation also stops if Exit() is called.
func (gba *GBA) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	gba.exit.Store(false)

	for !gba.exit.Load() {
		if err := gba.RunFrame(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. Useful for FPS and regression tests. The continueCheck function is
// called at the end of every frame with the number of the completed frame.
func (gba *GBA) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (bool, error) { return true, nil }
	}

	gba.exit.Store(false)

	targetFrame := gba.frameNum + numFrames
	for gba.frameNum != targetFrame && !gba.exit.Load() {
		if err := gba.RunFrame(); err != nil {
			return err
		}

		cont, err := continueCheck(gba.frameNum)
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}

	return nil
}

// RunFrame runs the emulation for a single frame. On completion the frame is
// sent to every FrameRenderer.
func (gba *GBA) RunFrame() error {
	// the keypad interrupt condition is level sensitive
	gba.Keypad.Check()

	for y := 0; y < TotalLines; y++ {
		if err := gba.runLine(y); err != nil {
			return curated.Errorf(FatalError, err)
		}
	}

	gba.frameNum++

	for _, r := range gba.renderers {
		if err := r.NewFrame(&gba.LCD.Frame); err != nil {
			return curated.Errorf(FatalError, err)
		}
	}

	return nil
}

// set or clear bits in DISPSTAT without going through the CPU write mask
func (gba *GBA) dispstat(set uint16, unset uint16) uint16 {
	io := &gba.Mem.IO
	v := (io.Get16(ioreg.DISPSTAT) | set) &^ unset
	io.Set16(ioreg.DISPSTAT, v)
	return v
}

func (gba *GBA) runLine(y int) error {
	io := &gba.Mem.IO

	io.Set16(ioreg.VCOUNT, uint16(y))
	stat := io.Get16(ioreg.DISPSTAT)
	if int(stat>>8) == y {
		stat = gba.dispstat(statVCount, 0)
		if stat&statVCountIRQ == statVCountIRQ {
			interrupts.Request(io, interrupts.VCount)
		}
	} else {
		stat = gba.dispstat(0, statVCount)
	}

	switch y {
	case VBlankLine:
		stat = gba.dispstat(statVBlank, 0)
		if stat&statVBlankIRQ == statVBlankIRQ {
			interrupts.Request(io, interrupts.VBlank)
		}
		gba.DMA.Trigger(dma.VBlank)
		gba.LCD.LatchAffine()
	case TotalLines - 1:
		gba.dispstat(0, statVBlank)
	}

	gba.dispstat(0, statHBlank)
	if err := gba.runCycles(CyclesHDraw); err != nil {
		return err
	}

	if y < VBlankLine {
		gba.LCD.RenderLine(y)
	}

	stat = gba.dispstat(statHBlank, 0)
	if stat&statHBlankIRQ == statHBlankIRQ {
		interrupts.Request(io, interrupts.HBlank)
	}
	if y < VBlankLine {
		gba.DMA.Trigger(dma.HBlank)
	}

	return gba.runCycles(CyclesHBlank)
}

// run the CPU until the clock reaches the end of the next n cycles. the
// instruction that crosses the boundary is allowed to complete so the
// overshoot is carried into the next call
func (gba *GBA) runCycles(n uint64) error {
	io := &gba.Mem.IO
	gba.target += n

	for gba.Clock.Cycles < gba.target {
		if io.Halted() {
			if !interrupts.Waiting(io) {
				gba.Clock.AdvanceTo(gba.target)
				gba.Timers.Step(gba.Clock.DrainTimer())
				continue
			}
			io.Wake()
		}

		if err := gba.CPU.Step(); err != nil {
			return err
		}

		gba.Timers.Step(gba.Clock.DrainTimer())
		gba.DMA.CheckStarted()
	}

	return nil
}
