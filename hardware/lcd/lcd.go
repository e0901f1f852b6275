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

package lcd

import (
	"encoding/binary"

	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
)

// LCD renders scanlines from the contents of memory into the Frame.
type LCD struct {
	mem *memory.Memory

	layers Layers

	// internal reference points for the affine backgrounds (BG2 and BG3).
	// latched from BGxX and BGxY at the start of the frame, or whenever the
	// registers are written, and advanced by PB and PD at the end of every
	// line
	refX [2]int32
	refY [2]int32

	// the frame being drawn
	Frame Frame
}

// NewLCD is the preferred method of initialisation for the LCD type.
func NewLCD(mem *memory.Memory) *LCD {
	lcd := &LCD{
		mem: mem,
	}
	lcd.Reset()
	return lcd
}

// Reset the LCD. The frame is cleared to black.
func (lcd *LCD) Reset() {
	lcd.layers = Layers{}
	lcd.Frame = Frame{}
	lcd.LatchAffine()
}

// sign extend the 28bit reference point register
func referencePoint(v uint32) int32 {
	return int32(v<<4) >> 4
}

func (lcd *LCD) latch(i int) {
	off := uint32(i) * (ioreg.BG3X - ioreg.BG2X)
	lcd.refX[i] = referencePoint(lcd.mem.IO.Get32(ioreg.BG2X + off))
	lcd.refY[i] = referencePoint(lcd.mem.IO.Get32(ioreg.BG2Y + off))
}

// LatchAffine copies the reference point registers of the two affine
// backgrounds into the internal reference points. Called by the frame driver
// at the start of vertical blank.
func (lcd *LCD) LatchAffine() {
	lcd.latch(0)
	lcd.latch(1)
	lcd.mem.IO.AffineChanged(2)
	lcd.mem.IO.AffineChanged(3)
}

// 16bit colour from palette RAM, marked as opaque
func (lcd *LCD) palette(idx uint32) uint16 {
	return binary.LittleEndian.Uint16(lcd.mem.Palette[(idx*2)&(memory.SizePalette-1):]) | Opaque
}

// Backdrop returns the colour of the backdrop. Entry zero of the background
// palette.
func (lcd *LCD) Backdrop() uint16 {
	return lcd.palette(0)
}

// RenderLine draws scanline y into the Frame.
func (lcd *LCD) RenderLine(y int) {
	io := &lcd.mem.IO

	// writes to the reference point registers take effect from the next line
	for i := 0; i < 2; i++ {
		if io.AffineChanged(i + 2) {
			lcd.latch(i)
		}
	}

	dispcnt := io.Get16(ioreg.DISPCNT)

	// forced blank draws a white line
	if dispcnt&0x0080 == 0x0080 {
		for x := range lcd.Frame[y] {
			lcd.Frame[y][x] = RGB{0xff, 0xff, 0xff}
		}
		lcd.advanceAffine()
		return
	}

	lcd.layers.clear()
	mode := dispcnt & 0x07

	enabled := func(bg int) bool {
		return dispcnt&(0x0100<<bg) != 0
	}

	switch mode {
	case 0:
		for bg := 0; bg < 4; bg++ {
			if enabled(bg) {
				lcd.textLine(bg, y)
			}
		}
	case 1:
		for bg := 0; bg < 2; bg++ {
			if enabled(bg) {
				lcd.textLine(bg, y)
			}
		}
		if enabled(2) {
			lcd.affineLine(2, y)
		}
	case 2:
		for bg := 2; bg < 4; bg++ {
			if enabled(bg) {
				lcd.affineLine(bg, y)
			}
		}
	case 3, 4, 5:
		if enabled(2) {
			lcd.bitmapLine(int(mode), y)
		}
	}

	if dispcnt&0x1000 == 0x1000 {
		lcd.objectLine(y, mode >= 3, dispcnt&0x0040 == 0x0040)
	}

	Compose(y, &lcd.layers, io, lcd.Backdrop(), &lcd.Frame[y])
	lcd.advanceAffine()
}

// the reference points move by (PB, PD) at the end of every line
func (lcd *LCD) advanceAffine() {
	io := &lcd.mem.IO
	for i := 0; i < 2; i++ {
		off := uint32(i) * (ioreg.BG3X - ioreg.BG2X)
		lcd.refX[i] += int32(int16(io.Get16(ioreg.BG2PB + off)))
		lcd.refY[i] += int32(int16(io.Get16(ioreg.BG2PD + off)))
	}
}

// apply the mosaic effect to the coordinate
func mosaic(c int, size int) int {
	return c - c%size
}

// mosaic block sizes for backgrounds
func (lcd *LCD) bgMosaic() (h int, v int) {
	m := lcd.mem.IO.Get16(ioreg.MOSAIC)
	return int(m&0x0f) + 1, int((m>>4)&0x0f) + 1
}
