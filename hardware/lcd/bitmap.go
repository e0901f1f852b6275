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

	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
)

// address of the second frame in the double buffered bitmap modes
const backFrame = 0xa000

// produce a line for BG2 in one of the bitmap modes. bitmaps are drawn without
// transformation
//
//	mode 3: 240x160, 15bit direct colour, single frame
//	mode 4: 240x160, 256 colour, two frames
//	mode 5: 160x128, 15bit direct colour, two frames
//
// direct colour pixels are always opaque. palette index zero is transparent
func (lcd *LCD) bitmapLine(mode int, y int) {
	io := &lcd.mem.IO
	vram := lcd.mem.VRAM[:]
	line := &lcd.layers.BG[2]
	lcd.layers.BGEnabled[2] = true

	var base uint32
	if mode != 3 && io.Get16(ioreg.DISPCNT)&0x0010 == 0x0010 {
		base = backFrame
	}

	for x := 0; x < Width; x++ {
		switch mode {
		case 3:
			addr := uint32(y*Width+x) * 2
			line[x] = binary.LittleEndian.Uint16(vram[addr:]) | Opaque
		case 4:
			idx := vram[base+uint32(y*Width+x)]
			if idx == 0 {
				line[x] = Transparent
			} else {
				line[x] = lcd.palette(uint32(idx))
			}
		case 5:
			if x >= 160 || y >= 128 {
				line[x] = Transparent
				continue
			}
			addr := base + uint32(y*160+x)*2
			line[x] = binary.LittleEndian.Uint16(vram[addr:]) | Opaque
		}
	}
}
