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

import "github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"

// produce a line for an affine (rotation/scaling) background. affine
// backgrounds are always 256 colour and the tile map entries are single
// bytes
func (lcd *LCD) affineLine(bg int, y int) {
	io := &lcd.mem.IO
	vram := lcd.mem.VRAM[:]
	line := &lcd.layers.BG[bg]
	lcd.layers.BGEnabled[bg] = true

	i := bg - 2
	off := uint32(i) * (ioreg.BG3X - ioreg.BG2X)
	pa := int32(int16(io.Get16(ioreg.BG2PA + off)))
	pc := int32(int16(io.Get16(ioreg.BG2PC + off)))

	cnt := io.Get16(ioreg.BG0CNT + uint32(bg)*2)
	charBase := uint32((cnt>>2)&0x03) * 0x4000
	screenBase := uint32((cnt>>8)&0x1f) * 0x800
	wrap := cnt&0x2000 == 0x2000
	size := int32(128) << ((cnt >> 14) & 0x03)
	tiles := size / 8

	mh := 1
	if cnt&0x0040 == 0x0040 {
		// vertical mosaic is not applied because the reference point is
		// advanced line by line
		mh, _ = lcd.bgMosaic()
	}

	for x := 0; x < Width; x++ {
		mx := int32(mosaic(x, mh))
		tx := (lcd.refX[i] + pa*mx) >> 8
		ty := (lcd.refY[i] + pc*mx) >> 8

		if wrap {
			tx &= size - 1
			ty &= size - 1
		} else if tx < 0 || ty < 0 || tx >= size || ty >= size {
			line[x] = Transparent
			continue
		}

		mapAddr := screenBase + uint32((ty/8)*tiles+tx/8)
		if mapAddr >= bgVRAM {
			line[x] = Transparent
			continue
		}
		tile := uint32(vram[mapAddr])

		addr := charBase + tile*64 + uint32((ty&7)*8+(tx&7))
		if addr >= bgVRAM || vram[addr] == 0 {
			line[x] = Transparent
			continue
		}
		line[x] = lcd.palette(uint32(vram[addr]))
	}
}
