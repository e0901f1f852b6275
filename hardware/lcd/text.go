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

// size of text backgrounds in pixels, indexed by the size field of BGxCNT
var textSizes = [4][2]int{
	{256, 256},
	{512, 256},
	{256, 512},
	{512, 512},
}

// tile map and character data for backgrounds must be in the first 64KiB of
// VRAM
const bgVRAM = 0x10000

// produce a line for a text (tiled) background
func (lcd *LCD) textLine(bg int, y int) {
	io := &lcd.mem.IO
	vram := lcd.mem.VRAM[:]
	line := &lcd.layers.BG[bg]
	lcd.layers.BGEnabled[bg] = true

	cnt := io.Get16(ioreg.BG0CNT + uint32(bg)*2)
	hofs := int(io.Get16(ioreg.BG0HOFS+uint32(bg)*4) & 0x1ff)
	vofs := int(io.Get16(ioreg.BG0VOFS+uint32(bg)*4) & 0x1ff)

	charBase := uint32((cnt>>2)&0x03) * 0x4000
	screenBase := uint32((cnt>>8)&0x1f) * 0x800
	colour256 := cnt&0x0080 == 0x0080
	size := textSizes[(cnt>>14)&0x03]

	mh, mv := 1, 1
	if cnt&0x0040 == 0x0040 {
		mh, mv = lcd.bgMosaic()
	}

	py := (mosaic(y, mv) + vofs) & (size[1] - 1)

	for x := 0; x < Width; x++ {
		px := (mosaic(x, mh) + hofs) & (size[0] - 1)

		// each screen block is 32x32 tiles. the blocks for the wider sizes
		// follow each other in memory
		var block uint32
		switch {
		case size[0] == 512 && size[1] == 512:
			block = uint32(px/256 + (py/256)*2)
		case size[0] == 512:
			block = uint32(px / 256)
		case size[1] == 512:
			block = uint32(py / 256)
		}

		mapAddr := screenBase + block*0x800 + uint32(((py&0xff)/8)*32+(px&0xff)/8)*2
		if mapAddr+1 >= bgVRAM {
			line[x] = Transparent
			continue
		}
		entry := uint16(vram[mapAddr]) | uint16(vram[mapAddr+1])<<8

		tile := uint32(entry & 0x3ff)
		tx := px & 7
		ty := py & 7
		if entry&0x0400 == 0x0400 {
			tx = 7 - tx
		}
		if entry&0x0800 == 0x0800 {
			ty = 7 - ty
		}

		if colour256 {
			addr := charBase + tile*64 + uint32(ty*8+tx)
			if addr >= bgVRAM || vram[addr] == 0 {
				line[x] = Transparent
				continue
			}
			line[x] = lcd.palette(uint32(vram[addr]))
		} else {
			addr := charBase + tile*32 + uint32(ty*4+tx/2)
			if addr >= bgVRAM {
				line[x] = Transparent
				continue
			}
			idx := vram[addr]
			if tx&1 == 1 {
				idx >>= 4
			}
			idx &= 0x0f
			if idx == 0 {
				line[x] = Transparent
				continue
			}
			bank := uint32(entry>>12) * 16
			line[x] = lcd.palette(bank + uint32(idx))
		}
	}
}
