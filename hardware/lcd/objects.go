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

import "encoding/binary"

// object dimensions indexed by shape and size
var objSizes = [3][4][2]int{
	// square
	{{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	// horizontal
	{{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	// vertical
	{{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

// object modes from attribute 0
const (
	objModeNormal = iota
	objModeSemiTransparent
	objModeWindow
	objModeProhibited
)

// object tiles start at this address in VRAM. in the bitmap modes the first
// half of the object tiles overlaps the bitmap and can not be used
const (
	objVRAM       = 0x10000
	objVRAMBitmap = 0x14000
)

// object palette is the second half of palette RAM
const objPalette = 0x100

// attributes of a single object
type object struct {
	y, x      int
	affine    bool
	double    bool
	mode      int
	colour256 bool
	width     int
	height    int
	hflip     bool
	vflip     bool
	param     uint32
	tile      uint32
	priority  int
	bank      uint32
}

func (lcd *LCD) readObject(n int) (object, bool) {
	oam := lcd.mem.OAM[n*8:]
	a0 := binary.LittleEndian.Uint16(oam[0:])
	a1 := binary.LittleEndian.Uint16(oam[2:])
	a2 := binary.LittleEndian.Uint16(oam[4:])

	o := object{
		y:         int(a0 & 0xff),
		x:         int(a1 & 0x1ff),
		affine:    a0&0x0100 == 0x0100,
		mode:      int((a0 >> 10) & 0x03),
		colour256: a0&0x2000 == 0x2000,
		param:     uint32((a1 >> 9) & 0x1f),
		tile:      uint32(a2 & 0x3ff),
		priority:  int((a2 >> 10) & 0x03),
		bank:      uint32(a2>>12) * 16,
	}

	// bit 9 disables a regular object and selects double size for an affine
	// object
	if o.affine {
		o.double = a0&0x0200 == 0x0200
	} else if a0&0x0200 == 0x0200 {
		return o, false
	} else {
		o.hflip = a1&0x1000 == 0x1000
		o.vflip = a1&0x2000 == 0x2000
	}

	shape := (a0 >> 14) & 0x03
	if shape == 3 || o.mode == objModeProhibited {
		return o, false
	}
	sz := objSizes[shape][(a1>>14)&0x03]
	o.width, o.height = sz[0], sz[1]

	// positions wrap around the edges of the screen
	if o.x >= Width {
		o.x -= 512
	}
	if o.y >= Height {
		o.y -= 256
	}

	return o, true
}

// produce the object line and the per pixel object metadata for scanline y.
// objects are processed in OAM order so that for objects of equal priority
// the object with the lowest index is on top
func (lcd *LCD) objectLine(y int, bitmap bool, oneDimensional bool) {
	line := &lcd.layers.OBJ
	info := &lcd.layers.ObjInfo

	tileMin := uint32(objVRAM)
	if bitmap {
		tileMin = objVRAMBitmap
	}

	for n := 0; n < 128; n++ {
		o, ok := lcd.readObject(n)
		if !ok {
			continue
		}

		// bounding box is twice the size of the object for double size
		// affine objects
		bw, bh := o.width, o.height
		if o.double {
			bw *= 2
			bh *= 2
		}

		ly := y - o.y
		if ly < 0 || ly >= bh {
			continue
		}

		var pa, pb, pc, pd int
		if o.affine {
			p := lcd.mem.OAM[o.param*32:]
			pa = int(int16(binary.LittleEndian.Uint16(p[6:])))
			pb = int(int16(binary.LittleEndian.Uint16(p[14:])))
			pc = int(int16(binary.LittleEndian.Uint16(p[22:])))
			pd = int(int16(binary.LittleEndian.Uint16(p[30:])))
		}

		for i := 0; i < bw; i++ {
			sx := o.x + i
			if sx < 0 || sx >= Width {
				continue
			}

			var tx, ty int
			if o.affine {
				dx := i - bw/2
				dy := ly - bh/2
				tx = (pa*dx+pb*dy)>>8 + o.width/2
				ty = (pc*dx+pd*dy)>>8 + o.height/2
				if tx < 0 || ty < 0 || tx >= o.width || ty >= o.height {
					continue
				}
			} else {
				tx, ty = i, ly
				if o.hflip {
					tx = o.width - 1 - tx
				}
				if o.vflip {
					ty = o.height - 1 - ty
				}
			}

			// tile number is in units of 32 bytes. in 2D mapping the tile
			// rows are 32 tiles apart
			var tile uint32
			var addr uint32
			if o.colour256 {
				if oneDimensional {
					tile = o.tile + uint32((ty/8)*(o.width/8)+tx/8)*2
				} else {
					tile = o.tile + uint32((ty/8)*32+(tx/8)*2)
				}
				addr = objVRAM + (tile&0x3ff)*32 + uint32((ty&7)*8+(tx&7))
			} else {
				if oneDimensional {
					tile = o.tile + uint32((ty/8)*(o.width/8)+tx/8)
				} else {
					tile = o.tile + uint32((ty/8)*32+tx/8)
				}
				addr = objVRAM + (tile&0x3ff)*32 + uint32((ty&7)*4+(tx&7)/2)
			}
			if addr < tileMin || addr >= uint32(len(lcd.mem.VRAM)) {
				continue
			}

			var c uint16
			if o.colour256 {
				idx := lcd.mem.VRAM[addr]
				if idx == 0 {
					continue
				}
				c = lcd.palette(objPalette + uint32(idx))
			} else {
				idx := lcd.mem.VRAM[addr]
				if tx&1 == 1 {
					idx >>= 4
				}
				idx &= 0x0f
				if idx == 0 {
					continue
				}
				c = lcd.palette(objPalette + o.bank + uint32(idx))
			}

			if o.mode == objModeWindow {
				info[sx] |= objWindow
				continue
			}

			// an object pixel is only replaced by one of a higher priority
			cur := int(info[sx] & objPriorityMask)
			if cur != 0 && o.priority+1 >= cur {
				continue
			}

			line[sx] = c
			info[sx] = (info[sx] & objWindow) | uint8(o.priority+1)
			if o.mode == objModeSemiTransparent {
				info[sx] |= objSemiTransparent
			}
		}
	}
}
