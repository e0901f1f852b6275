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

package memory

import "fmt"

// Origin and size of each memory region.
const (
	OriginBIOS    = uint32(0x00000000)
	SizeBIOS      = 0x4000
	OriginEWRAM   = uint32(0x02000000)
	SizeEWRAM     = 0x40000
	OriginIWRAM   = uint32(0x03000000)
	SizeIWRAM     = 0x8000
	OriginIO      = uint32(0x04000000)
	OriginPalette = uint32(0x05000000)
	SizePalette   = 0x400
	OriginVRAM    = uint32(0x06000000)
	SizeVRAM      = 0x18000
	OriginOAM     = uint32(0x07000000)
	SizeOAM       = 0x400
	OriginROM     = uint32(0x08000000)
	MaxSizeROM    = 0x2000000
	OriginSRAM    = uint32(0x0e000000)
	SizeSRAM      = 0x10000
)

// Area represents the different regions of memory.
type Area int

// List of valid Area values.
const (
	Unmapped Area = iota
	BIOS
	EWRAM
	IWRAM
	IO
	Palette
	VRAM
	OAM
	ROM
	SRAM
)

func (a Area) String() string {
	switch a {
	case BIOS:
		return "BIOS"
	case EWRAM:
		return "EWRAM"
	case IWRAM:
		return "IWRAM"
	case IO:
		return "IO"
	case Palette:
		return "Palette"
	case VRAM:
		return "VRAM"
	case OAM:
		return "OAM"
	case ROM:
		return "ROM"
	case SRAM:
		return "SRAM"
	}
	return "unmapped"
}

// regions with a 16bit or 8bit bus. a 32bit access takes two bus cycles
func (a Area) narrow() bool {
	switch a {
	case EWRAM, Palette, VRAM, ROM, SRAM:
		return true
	}
	return false
}

// MapAddress returns the area and the offset into the area for the address.
// The offset takes mirroring into account. Addresses in the cartridge window
// that are beyond the end of the ROM image are not mapped.
func (mem *Memory) MapAddress(addr uint32) (Area, uint32) {
	switch addr >> 24 {
	case 0x00:
		if addr < SizeBIOS {
			return BIOS, addr
		}
	case 0x02:
		return EWRAM, addr & (SizeEWRAM - 1)
	case 0x03:
		return IWRAM, addr & (SizeIWRAM - 1)
	case 0x04:
		if addr&0x00ffffff < 0x400 {
			return IO, addr & 0x3ff
		}
	case 0x05:
		return Palette, addr & (SizePalette - 1)
	case 0x06:
		// 128KiB window. the top 32KiB folds onto the OBJ tiles
		v := addr & 0x1ffff
		if v >= SizeVRAM {
			v -= 0x8000
		}
		return VRAM, v
	case 0x07:
		return OAM, addr & (SizeOAM - 1)
	case 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d:
		v := addr & (MaxSizeROM - 1)
		if v < uint32(len(mem.rom)) {
			return ROM, v
		}
	case 0x0e, 0x0f:
		return SRAM, addr & (SizeSRAM - 1)
	}
	return Unmapped, 0
}

// Describe returns a string describing the address, for use in log messages.
func (mem *Memory) Describe(addr uint32) string {
	a, o := mem.MapAddress(addr)
	return fmt.Sprintf("%08x (%s %05x)", addr, a, o)
}
