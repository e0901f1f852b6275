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

import (
	"encoding/binary"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/clocks"
	"github.com/jetsetilly/gopheradvance/hardware/interrupts"
	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
	"github.com/jetsetilly/gopheradvance/logger"
)

// BIOSError is returned by LoadBIOS() if the image is the wrong size.
const BIOSError = "memory: bios image must be %d bytes (not %d)"

// Memory is the memory map of the console. The memory arrays are exported so
// that the LCD can read them directly.
type Memory struct {
	env logger.Permission
	clk *clocks.Clock

	BIOS    [SizeBIOS]uint8
	EWRAM   [SizeEWRAM]uint8
	IWRAM   [SizeIWRAM]uint8
	IO      ioreg.Registers
	Palette [SizePalette]uint8
	VRAM    [SizeVRAM]uint8
	OAM     [SizeOAM]uint8
	SRAM    [SizeSRAM]uint8

	rom []uint8

	// true if BIOS has been loaded with LoadBIOS(). if not, the replacement
	// BIOS is used
	realBIOS bool

	// value of the most recent instruction fetch
	openBus uint32

	// wait states for ROM and SRAM. taken from WAITCNT
	romWait  uint32
	sramWait uint32

	// log reads and writes to unmapped addresses
	LogUnmapped bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env logger.Permission, clk *clocks.Clock) *Memory {
	mem := &Memory{
		env: env,
		clk: clk,
	}
	mem.Reset()
	return mem
}

// Reset clears all RAM and the I/O registers. The BIOS and the cartridge are
// not changed.
func (mem *Memory) Reset() {
	clear(mem.EWRAM[:])
	clear(mem.IWRAM[:])
	clear(mem.Palette[:])
	clear(mem.VRAM[:])
	clear(mem.OAM[:])
	mem.IO.Reset()
	mem.openBus = 0
	mem.updateWaitStates()

	if !mem.realBIOS {
		installBIOS(mem.BIOS[:])
	}
}

// LoadBIOS copies the BIOS image into memory. The image must be exactly
// 16KiB.
func (mem *Memory) LoadBIOS(data []uint8) error {
	if len(data) != SizeBIOS {
		return curated.Errorf(BIOSError, SizeBIOS, len(data))
	}
	copy(mem.BIOS[:], data)
	mem.realBIOS = true
	return nil
}

// HasBIOS returns true if a real BIOS image has been loaded.
func (mem *Memory) HasBIOS() bool {
	return mem.realBIOS
}

// AttachCartridge makes the data available in the cartridge ROM window. Data
// beyond the maximum size of the window is ignored. SRAM is cleared.
func (mem *Memory) AttachCartridge(data []uint8) {
	if len(data) > MaxSizeROM {
		data = data[:MaxSizeROM]
	}
	mem.rom = data
	for i := range mem.SRAM {
		mem.SRAM[i] = 0xff
	}
}

// ROM returns the cartridge data.
func (mem *Memory) ROM() []uint8 {
	return mem.rom
}

// slice of memory for the area. nil for IO and unmapped
func (mem *Memory) area(a Area) []uint8 {
	switch a {
	case BIOS:
		return mem.BIOS[:]
	case EWRAM:
		return mem.EWRAM[:]
	case IWRAM:
		return mem.IWRAM[:]
	case Palette:
		return mem.Palette[:]
	case VRAM:
		return mem.VRAM[:]
	case OAM:
		return mem.OAM[:]
	case ROM:
		return mem.rom
	case SRAM:
		return mem.SRAM[:]
	}
	return nil
}

var waitStates = [4]uint32{4, 3, 2, 8}

func (mem *Memory) updateWaitStates() {
	w := mem.IO.Get16(ioreg.WAITCNT)
	mem.sramWait = waitStates[w&0x03]
	mem.romWait = waitStates[(w>>2)&0x03]
}

// add cycles to the clock for an access to the area
func (mem *Memory) access(a Area, wide bool) {
	var n uint32
	switch a {
	case EWRAM:
		n = 3
	case ROM:
		n = 1 + mem.romWait
	case SRAM:
		n = 1 + mem.sramWait
	default:
		n = 1
	}
	if wide && a.narrow() {
		n *= 2
	}
	mem.clk.Add(n)
}

func (mem *Memory) unmapped(op string, addr uint32) {
	if mem.LogUnmapped {
		logger.Logf(mem.env, "memory", "%s of unmapped address %08x", op, addr)
	}
}

// Read8 implements the arm7tdmi.Memory interface.
func (mem *Memory) Read8(addr uint32) uint8 {
	a, o := mem.MapAddress(addr)
	mem.access(a, false)

	switch a {
	case Unmapped:
		mem.unmapped("read8", addr)
	case IO:
		if v, ok := mem.IO.Read8(o); ok {
			return v
		}
		mem.unmapped("read8", addr)
	default:
		return mem.area(a)[o]
	}

	return uint8(mem.openBus >> ((addr & 0x03) * 8))
}

// Read16 implements the arm7tdmi.Memory interface. Bit zero of the address
// is ignored.
func (mem *Memory) Read16(addr uint32) uint16 {
	addr &^= 0x01
	a, o := mem.MapAddress(addr)
	mem.access(a, false)

	switch a {
	case Unmapped:
		mem.unmapped("read16", addr)
	case IO:
		if v, ok := mem.IO.Read16(o); ok {
			return v
		}
		mem.unmapped("read16", addr)
	case SRAM:
		return uint16(mem.SRAM[o]) | uint16(mem.SRAM[o+1])<<8
	case ROM:
		if int(o)+2 > len(mem.rom) {
			return uint16(mem.rom[o])
		}
		return binary.LittleEndian.Uint16(mem.rom[o:])
	default:
		return binary.LittleEndian.Uint16(mem.area(a)[o:])
	}

	return uint16(mem.openBus >> ((addr & 0x02) * 8))
}

// Read32 implements the arm7tdmi.Memory interface. Bits zero and one of the
// address are ignored.
func (mem *Memory) Read32(addr uint32) uint32 {
	addr &^= 0x03
	a, o := mem.MapAddress(addr)
	mem.access(a, true)

	switch a {
	case Unmapped:
		mem.unmapped("read32", addr)
	case IO:
		if v, ok := mem.IO.Read32(o); ok {
			return v
		}
		mem.unmapped("read32", addr)
	case SRAM:
		return uint32(mem.SRAM[o]) | uint32(mem.SRAM[o+1])<<8 |
			uint32(mem.SRAM[o+2])<<16 | uint32(mem.SRAM[o+3])<<24
	case ROM:
		// the image may not be a multiple of four bytes
		if int(o)+4 > len(mem.rom) {
			var b [4]uint8
			copy(b[:], mem.rom[o:])
			return binary.LittleEndian.Uint32(b[:])
		}
		return binary.LittleEndian.Uint32(mem.rom[o:])
	default:
		return binary.LittleEndian.Uint32(mem.area(a)[o:])
	}

	return mem.openBus
}

// Write8 implements the arm7tdmi.Memory interface.
func (mem *Memory) Write8(addr uint32, data uint8) {
	a, o := mem.MapAddress(addr)
	mem.access(a, false)

	switch a {
	case Unmapped:
		mem.unmapped("write8", addr)
	case BIOS, ROM:
	case IO:
		if !mem.IO.Write8(o, data) {
			mem.unmapped("write8", addr)
		}
		mem.ioWritten(o)
	case Palette, VRAM:
		// the byte is written to both halves of the halfword
		buf := mem.area(a)
		o &^= 0x01
		buf[o] = data
		buf[o+1] = data
	case OAM:
		// 8bit writes to OAM are ignored
	default:
		mem.area(a)[o] = data
	}
}

// Write16 implements the arm7tdmi.Memory interface. Bit zero of the address
// is ignored.
func (mem *Memory) Write16(addr uint32, data uint16) {
	addr &^= 0x01
	a, o := mem.MapAddress(addr)
	mem.access(a, false)

	switch a {
	case Unmapped:
		mem.unmapped("write16", addr)
	case BIOS, ROM:
	case IO:
		if !mem.IO.Write16(o, data) {
			mem.unmapped("write16", addr)
		}
		mem.ioWritten(o)
	case SRAM:
		mem.SRAM[o] = uint8(data)
		mem.SRAM[o+1] = uint8(data >> 8)
	default:
		binary.LittleEndian.PutUint16(mem.area(a)[o:], data)
	}
}

// Write32 implements the arm7tdmi.Memory interface. Bits zero and one of the
// address are ignored.
func (mem *Memory) Write32(addr uint32, data uint32) {
	addr &^= 0x03
	a, o := mem.MapAddress(addr)
	mem.access(a, true)

	switch a {
	case Unmapped:
		mem.unmapped("write32", addr)
	case BIOS, ROM:
	case IO:
		if !mem.IO.Write32(o, data) {
			mem.unmapped("write32", addr)
		}
		mem.ioWritten(o)
	case SRAM:
		mem.SRAM[o] = uint8(data)
		mem.SRAM[o+1] = uint8(data >> 8)
		mem.SRAM[o+2] = uint8(data >> 16)
		mem.SRAM[o+3] = uint8(data >> 24)
	default:
		binary.LittleEndian.PutUint32(mem.area(a)[o:], data)
	}
}

// side effects of I/O writes that are the concern of the memory map
func (mem *Memory) ioWritten(offset uint32) {
	if offset&^0x03 == ioreg.WAITCNT {
		mem.updateWaitStates()
	}
}

// Prefetch16 implements the arm7tdmi.Memory interface. The value fetched
// becomes the open bus value.
func (mem *Memory) Prefetch16(addr uint32) uint16 {
	v := mem.Read16(addr)
	mem.openBus = uint32(v) | uint32(v)<<16
	return v
}

// Prefetch32 implements the arm7tdmi.Memory interface. The value fetched
// becomes the open bus value.
func (mem *Memory) Prefetch32(addr uint32) uint32 {
	v := mem.Read32(addr)
	mem.openBus = v
	return v
}

// IsExecutable implements the arm7tdmi.Memory interface.
func (mem *Memory) IsExecutable(addr uint32) bool {
	switch a, _ := mem.MapAddress(addr); a {
	case BIOS, EWRAM, IWRAM, ROM:
		return true
	}
	return false
}

// InterruptPending implements the arm7tdmi.Memory interface.
func (mem *Memory) InterruptPending() bool {
	return interrupts.Pending(&mem.IO)
}

// GetReg returns the value of the 16bit I/O register without applying the
// read mask of the register.
func (mem *Memory) GetReg(offset uint32) uint16 {
	return mem.IO.Get16(offset)
}

// SetReg sets the value of the 16bit I/O register without applying the write
// mask of the register.
func (mem *Memory) SetReg(offset uint32, v uint16) {
	mem.IO.Set16(offset, v)
}
