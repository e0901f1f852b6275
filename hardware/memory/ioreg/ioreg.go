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

package ioreg

import (
	"encoding/binary"
	"fmt"
)

// per byte masks and names built from the registers table
var (
	mapped    [Size]bool
	readMask  [Size]uint8
	writeMask [Size]uint8
	names     [Size]string
)

func init() {
	for _, r := range registers {
		for i := 0; i < r.width; i++ {
			o := r.offset + uint32(i)
			mapped[o] = true
			readMask[o] = uint8(r.read >> (i * 8))
			writeMask[o] = uint8(r.write >> (i * 8))
			names[o] = r.name
		}
	}
}

// Name returns the name of the register at the offset. Offsets inside a
// register that is wider than one byte are shown with the byte index.
func Name(offset uint32) string {
	offset &= Size - 1
	if !mapped[offset] {
		return fmt.Sprintf("unmapped (%03x)", offset)
	}
	start := offset
	for start > 0 && names[start-1] == names[offset] {
		start--
	}
	if start != offset {
		return fmt.Sprintf("%s+%d", names[offset], offset-start)
	}
	return names[offset]
}

// Mapped returns true if the offset is part of a named register.
func Mapped(offset uint32) bool {
	return mapped[offset&(Size-1)]
}

// Registers is the I/O register page.
type Registers struct {
	data [Size]uint8

	// the CPU writes the timer reload value through TMxCNT_L but reads the
	// live counter, which is stored in data
	reload [4]uint16

	// dirty flags. one bit per DMA channel, timer or affine background
	dmaStart     uint8
	timerChanged uint8
	timerStarted uint8
	affine       uint8

	halted bool
}

// Reset the register page to the power-on state. All keys are released.
func (io *Registers) Reset() {
	*io = Registers{}
	io.Set16(KEYINPUT, 0x03ff)
	io.Set16(SOUNDBIAS, 0x0200)
}

func (io *Registers) String() string {
	return fmt.Sprintf("DISPCNT=%04x DISPSTAT=%04x VCOUNT=%d IE=%04x IF=%04x IME=%d",
		io.Get16(DISPCNT), io.Get16(DISPSTAT), io.Get16(VCOUNT),
		io.Get16(IE), io.Get16(IF), io.Get16(IME)&0x01)
}

// Read8 is the CPU's 8bit read of the I/O page. The second return value is
// false if the offset is not mapped.
func (io *Registers) Read8(offset uint32) (uint8, bool) {
	offset &= Size - 1
	if !mapped[offset] {
		return 0, false
	}
	return io.data[offset] & readMask[offset], true
}

// Read16 is the CPU's 16bit read of the I/O page. The offset is aligned to
// a halfword.
func (io *Registers) Read16(offset uint32) (uint16, bool) {
	offset &^= 0x01
	lo, lok := io.Read8(offset)
	hi, hok := io.Read8(offset + 1)
	return uint16(lo) | uint16(hi)<<8, lok || hok
}

// Read32 is the CPU's 32bit read of the I/O page. The offset is aligned to a
// word.
func (io *Registers) Read32(offset uint32) (uint32, bool) {
	offset &^= 0x03
	lo, lok := io.Read16(offset)
	hi, hok := io.Read16(offset + 2)
	return uint32(lo) | uint32(hi)<<16, lok || hok
}

// Write8 is the CPU's 8bit write to the I/O page. Returns false if the offset
// is not mapped.
func (io *Registers) Write8(offset uint32, v uint8) bool {
	offset &= Size - 1
	if !mapped[offset] {
		return false
	}

	switch {
	case offset == IF || offset == IF+1:
		// writing a one acknowledges the interrupt
		io.data[offset] &^= v
		return true

	case offset == HALTCNT:
		// bit 7 selects stop mode. stop is treated the same as halt
		io.halted = true
		return true

	case offset >= TM0CNT_L && offset < Timer(4, TM0CNT_L) && offset&0x03 < 2:
		n := (offset - TM0CNT_L) / TimerStride
		if offset&0x01 == 0x00 {
			io.reload[n] = (io.reload[n] & 0xff00) | uint16(v)
		} else {
			io.reload[n] = (io.reload[n] & 0x00ff) | uint16(v)<<8
		}
		return true
	}

	old := io.data[offset]
	m := writeMask[offset]
	nv := (old &^ m) | (v & m)
	io.data[offset] = nv

	switch {
	case offset >= DMA0CNT_H+1 && offset <= DMA(3, DMA0CNT_H)+1 && (offset-(DMA0CNT_H+1))%DMAStride == 0:
		n := (offset - (DMA0CNT_H + 1)) / DMAStride
		if old&0x80 == 0x00 && nv&0x80 == 0x80 {
			io.dmaStart |= 1 << n
		}

	case offset >= TM0CNT_H && offset <= Timer(3, TM0CNT_H) && (offset-TM0CNT_H)%TimerStride == 0:
		n := (offset - TM0CNT_H) / TimerStride
		io.timerChanged |= 1 << n
		if old&0x80 == 0x00 && nv&0x80 == 0x80 {
			io.timerStarted |= 1 << n
		}

	case offset >= BG2X && offset < BG2X+8:
		io.affine |= 0x01

	case offset >= BG3X && offset < BG3X+8:
		io.affine |= 0x02
	}

	return true
}

// Write16 is the CPU's 16bit write to the I/O page.
func (io *Registers) Write16(offset uint32, v uint16) bool {
	offset &^= 0x01
	lok := io.Write8(offset, uint8(v))
	hok := io.Write8(offset+1, uint8(v>>8))
	return lok || hok
}

// Write32 is the CPU's 32bit write to the I/O page.
func (io *Registers) Write32(offset uint32, v uint32) bool {
	offset &^= 0x03
	lok := io.Write16(offset, uint16(v))
	hok := io.Write16(offset+2, uint16(v>>16))
	return lok || hok
}

// Get8 returns the byte at the offset without applying the read mask.
func (io *Registers) Get8(offset uint32) uint8 {
	return io.data[offset&(Size-1)]
}

// Get16 returns the halfword at the offset without applying the read mask.
func (io *Registers) Get16(offset uint32) uint16 {
	return binary.LittleEndian.Uint16(io.data[offset&(Size-2):])
}

// Get32 returns the word at the offset without applying the read mask.
func (io *Registers) Get32(offset uint32) uint32 {
	return binary.LittleEndian.Uint32(io.data[offset&(Size-4):])
}

// Set16 sets the halfword at the offset without applying the write mask and
// without any of the side effects of a CPU write.
func (io *Registers) Set16(offset uint32, v uint16) {
	binary.LittleEndian.PutUint16(io.data[offset&(Size-2):], v)
}

// Set32 sets the word at the offset without applying the write mask and
// without any of the side effects of a CPU write.
func (io *Registers) Set32(offset uint32, v uint32) {
	binary.LittleEndian.PutUint32(io.data[offset&(Size-4):], v)
}

// TimerReload returns the reload value for timer n, as last written by the
// CPU to TMxCNT_L.
func (io *Registers) TimerReload(n int) uint16 {
	return io.reload[n]
}

// DMAStarted returns true if the enable bit of DMA channel n has been set by
// the CPU since the last call. The flag is cleared.
func (io *Registers) DMAStarted(n int) bool {
	b := io.dmaStart&(1<<n) != 0
	io.dmaStart &^= 1 << n
	return b
}

// TimerChanged returns true if the control register of timer n has been
// written since the last call. The second value is true if the write set the
// enable bit when it was previously clear. Both flags are cleared.
func (io *Registers) TimerChanged(n int) (changed bool, started bool) {
	changed = io.timerChanged&(1<<n) != 0
	started = io.timerStarted&(1<<n) != 0
	io.timerChanged &^= 1 << n
	io.timerStarted &^= 1 << n
	return changed, started
}

// AffineChanged returns true if the reference point registers of affine
// background bg (2 or 3) have been written since the last call. The flag is
// cleared.
func (io *Registers) AffineChanged(bg int) bool {
	m := uint8(1 << (bg - 2))
	b := io.affine&m != 0
	io.affine &^= m
	return b
}

// Halted returns true if the CPU has written to HALTCNT and not been woken.
func (io *Registers) Halted() bool {
	return io.halted
}

// Wake clears the halt state.
func (io *Registers) Wake() {
	io.halted = false
}
