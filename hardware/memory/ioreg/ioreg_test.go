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

package ioreg_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
	"github.com/jetsetilly/gopheradvance/test"
)

func prepare() *ioreg.Registers {
	io := &ioreg.Registers{}
	io.Reset()
	return io
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, ioreg.Name(ioreg.DISPCNT), "DISPCNT")
	test.ExpectEquality(t, ioreg.Name(ioreg.DISPCNT+1), "DISPCNT+1")
	test.ExpectEquality(t, ioreg.Name(ioreg.BG2X+3), "BG2X+3")
	test.ExpectEquality(t, ioreg.Name(ioreg.DMA(3, ioreg.DMA0CNT_H)), "DMA3CNT_H")
	test.ExpectEquality(t, ioreg.Name(ioreg.Timer(2, ioreg.TM0CNT_L)), "TM2CNT_L")
	test.ExpectEquality(t, ioreg.Name(0x00e), "BG3CNT")
	test.ExpectEquality(t, ioreg.Name(0x05e), "unmapped (05e)")
	test.ExpectFailure(t, ioreg.Mapped(0x20a))
	test.ExpectSuccess(t, ioreg.Mapped(ioreg.HALTCNT))
}

func TestMasks(t *testing.T) {
	io := prepare()

	// write only register reads as zero
	test.ExpectSuccess(t, io.Write16(ioreg.BG0HOFS, 0xffff))
	v, ok := io.Read16(ioreg.BG0HOFS)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, io.Get16(ioreg.BG0HOFS), 0x01ff)

	// read only bits of DISPSTAT can not be changed by the CPU
	io.Set16(ioreg.DISPSTAT, 0x0001)
	io.Write16(ioreg.DISPSTAT, 0xfffe)
	v, _ = io.Read16(ioreg.DISPSTAT)
	test.ExpectEquality(t, v, 0xff39)

	// VCOUNT is read only
	io.Set16(ioreg.VCOUNT, 100)
	io.Write16(ioreg.VCOUNT, 5)
	v, _ = io.Read16(ioreg.VCOUNT)
	test.ExpectEquality(t, v, 100)

	// keypad input is read only
	io.Write16(ioreg.KEYINPUT, 0x0000)
	v, _ = io.Read16(ioreg.KEYINPUT)
	test.ExpectEquality(t, v, 0x03ff)

	// unmapped offsets
	_, ok = io.Read8(0x05e)
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, io.Write8(0x05e, 0xff))
}

func TestWide(t *testing.T) {
	io := prepare()
	io.Write32(ioreg.BLDCNT, 0x1f1f3fff)
	v, _ := io.Read32(ioreg.BLDCNT)
	test.ExpectEquality(t, v, 0x1f1f3fff)

	b, _ := io.Read8(ioreg.BLDALPHA + 1)
	test.ExpectEquality(t, b, 0x1f)
}

func TestInterruptAcknowledge(t *testing.T) {
	io := prepare()
	io.Set16(ioreg.IF, 0x0005)

	// writing a one clears the bit. writing zero has no effect
	io.Write16(ioreg.IF, 0x0001)
	test.ExpectEquality(t, io.Get16(ioreg.IF), 0x0004)
	io.Write16(ioreg.IF, 0x0000)
	test.ExpectEquality(t, io.Get16(ioreg.IF), 0x0004)
}

func TestTimerReload(t *testing.T) {
	io := prepare()

	io.Write16(ioreg.Timer(1, ioreg.TM0CNT_L), 0xfff0)
	test.ExpectEquality(t, io.TimerReload(1), 0xfff0)

	// counter is unchanged by the write
	v, _ := io.Read16(ioreg.Timer(1, ioreg.TM0CNT_L))
	test.ExpectEquality(t, v, 0)

	io.Set16(ioreg.Timer(1, ioreg.TM0CNT_L), 0x1234)
	v, _ = io.Read16(ioreg.Timer(1, ioreg.TM0CNT_L))
	test.ExpectEquality(t, v, 0x1234)
}

func TestDirtyFlags(t *testing.T) {
	io := prepare()

	// DMA enable rising edge
	io.Write16(ioreg.DMA(2, ioreg.DMA0CNT_H), 0x8000)
	test.ExpectSuccess(t, io.DMAStarted(2))
	test.ExpectFailure(t, io.DMAStarted(2))

	// writing the enable bit again is not a rising edge
	io.Write16(ioreg.DMA(2, ioreg.DMA0CNT_H), 0x8000)
	test.ExpectFailure(t, io.DMAStarted(2))

	// a 32bit write to CNT_L also writes CNT_H
	io.Write32(ioreg.DMA(3, ioreg.DMA0CNT_L), 0x80000010)
	test.ExpectSuccess(t, io.DMAStarted(3))
	test.ExpectFailure(t, io.DMAStarted(0))

	// timer control
	io.Write16(ioreg.Timer(0, ioreg.TM0CNT_H), 0x0081)
	changed, started := io.TimerChanged(0)
	test.ExpectSuccess(t, changed)
	test.ExpectSuccess(t, started)
	io.Write16(ioreg.Timer(0, ioreg.TM0CNT_H), 0x0082)
	changed, started = io.TimerChanged(0)
	test.ExpectSuccess(t, changed)
	test.ExpectFailure(t, started)

	// affine reference point
	io.Write32(ioreg.BG3Y, 0x100)
	test.ExpectFailure(t, io.AffineChanged(2))
	test.ExpectSuccess(t, io.AffineChanged(3))
	test.ExpectFailure(t, io.AffineChanged(3))
}

func TestHalt(t *testing.T) {
	io := prepare()
	test.ExpectFailure(t, io.Halted())
	io.Write8(ioreg.HALTCNT, 0x00)
	test.ExpectSuccess(t, io.Halted())
	io.Wake()
	test.ExpectFailure(t, io.Halted())
}
