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

package dma

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/interrupts"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
	"github.com/jetsetilly/gopheradvance/logger"
)

// Timing is the start condition of a channel.
type Timing int

// List of valid Timing values.
const (
	Immediate Timing = iota
	VBlank
	HBlank
	Special
)

func (t Timing) String() string {
	switch t {
	case Immediate:
		return "immediate"
	case VBlank:
		return "vblank"
	case HBlank:
		return "hblank"
	case Special:
		return "special"
	}
	panic("unknown DMA timing")
}

// address control for source and destination
const (
	addrIncrement = iota
	addrDecrement
	addrFixed
	addrIncrementReload
)

// bits of DMAxCNT_H
const (
	cntRepeat = 0x0200
	cnt32bit  = 0x0400
	cntIRQ    = 0x4000
	cntEnable = 0x8000
)

// the internal registers of a channel. loaded from the I/O registers when the
// channel is enabled
type channel struct {
	src   uint32
	dst   uint32
	count uint32
}

// DMA is the DMA controller.
type DMA struct {
	env logger.Permission
	mem *memory.Memory

	channels [4]channel
}

// NewDMA is the preferred method of initialisation for the DMA type.
func NewDMA(env logger.Permission, mem *memory.Memory) *DMA {
	return &DMA{
		env: env,
		mem: mem,
	}
}

func (dma *DMA) String() string {
	return fmt.Sprintf("DMA0=%s DMA1=%s DMA2=%s DMA3=%s",
		dma.describe(0), dma.describe(1), dma.describe(2), dma.describe(3))
}

func (dma *DMA) describe(n int) string {
	cnt := dma.mem.IO.Get16(ioreg.DMA(n, ioreg.DMA0CNT_H))
	if cnt&cntEnable == 0 {
		return "off"
	}
	ch := dma.channels[n]
	return fmt.Sprintf("%08x->%08x (%d, %s)", ch.src, ch.dst, ch.count, timing(cnt))
}

// Reset all channels.
func (dma *DMA) Reset() {
	dma.channels = [4]channel{}
}

func timing(cnt uint16) Timing {
	return Timing((cnt >> 12) & 0x03)
}

// number of units in a transfer. a count of zero is the maximum
func wordCount(n int, v uint16) uint32 {
	if n == 3 {
		if v == 0 {
			return 0x10000
		}
		return uint32(v)
	}
	v &= 0x3fff
	if v == 0 {
		return 0x4000
	}
	return uint32(v)
}

// CheckStarted looks for channels that have been enabled by the CPU since the
// last call. The internal registers of those channels are loaded and
// channels with immediate timing are run.
func (dma *DMA) CheckStarted() {
	io := &dma.mem.IO
	for n := range dma.channels {
		if !io.DMAStarted(n) {
			continue
		}

		ch := &dma.channels[n]
		ch.src = io.Get32(ioreg.DMA(n, ioreg.DMA0SAD))
		ch.dst = io.Get32(ioreg.DMA(n, ioreg.DMA0DAD))
		ch.count = wordCount(n, io.Get16(ioreg.DMA(n, ioreg.DMA0CNT_L)))

		switch timing(io.Get16(ioreg.DMA(n, ioreg.DMA0CNT_H))) {
		case Immediate:
			dma.transfer(n)
		case Special:
			logger.Logf(dma.env, "DMA", "channel %d: special timing is not supported", n)
		}
	}
}

// Trigger runs every enabled channel with the specified start timing. Called
// by the frame driver at the start of vertical and horizontal blank.
func (dma *DMA) Trigger(t Timing) {
	dma.CheckStarted()

	io := &dma.mem.IO
	for n := range dma.channels {
		cnt := io.Get16(ioreg.DMA(n, ioreg.DMA0CNT_H))
		if cnt&cntEnable == cntEnable && timing(cnt) == t {
			dma.transfer(n)
		}
	}
}

// step applied to an address after each unit
func step(ctrl uint16, size uint32) uint32 {
	switch ctrl {
	case addrDecrement:
		return -size
	case addrFixed:
		return 0
	}
	return size
}

func (dma *DMA) transfer(n int) {
	io := &dma.mem.IO
	ch := &dma.channels[n]
	cnt := io.Get16(ioreg.DMA(n, ioreg.DMA0CNT_H))

	size := uint32(2)
	if cnt&cnt32bit == cnt32bit {
		size = 4
	}

	dstCtrl := (cnt >> 5) & 0x03
	srcCtrl := (cnt >> 7) & 0x03

	// increment/reload is not valid for the source and behaves like
	// increment
	if srcCtrl == addrIncrementReload {
		srcCtrl = addrIncrement
	}

	srcStep := step(srcCtrl, size)
	dstStep := step(dstCtrl, size)

	src := ch.src &^ (size - 1)
	dst := ch.dst &^ (size - 1)

	for i := uint32(0); i < ch.count; i++ {
		if size == 4 {
			dma.mem.Write32(dst, dma.mem.Read32(src))
		} else {
			dma.mem.Write16(dst, dma.mem.Read16(src))
		}
		src += srcStep
		dst += dstStep
	}

	ch.src = src
	ch.dst = dst

	if cnt&cntIRQ == cntIRQ {
		interrupts.Request(io, interrupts.DMA(n))
	}

	if cnt&cntRepeat == cntRepeat && timing(cnt) != Immediate {
		ch.count = wordCount(n, io.Get16(ioreg.DMA(n, ioreg.DMA0CNT_L)))
		if dstCtrl == addrIncrementReload {
			ch.dst = io.Get32(ioreg.DMA(n, ioreg.DMA0DAD))
		}
		return
	}

	io.Set16(ioreg.DMA(n, ioreg.DMA0CNT_H), cnt&^cntEnable)
}
