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

// Package interrupts names the interrupt sources of the console and provides
// the functions used to raise and test them. Interrupt state lives in the IE,
// IF and IME registers of the I/O page.
package interrupts

import (
	"strings"

	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
)

// IRQ is a bit in the IE and IF registers.
type IRQ uint16

// List of interrupt sources.
const (
	VBlank  IRQ = 0x0001
	HBlank  IRQ = 0x0002
	VCount  IRQ = 0x0004
	Timer0  IRQ = 0x0008
	Timer1  IRQ = 0x0010
	Timer2  IRQ = 0x0020
	Timer3  IRQ = 0x0040
	Serial  IRQ = 0x0080
	DMA0    IRQ = 0x0100
	DMA1    IRQ = 0x0200
	DMA2    IRQ = 0x0400
	DMA3    IRQ = 0x0800
	Keypad  IRQ = 0x1000
	GamePak IRQ = 0x2000
)

var irqNames = []string{
	"VBlank", "HBlank", "VCount",
	"Timer0", "Timer1", "Timer2", "Timer3",
	"Serial",
	"DMA0", "DMA1", "DMA2", "DMA3",
	"Keypad", "GamePak",
}

func (irq IRQ) String() string {
	var s []string
	for i, n := range irqNames {
		if irq&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "|")
}

// Timer returns the IRQ for timer n.
func Timer(n int) IRQ {
	return Timer0 << n
}

// DMA returns the IRQ for DMA channel n.
func DMA(n int) IRQ {
	return DMA0 << n
}

// Request an interrupt by setting the bit in IF. Whether the interrupt is
// taken depends on IE, IME and the CPSR.
func Request(io *ioreg.Registers, irq IRQ) {
	io.Set16(ioreg.IF, io.Get16(ioreg.IF)|uint16(irq))
}

// Waiting returns true if any enabled interrupt has been requested. IME is
// not considered. This is the condition that ends a halt.
func Waiting(io *ioreg.Registers) bool {
	return io.Get16(ioreg.IE)&io.Get16(ioreg.IF)&0x3fff != 0
}

// Pending returns true if an interrupt should be taken by the CPU, subject to
// the I flag of the CPSR.
func Pending(io *ioreg.Registers) bool {
	return io.Get16(ioreg.IME)&0x01 == 0x01 && Waiting(io)
}
