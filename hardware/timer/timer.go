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

// Package timer implements the four 16bit timers of the console.
//
// A timer counts up at the rate selected by its prescaler, or in the case of
// count-up timing whenever the previous timer overflows. When the counter
// overflows it is reloaded with the value most recently written to TMxCNT_L
// and an interrupt is requested if enabled.
package timer

import (
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/interrupts"
	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
)

// number of cycles per tick, indexed by the prescaler field of TMxCNT_H
var prescalers = [4]uint32{1, 64, 256, 1024}

// bits of TMxCNT_H
const (
	cntCountUp = 0x04
	cntIRQ     = 0x40
	cntEnable  = 0x80
)

// Timers is the collection of all four timers.
type Timers struct {
	io *ioreg.Registers

	counter [4]uint16

	// cycles accumulated towards the next tick of the prescaler
	accumulated [4]uint32
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers(io *ioreg.Registers) *Timers {
	return &Timers{io: io}
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("TM0=%04x TM1=%04x TM2=%04x TM3=%04x",
		tmr.counter[0], tmr.counter[1], tmr.counter[2], tmr.counter[3])
}

// Reset all timers.
func (tmr *Timers) Reset() {
	tmr.counter = [4]uint16{}
	tmr.accumulated = [4]uint32{}
}

// Counter returns the live counter of timer n.
func (tmr *Timers) Counter(n int) uint16 {
	return tmr.counter[n]
}

// Step advances the timers by the number of cycles. The number of cycles
// will usually be the value drained from the clock's timer accumulator.
func (tmr *Timers) Step(cycles uint32) {
	// changes to the control registers take effect before the cycles are
	// counted
	for n := range tmr.counter {
		if _, started := tmr.io.TimerChanged(n); started {
			tmr.counter[n] = tmr.io.TimerReload(n)
			tmr.accumulated[n] = 0
			tmr.io.Set16(ioreg.Timer(n, ioreg.TM0CNT_L), tmr.counter[n])
		}
	}

	var overflows uint32
	for n := range tmr.counter {
		cnt := tmr.io.Get16(ioreg.Timer(n, ioreg.TM0CNT_H))
		if cnt&cntEnable == 0 {
			overflows = 0
			continue
		}

		// count-up timing has no effect on timer zero
		var ticks uint32
		if n > 0 && cnt&cntCountUp == cntCountUp {
			ticks = overflows
		} else {
			tmr.accumulated[n] += cycles
			p := prescalers[cnt&0x03]
			ticks = tmr.accumulated[n] / p
			tmr.accumulated[n] %= p
		}

		overflows = tmr.tick(n, ticks)
		if overflows > 0 && cnt&cntIRQ == cntIRQ {
			interrupts.Request(tmr.io, interrupts.Timer(n))
		}

		tmr.io.Set16(ioreg.Timer(n, ioreg.TM0CNT_L), tmr.counter[n])
	}
}

// advance counter by the number of ticks, returning the number of times the
// counter overflowed
func (tmr *Timers) tick(n int, ticks uint32) uint32 {
	var overflows uint32
	v := uint32(tmr.counter[n]) + ticks
	for v > 0xffff {
		v = v - 0x10000 + uint32(tmr.io.TimerReload(n))
		overflows++
	}
	tmr.counter[n] = uint16(v)
	return overflows
}
