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

// Package clocks is the master cycle counter for the console. The CPU, the
// memory bus and the DMA controller all add to the counter and the frame
// driver measures progress through the scanline with it.
package clocks

// MasterClock is the frequency of the system clock in Hz. The frame driver
// budgets 1232 cycles per scanline and 228 scanlines per frame.
const MasterClock = 16777216

// Clock counts cycles. Cycles never decreases. Timer accumulates the same
// cycles but is drained by the timer subsystem after every CPU step.
type Clock struct {
	Cycles uint64
	Timer  uint32
}

// Add advances the clock.
func (c *Clock) Add(n uint32) {
	c.Cycles += uint64(n)
	c.Timer += n
}

// AdvanceTo moves the clock forward to the specified cycle count. It does
// nothing if the clock is already at or past the target.
func (c *Clock) AdvanceTo(target uint64) {
	if target > c.Cycles {
		c.Add(uint32(target - c.Cycles))
	}
}

// DrainTimer returns the number of cycles accumulated since the last call to
// DrainTimer.
func (c *Clock) DrainTimer() uint32 {
	t := c.Timer
	c.Timer = 0
	return t
}
