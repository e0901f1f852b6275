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

// Package ioreg implements the I/O register page of the console. The page is
// a 1KiB area of memory at 0x04000000. It is treated both as a flat byte
// buffer and as a set of named 8, 16 and 32 bit registers.
//
// Each named register has read and write masks. Bits outside the read mask
// always read as zero and bits outside the write mask can not be changed by
// the CPU. Offsets that are not part of any register are not mapped.
//
// The Read*() and Write*() functions are the CPU's view of the page. The
// Get*() and Set*() functions are for the hardware components that own the
// registers and ignore the masks.
//
// Some writes leave a "dirty" flag that is consumed by another part of the
// hardware: the rising edge of a DMA enable bit, a change to a timer control
// register, and writes to the affine reference point registers.
package ioreg
