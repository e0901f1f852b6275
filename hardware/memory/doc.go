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

// Package memory implements the memory map of the console. The address space
// is divided into regions by the top byte of the address. The regions are
// mirrored within their window of the address space.
//
//	0x00000000  BIOS               16KiB
//	0x02000000  external work RAM  256KiB
//	0x03000000  internal work RAM  32KiB
//	0x04000000  I/O registers      1KiB   (see ioreg package)
//	0x05000000  palette RAM        1KiB
//	0x06000000  VRAM               96KiB
//	0x07000000  OAM                1KiB
//	0x08000000  cartridge ROM      up to 32MiB, mirrored at 0x0a and 0x0c
//	0x0e000000  cartridge SRAM     64KiB
//
// Reads from addresses that are not mapped return the "open bus" value, which
// is approximated by the most recent instruction fetch. Writes to unmapped
// addresses are ignored. Neither is an error.
//
// Every access adds cycles to the clock according to the wait states of the
// region. A 32bit access to a region with a 16bit bus counts as two accesses.
//
// When no BIOS image is attached a small replacement is installed. The
// replacement contains the exception vectors and an IRQ handler that calls
// the user handler at 0x03007ffc, in the same way as the real BIOS.
package memory
