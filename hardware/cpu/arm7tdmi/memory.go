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

package arm7tdmi

// Memory is the memory bus as seen by the processor. Access timing is the
// responsibility of the Memory implementation.
type Memory interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, data uint8)
	Write16(addr uint32, data uint16)
	Write32(addr uint32, data uint32)

	// instruction fetches. implementations may use the value fetched as the
	// open bus value
	Prefetch16(addr uint32) uint16
	Prefetch32(addr uint32) uint32

	// returns true if address contains executable instructions
	IsExecutable(addr uint32) bool

	// returns true if an interrupt request is pending and the master enable
	// is set. the CPSR interrupt mask is checked by the processor
	InterruptPending() bool
}
