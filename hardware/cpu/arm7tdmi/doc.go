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

// Package arm7tdmi emulates the ARM7TDMI processor. Both the 32bit ARM
// instruction set and the 16bit Thumb instruction set are supported, along
// with the banked registers of the seven processor modes and the exception
// vectors.
//
// Instructions are decoded once, when the package is initialised, into two
// tables of functions. The ARM table has 4096 entries indexed by bits 27 to
// 20 and bits 7 to 4 of the instruction. The Thumb table has 256 entries
// indexed by the top eight bits of the instruction, with a secondary table of
// 16 entries for the ALU operations.
//
// The processor is stepped one instruction at a time with the Step()
// function. Between instructions the processor checks for pending
// interrupts by asking the Memory implementation.
//
// Program counter accounting is modelled as it appears to a program. Between
// instructions, PC() is the address of the next instruction to execute.
// During an instruction r15 reads as the address of the instruction plus 8
// (ARM) or plus 4 (Thumb).
package arm7tdmi
