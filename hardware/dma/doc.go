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

// Package dma implements the four DMA channels of the console. A channel is
// configured through its registers in the I/O page and started either
// immediately, at the start of vertical blank or at the start of horizontal
// blank. A transfer always runs to completion before the CPU continues.
//
// The special timing mode of channels one to three is used for the sound FIFO
// and video capture. Neither is emulated and channels with special timing are
// never started.
package dma
