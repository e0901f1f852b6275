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

// Package logger is the central log for the emulator. Entries are made with a
// tag and a detail:
//
//	logger.Logf(logger.Allow, "DMA", "channel %d: count of zero", ch)
//
// Tags are short names for the subsystem making the entry. The hardware uses
// "ARM7", "memory", "DMA", "timer", "LCD" and "GBA". Repeated entries are
// collapsed into a single entry with a repeat count.
//
// The Permission argument controls whether the entry is actually made. The
// Allow value always permits logging. Emulation components pass the instance
// of the console instead, so that logging can be suppressed when the
// emulation is running in a context where logging is not wanted (for example,
// when creating a digest for regression purposes).
package logger
