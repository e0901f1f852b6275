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

// Package hardware is the base package for the emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The GBA type is the root of the emulation and contains references to all
// the sub-systems. The emulation is advanced a frame at a time with
// RunFrame(), or continuously with Run() and RunForFrameCount().
//
// Frames are delivered to every FrameRenderer added to the GBA. Renderers
// are called at the end of each frame, from the goroutine running the
// emulation.
package hardware
