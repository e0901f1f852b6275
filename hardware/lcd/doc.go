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

// Package lcd produces the 240x160 display of the console one scanline at a
// time.
//
// Rendering a scanline is in two stages. The scanline producers selected by
// the mode field of DISPCNT fill a line buffer for each background layer and
// for the object (sprite) layer. The compositor then combines the line
// buffers into a row of RGB pixels, taking into account layer priority, the
// two rectangular windows, the object window and the colour special effects
// (alpha blending and brightness).
//
// Pixels in the line buffers are 15bit colours with bit 15 set when the pixel
// is opaque. Colour zero with bit 15 clear is transparent.
//
// The compositor is available separately as the Compose() function. Its
// output depends only on the Layers, the I/O registers and the backdrop
// colour.
package lcd
