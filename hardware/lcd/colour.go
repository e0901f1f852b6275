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

package lcd

// Dimensions of the display.
const (
	Width  = 240
	Height = 160
)

// Opaque is the bit in a line buffer pixel that marks it as opaque.
const Opaque = 0x8000

// Transparent is the value of a transparent pixel in a line buffer.
const Transparent = 0x0000

// RGB is a pixel in the final display. Each channel is eight bits.
type RGB [3]uint8

// Frame is the final display. Row major, top to bottom.
type Frame [Height][Width]RGB

// Line is a line buffer for a single layer.
type Line [Width]uint16

// ObjInfo is the per pixel metadata produced by the object producer.
type ObjInfo [Width]uint8

// bits in the ObjInfo entries
const (
	// priority of the object pixel plus one. zero means there is no object
	// pixel
	objPriorityMask = 0x07

	// the pixel is inside the object window
	objWindow = 0x08

	// the pixel belongs to a semi-transparent object
	objSemiTransparent = 0x10
)

// expand a five bit colour channel to eight bits
func expand(c uint16) uint8 {
	return uint8((uint32(c&0x1f)*527 + 23) >> 6)
}

// ToRGB converts a 15bit colour to an eight bit per channel RGB value. The
// opaque bit is ignored.
func ToRGB(c uint16) RGB {
	return RGB{expand(c), expand(c >> 5), expand(c >> 10)}
}

// alpha blend two eight bit colours. eva and evb are clamped to 16
func alpha(a RGB, b RGB, eva uint32, evb uint32) RGB {
	eva = min(eva, 16)
	evb = min(evb, 16)
	var r RGB
	for i := range r {
		r[i] = uint8(min(255, uint32(a[i])*eva>>4+uint32(b[i])*evb>>4))
	}
	return r
}

// increase brightness by evy/16. evy is clamped to 16
func brighten(a RGB, evy uint32) RGB {
	evy = min(evy, 16)
	var r RGB
	for i := range r {
		c := uint32(a[i])
		r[i] = uint8(c + ((255-c)*evy)>>4)
	}
	return r
}

// decrease brightness by evy/16. evy is clamped to 16
func darken(a RGB, evy uint32) RGB {
	evy = min(evy, 16)
	var r RGB
	for i := range r {
		c := uint32(a[i])
		r[i] = uint8(c - (c*evy)>>4)
	}
	return r
}
