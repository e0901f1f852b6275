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

import "github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"

// Layers is the input to the compositor for one scanline.
type Layers struct {
	BG [4]Line

	// a background is only considered by the compositor if the producer for
	// the layer has run
	BGEnabled [4]bool

	OBJ     Line
	ObjInfo ObjInfo
}

// clear the layers so that nothing is drawn
func (l *Layers) clear() {
	l.BGEnabled = [4]bool{}
	l.OBJ = Line{}
	l.ObjInfo = ObjInfo{}
}

// layer identifiers. these are also the bit positions in the window masks and
// in the two halves of BLDCNT
const (
	layerOBJ      = 4
	layerBackdrop = 5
)

// bit in the window mask that allows colour special effects
const windowBlend = 0x20

// blend modes from BLDCNT
const (
	blendNone = iota
	blendAlpha
	blendBrighten
	blendDarken
)

// window describes one of the two rectangular windows
type window struct {
	enabled bool
	left    int
	right   int
	top     int
	bottom  int
	mask    uint8
}

func newWindow(enabled bool, h uint16, v uint16, mask uint8) window {
	w := window{
		enabled: enabled,
		left:    int(h >> 8),
		right:   int(h & 0xff),
		top:     int(v >> 8),
		bottom:  int(v & 0xff),
		mask:    mask,
	}
	w.right = min(w.right, Width)
	w.bottom = min(w.bottom, Height)
	return w
}

// inside returns true if the point is inside the window. the right and bottom
// edges are exclusive. if the left edge is greater than the right edge the
// window wraps around the edge of the screen. the same for top and bottom
func (w window) inside(x int, y int) bool {
	var h, v bool
	if w.left <= w.right {
		h = x >= w.left && x < w.right
	} else {
		h = x >= w.left || x < w.right
	}
	if w.top <= w.bottom {
		v = y >= w.top && y < w.bottom
	} else {
		v = y >= w.top || y < w.bottom
	}
	return h && v
}

// blend state for a single screen position. updated every time an opaque
// pixel is drawn at that position
type blendState struct {
	source uint16
	target uint16

	sourceOnTop       bool
	targetDrawn       bool
	targetOverwritten bool

	// a semi-transparent object pixel has been drawn
	forceObj bool
}

// drawn updates the blend state for a pixel from the given layer. a layer in
// neither the source nor the target mask leaves the state unchanged
func (b *blendState) drawn(c uint16, layer int, forceSource bool, source uint8, target uint8) {
	switch {
	case forceSource || source&(1<<layer) != 0:
		b.sourceOnTop = true
		b.source = c
	case target&(1<<layer) != 0:
		if b.targetDrawn {
			b.targetOverwritten = true
		} else {
			b.targetDrawn = true
			b.target = c
		}
		b.sourceOnTop = false
	}
}

// alpha blending only happens if the only target drawn is beneath the source
func (b blendState) canAlpha() bool {
	return b.targetDrawn && !b.targetOverwritten && b.sourceOnTop
}

// Compose the layers into a row of RGB pixels for scanline y. The backdrop
// is the colour drawn where no layer has an opaque pixel.
func Compose(y int, layers *Layers, io *ioreg.Registers, backdrop uint16, out *[Width]RGB) {
	dispcnt := io.Get16(ioreg.DISPCNT)
	bldcnt := io.Get16(ioreg.BLDCNT)
	bldalpha := io.Get16(ioreg.BLDALPHA)
	evy := uint32(io.Get16(ioreg.BLDY) & 0x1f)
	eva := uint32(bldalpha & 0x1f)
	evb := uint32((bldalpha >> 8) & 0x1f)
	mode := (bldcnt >> 6) & 0x03
	source := uint8(bldcnt & 0x3f)
	target := uint8((bldcnt >> 8) & 0x3f)

	var priority [4]int
	for i := range priority {
		priority[i] = int(io.Get16(ioreg.BG0CNT+uint32(i)*2) & 0x03)
	}
	objEnabled := dispcnt&0x1000 == 0x1000

	winin := io.Get16(ioreg.WININ)
	winout := io.Get16(ioreg.WINOUT)
	win0 := newWindow(dispcnt&0x2000 == 0x2000, io.Get16(ioreg.WIN0H), io.Get16(ioreg.WIN0V), uint8(winin&0x3f))
	win1 := newWindow(dispcnt&0x4000 == 0x4000, io.Get16(ioreg.WIN1H), io.Get16(ioreg.WIN1V), uint8((winin>>8)&0x3f))
	objWin := dispcnt&0x8000 == 0x8000
	anyWindow := win0.enabled || win1.enabled || objWin

	for x := 0; x < Width; x++ {
		// the window is resolved once for the pixel. in order of priority:
		// window 0, window 1, object window, outside
		mask := uint8(0x3f)
		if anyWindow {
			switch {
			case win0.enabled && win0.inside(x, y):
				mask = win0.mask
			case win1.enabled && win1.inside(x, y):
				mask = win1.mask
			case objWin && layers.ObjInfo[x]&objWindow == objWindow:
				mask = uint8((winout >> 8) & 0x3f)
			default:
				mask = uint8(winout & 0x3f)
			}
		}

		var b blendState
		b.drawn(backdrop, layerBackdrop, false, source, target)
		pixel := backdrop

		info := layers.ObjInfo[x]
		objPriority := int(info&objPriorityMask) - 1

		for p := 3; p >= 0; p-- {
			for bg := 3; bg >= 0; bg-- {
				if !layers.BGEnabled[bg] || mask&(1<<bg) == 0 || priority[bg] != p {
					continue
				}
				if c := layers.BG[bg][x]; c&Opaque == Opaque {
					b.drawn(c, bg, false, source, target)
					pixel = c
				}
			}

			if objEnabled && objPriority == p && mask&(1<<layerOBJ) != 0 {
				if c := layers.OBJ[x]; c&Opaque == Opaque {
					semi := info&objSemiTransparent == objSemiTransparent
					b.drawn(c, layerOBJ, semi, source, target)
					b.forceObj = b.forceObj || semi
					pixel = c
				}
			}
		}

		top := ToRGB(pixel)

		if mask&windowBlend != windowBlend || mode == blendNone {
			out[x] = top
			continue
		}

		switch {
		case (mode == blendAlpha || b.forceObj) && b.canAlpha():
			out[x] = alpha(ToRGB(b.source), ToRGB(b.target), eva, evb)
		case b.sourceOnTop && mode == blendBrighten:
			out[x] = brighten(top, evy)
		case b.sourceOnTop && mode == blendDarken:
			out[x] = darken(top, evy)
		default:
			out[x] = top
		}
	}
}
