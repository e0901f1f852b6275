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

package lcd_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/lcd"
	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
	"github.com/jetsetilly/gopheradvance/test"
)

const (
	red   = 0x001f | lcd.Opaque
	green = 0x03e0 | lcd.Opaque
	blue  = 0x7c00 | lcd.Opaque
	white = 0x7fff
	black = 0x0000
)

var (
	rgbRed   = lcd.RGB{255, 0, 0}
	rgbGreen = lcd.RGB{0, 255, 0}
	rgbBlue  = lcd.RGB{0, 0, 255}
	rgbWhite = lcd.RGB{255, 255, 255}
	rgbBlack = lcd.RGB{0, 0, 0}
)

func prepareRegisters() *ioreg.Registers {
	io := &ioreg.Registers{}
	io.Reset()
	return io
}

// fill a layer with a single colour
func fill(l *lcd.Line, c uint16) {
	for i := range l {
		l[i] = c
	}
}

func compose(layers *lcd.Layers, io *ioreg.Registers, backdrop uint16) [lcd.Width]lcd.RGB {
	var out [lcd.Width]lcd.RGB
	lcd.Compose(0, layers, io, backdrop, &out)
	return out
}

func expectLine(t *testing.T, out [lcd.Width]lcd.RGB, c lcd.RGB, tags ...any) {
	t.Helper()
	for x := range out {
		if !test.ExpectEquality(t, out[x], c, append(tags, x)...) {
			return
		}
	}
}

func TestColourExpansion(t *testing.T) {
	test.ExpectEquality(t, lcd.ToRGB(0x7fff), rgbWhite)
	test.ExpectEquality(t, lcd.ToRGB(0x0000), rgbBlack)
	test.ExpectEquality(t, lcd.ToRGB(red), rgbRed)
	test.ExpectEquality(t, lcd.ToRGB(0x0010), lcd.RGB{132, 0, 0})
}

func TestBackdropOnly(t *testing.T) {
	io := prepareRegisters()
	var layers lcd.Layers
	out := compose(&layers, io, white)
	expectLine(t, out, rgbWhite)
}

func TestBGTieBreak(t *testing.T) {
	io := prepareRegisters()
	var layers lcd.Layers
	fill(&layers.BG[0], red)
	fill(&layers.BG[1], blue)
	layers.BGEnabled[0] = true
	layers.BGEnabled[1] = true

	out := compose(&layers, io, black)
	expectLine(t, out, rgbRed)
}

func TestBGPriority(t *testing.T) {
	io := prepareRegisters()
	io.Set16(ioreg.BG0CNT, 0x0001)
	var layers lcd.Layers
	fill(&layers.BG[0], red)
	fill(&layers.BG[1], blue)
	layers.BGEnabled[0] = true
	layers.BGEnabled[1] = true

	out := compose(&layers, io, black)
	expectLine(t, out, rgbBlue)

	// transparent pixels show the layer beneath
	layers.BG[1][10] = lcd.Transparent
	out = compose(&layers, io, black)
	test.ExpectEquality(t, out[10], rgbRed)
	test.ExpectEquality(t, out[11], rgbBlue)

	// a layer not produced is not drawn even if it contains data
	layers.BGEnabled[1] = false
	out = compose(&layers, io, black)
	expectLine(t, out, rgbRed)
}

func TestOBJPriority(t *testing.T) {
	io := prepareRegisters()
	io.Set16(ioreg.DISPCNT, 0x1000)
	io.Set16(ioreg.BG0CNT, 0x0001)

	var layers lcd.Layers
	fill(&layers.BG[0], red)
	layers.BGEnabled[0] = true
	fill(&layers.OBJ, blue)

	// object at the same priority as the background is on top
	for x := range layers.ObjInfo {
		layers.ObjInfo[x] = 2
	}
	out := compose(&layers, io, black)
	expectLine(t, out, rgbBlue)

	// object with a lower priority is beneath
	for x := range layers.ObjInfo {
		layers.ObjInfo[x] = 3
	}
	out = compose(&layers, io, black)
	expectLine(t, out, rgbRed)

	// no object pixel
	layers.ObjInfo = lcd.ObjInfo{}
	io.Set16(ioreg.BG0CNT, 0x0003)
	out = compose(&layers, io, black)
	expectLine(t, out, rgbRed)

	// objects disabled in DISPCNT
	for x := range layers.ObjInfo {
		layers.ObjInfo[x] = 1
	}
	io.Set16(ioreg.DISPCNT, 0x0000)
	out = compose(&layers, io, black)
	expectLine(t, out, rgbRed)
}

func TestAlphaBlend(t *testing.T) {
	io := prepareRegisters()
	io.Set16(ioreg.DISPCNT, 0x1000)
	io.Set16(ioreg.BLDCNT, 0x0150)
	io.Set16(ioreg.BLDALPHA, 0x0808)

	var layers lcd.Layers
	fill(&layers.BG[0], green)
	layers.BGEnabled[0] = true
	fill(&layers.OBJ, red)
	for x := range layers.ObjInfo {
		layers.ObjInfo[x] = 1
	}

	out := compose(&layers, io, black)
	expectLine(t, out, lcd.RGB{127, 127, 0})

	// coefficients are clamped to 16
	io.Set16(ioreg.BLDALPHA, 0x1f1f)
	out = compose(&layers, io, black)
	expectLine(t, out, lcd.RGB{255, 255, 0})

	// no blending if the layer beneath is not a target
	io.Set16(ioreg.BLDCNT, 0x0250)
	out = compose(&layers, io, black)
	expectLine(t, out, rgbRed)
}

func TestAlphaBlendStackedTargets(t *testing.T) {
	io := prepareRegisters()
	io.Set16(ioreg.BG1CNT, 0x0001)
	io.Set16(ioreg.BG2CNT, 0x0002)

	// source BG0, targets BG1 and BG2
	io.Set16(ioreg.BLDCNT, 0x0641)
	io.Set16(ioreg.BLDALPHA, 0x1010)

	var layers lcd.Layers
	fill(&layers.BG[0], red)
	fill(&layers.BG[1], green)
	fill(&layers.BG[2], blue)
	layers.BGEnabled = [4]bool{true, true, true, false}

	// BG1 has overwritten the BG2 target so there is no blending
	out := compose(&layers, io, black)
	expectLine(t, out, rgbRed)

	// BG1 transparent at one pixel. BG0 blends with BG2
	layers.BG[1][5] = lcd.Transparent
	out = compose(&layers, io, black)
	test.ExpectEquality(t, out[4], rgbRed)
	test.ExpectEquality(t, out[5], lcd.RGB{255, 0, 255})
	test.ExpectEquality(t, out[6], rgbRed)

	// the backdrop is a target too. it is always overwritten by BG2
	io.Set16(ioreg.BLDCNT, 0x2441)
	layers.BGEnabled[1] = false
	out = compose(&layers, io, black)
	expectLine(t, out, rgbRed)
}

func TestAlphaBlendNeutralLayer(t *testing.T) {
	io := prepareRegisters()
	io.Set16(ioreg.BG1CNT, 0x0001)

	// source BG0, target backdrop. BG1 is in neither mask
	io.Set16(ioreg.BLDCNT, 0x2041)
	io.Set16(ioreg.BLDALPHA, 0x1010)

	var layers lcd.Layers
	fill(&layers.BG[0], red)
	fill(&layers.BG[1], green)
	layers.BGEnabled = [4]bool{true, true, false, false}

	// BG1 between the source and the target does not prevent blending
	out := compose(&layers, io, blue)
	expectLine(t, out, lcd.RGB{255, 0, 255})

	// BG1 on top of the source. the source and target pixels are still
	// blended even though BG1 is the visible layer
	io.Set16(ioreg.BG0CNT, 0x0001)
	io.Set16(ioreg.BG1CNT, 0x0000)
	out = compose(&layers, io, blue)
	expectLine(t, out, lcd.RGB{255, 0, 255})

	// BG1 as a target on top of the source stops the blending
	io.Set16(ioreg.BLDCNT, 0x2241)
	out = compose(&layers, io, blue)
	expectLine(t, out, rgbGreen)
}

func TestBrightnessNeutralLayer(t *testing.T) {
	io := prepareRegisters()
	io.Set16(ioreg.BG1CNT, 0x0001)

	// brighten with source BG1. BG0 is in neither mask and is on top
	io.Set16(ioreg.BLDCNT, 0x0082)
	io.Set16(ioreg.BLDY, 16)

	var layers lcd.Layers
	fill(&layers.BG[0], green)
	fill(&layers.BG[1], red)
	layers.BGEnabled = [4]bool{true, true, false, false}

	// the visible pixel is brightened because the source is still on top of
	// any target
	out := compose(&layers, io, black)
	expectLine(t, out, rgbWhite)

	// BG0 as a target clears the source
	io.Set16(ioreg.BLDCNT, 0x0182)
	out = compose(&layers, io, black)
	expectLine(t, out, rgbGreen)
}

func TestAlphaBlendBackdrop(t *testing.T) {
	io := prepareRegisters()

	// source BG0, target backdrop
	io.Set16(ioreg.BLDCNT, 0x2041)
	io.Set16(ioreg.BLDALPHA, 0x1010)

	var layers lcd.Layers
	fill(&layers.BG[0], red)
	layers.BGEnabled[0] = true

	out := compose(&layers, io, blue)
	expectLine(t, out, lcd.RGB{255, 0, 255})
}

func TestSemiTransparentObject(t *testing.T) {
	io := prepareRegisters()
	io.Set16(ioreg.DISPCNT, 0x1000)
	io.Set16(ioreg.BLDALPHA, 0x0808)

	var layers lcd.Layers
	fill(&layers.BG[0], green)
	layers.BGEnabled[0] = true
	fill(&layers.OBJ, red)
	for x := range layers.ObjInfo {
		layers.ObjInfo[x] = 0x10 | 1
	}

	// target BG0 only. the object is not in the source mask and the blend
	// mode is brighten but the semi-transparent object is alpha blended
	io.Set16(ioreg.BLDCNT, 0x0180)
	out := compose(&layers, io, black)
	expectLine(t, out, lcd.RGB{127, 127, 0})

	// no forced blending if blend mode is zero
	io.Set16(ioreg.BLDCNT, 0x0100)
	out = compose(&layers, io, black)
	expectLine(t, out, rgbRed)
}

func TestBrightness(t *testing.T) {
	io := prepareRegisters()

	var layers lcd.Layers
	fill(&layers.BG[0], red)
	layers.BGEnabled[0] = true

	io.Set16(ioreg.BLDCNT, 0x0081)
	io.Set16(ioreg.BLDY, 8)
	out := compose(&layers, io, black)
	expectLine(t, out, lcd.RGB{255, 127, 127})

	io.Set16(ioreg.BLDY, 16)
	out = compose(&layers, io, black)
	expectLine(t, out, rgbWhite)

	io.Set16(ioreg.BLDCNT, 0x00c1)
	io.Set16(ioreg.BLDY, 8)
	out = compose(&layers, io, black)
	expectLine(t, out, lcd.RGB{128, 0, 0})

	// evy is clamped to 16
	io.Set16(ioreg.BLDY, 31)
	out = compose(&layers, io, black)
	expectLine(t, out, rgbBlack)

	// backdrop is a source like any other layer
	io.Set16(ioreg.BLDCNT, 0x00e0)
	io.Set16(ioreg.BLDY, 16)
	layers.BGEnabled[0] = false
	out = compose(&layers, io, white)
	expectLine(t, out, rgbBlack)
}

func TestWindows(t *testing.T) {
	io := prepareRegisters()

	// window 0 from x=10 to x=20, full height
	io.Set16(ioreg.DISPCNT, 0x2000)
	io.Set16(ioreg.WIN0H, 10<<8|20)
	io.Set16(ioreg.WIN0V, 0<<8|160)

	// inside shows BG1 only, outside shows BG0 only
	io.Set16(ioreg.WININ, 0x0002)
	io.Set16(ioreg.WINOUT, 0x0001)

	var layers lcd.Layers
	fill(&layers.BG[0], red)
	fill(&layers.BG[1], blue)
	layers.BGEnabled[0] = true
	layers.BGEnabled[1] = true

	out := compose(&layers, io, black)
	test.ExpectEquality(t, out[9], rgbRed)
	test.ExpectEquality(t, out[10], rgbBlue)
	test.ExpectEquality(t, out[19], rgbBlue)
	test.ExpectEquality(t, out[20], rgbRed)

	// window wraps around the edge of the screen
	io.Set16(ioreg.WIN0H, 200<<8|40)
	out = compose(&layers, io, black)
	test.ExpectEquality(t, out[0], rgbBlue)
	test.ExpectEquality(t, out[39], rgbBlue)
	test.ExpectEquality(t, out[40], rgbRed)
	test.ExpectEquality(t, out[199], rgbRed)
	test.ExpectEquality(t, out[200], rgbBlue)
	test.ExpectEquality(t, out[239], rgbBlue)

	// window does not include the scanline
	io.Set16(ioreg.WIN0V, 50<<8|60)
	out = compose(&layers, io, black)
	expectLine(t, out, rgbRed)
}

func TestWindowPriority(t *testing.T) {
	io := prepareRegisters()

	// window 0 and window 1 overlap. window 0 wins
	io.Set16(ioreg.DISPCNT, 0x6000)
	io.Set16(ioreg.WIN0H, 0<<8|100)
	io.Set16(ioreg.WIN0V, 0<<8|160)
	io.Set16(ioreg.WIN1H, 50<<8|150)
	io.Set16(ioreg.WIN1V, 0<<8|160)
	io.Set16(ioreg.WININ, 0x0201)
	io.Set16(ioreg.WINOUT, 0x0000)

	var layers lcd.Layers
	fill(&layers.BG[0], red)
	fill(&layers.BG[1], blue)
	layers.BGEnabled[0] = true
	layers.BGEnabled[1] = true

	out := compose(&layers, io, green)
	test.ExpectEquality(t, out[75], rgbRed)
	test.ExpectEquality(t, out[125], rgbBlue)
	test.ExpectEquality(t, out[200], rgbGreen)
}

func TestObjectWindow(t *testing.T) {
	io := prepareRegisters()
	io.Set16(ioreg.DISPCNT, 0x9000)

	// object window shows BG1, outside shows BG0
	io.Set16(ioreg.WINOUT, 0x0201)

	var layers lcd.Layers
	fill(&layers.BG[0], red)
	fill(&layers.BG[1], blue)
	layers.BGEnabled[0] = true
	layers.BGEnabled[1] = true
	layers.ObjInfo[30] = 0x08

	out := compose(&layers, io, black)
	test.ExpectEquality(t, out[29], rgbRed)
	test.ExpectEquality(t, out[30], rgbBlue)
	test.ExpectEquality(t, out[31], rgbRed)

	// the object window is selected by DISPCNT bit 15 alone
	io.Set16(ioreg.DISPCNT, 0x8000)
	out = compose(&layers, io, black)
	test.ExpectEquality(t, out[29], rgbRed)
	test.ExpectEquality(t, out[30], rgbBlue)
	test.ExpectEquality(t, out[31], rgbRed)
}

func TestWindowBlendDisabled(t *testing.T) {
	io := prepareRegisters()
	io.Set16(ioreg.DISPCNT, 0x2000)
	io.Set16(ioreg.WIN0H, 0<<8|120)
	io.Set16(ioreg.WIN0V, 0<<8|160)

	// effects allowed inside window 0 only
	io.Set16(ioreg.WININ, 0x0021)
	io.Set16(ioreg.WINOUT, 0x0001)
	io.Set16(ioreg.BLDCNT, 0x00c1)
	io.Set16(ioreg.BLDY, 16)

	var layers lcd.Layers
	fill(&layers.BG[0], red)
	layers.BGEnabled[0] = true

	out := compose(&layers, io, black)
	test.ExpectEquality(t, out[0], rgbBlack)
	test.ExpectEquality(t, out[119], rgbBlack)
	test.ExpectEquality(t, out[120], rgbRed)
}
