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

package screenshot_test

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/lcd"
	"github.com/jetsetilly/gopheradvance/screenshot"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestScale(t *testing.T) {
	var frame lcd.Frame
	frame[1][2] = lcd.RGB{0x10, 0x20, 0x30}

	scr := screenshot.NewScreenshot()
	test.DemandSuccess(t, scr.NewFrame(&frame))

	img := scr.Image(1)
	test.ExpectEquality(t, img.Bounds().Dx(), lcd.Width)
	test.ExpectEquality(t, img.Bounds().Dy(), lcd.Height)

	img = scr.Image(3)
	test.ExpectEquality(t, img.Bounds().Dx(), lcd.Width*3)
	test.ExpectEquality(t, img.Bounds().Dy(), lcd.Height*3)

	exp := color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}
	for y := 3; y < 6; y++ {
		for x := 6; x < 9; x++ {
			test.ExpectEquality(t, color.RGBAModel.Convert(img.At(x, y)).(color.RGBA), exp)
		}
	}
	test.ExpectEquality(t, color.RGBAModel.Convert(img.At(9, 3)).(color.RGBA), color.RGBA{A: 0xff})
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "frame.png")

	scr := screenshot.NewScreenshot()

	// nothing to save before the first frame
	err := scr.Save(fn, 1)
	test.ExpectSuccess(t, curated.Is(err, screenshot.ScreenshotError))

	var frame lcd.Frame
	test.DemandSuccess(t, scr.NewFrame(&frame))
	test.DemandSuccess(t, scr.Save(fn, 2))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Width, lcd.Width*2)
	test.ExpectEquality(t, cfg.Height, lcd.Height*2)

	// existing files are not overwritten
	err = scr.Save(fn, 1)
	test.ExpectSuccess(t, curated.Is(err, screenshot.ScreenshotError))
}
