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

package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/hardware/lcd"
	"golang.org/x/image/draw"
)

// ScreenshotError is returned by Save() for any failure.
const ScreenshotError = "screenshot: %v"

// Screenshot keeps a copy of the most recent frame.
type Screenshot struct {
	img      *image.RGBA
	frameNum int
}

// NewScreenshot is the preferred method of initialisation for the Screenshot
// type.
func NewScreenshot() *Screenshot {
	return &Screenshot{
		img: image.NewRGBA(image.Rect(0, 0, lcd.Width, lcd.Height)),
	}
}

// NewFrame implements the hardware.FrameRenderer interface.
func (scr *Screenshot) NewFrame(frame *lcd.Frame) error {
	for y := range frame {
		for x, p := range frame[y] {
			scr.img.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 0xff})
		}
	}
	scr.frameNum++
	return nil
}

// FrameNum returns the number of frames seen by the Screenshot.
func (scr *Screenshot) FrameNum() int {
	return scr.frameNum
}

// Image returns the most recent frame scaled by the specified amount. A scale
// of less than one is treated as a scale of one.
func (scr *Screenshot) Image(scale int) image.Image {
	if scale <= 1 {
		return scr.img
	}

	r := image.Rect(0, 0, lcd.Width*scale, lcd.Height*scale)
	dst := image.NewRGBA(r)
	draw.NearestNeighbor.Scale(dst, r, scr.img, scr.img.Bounds(), draw.Src, nil)
	return dst
}

// Save the most recent frame as a PNG file. An existing file will not be
// overwritten.
func (scr *Screenshot) Save(filename string, scale int) error {
	if scr.frameNum == 0 {
		return curated.Errorf(ScreenshotError, "no frame to save")
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return curated.Errorf(ScreenshotError, fmt.Sprintf("image file (%s) already exists", filename))
		}
		return curated.Errorf(ScreenshotError, err)
	}
	defer f.Close()

	err = png.Encode(f, scr.Image(scale))
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}

	return nil
}
