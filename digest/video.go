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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopheradvance/hardware/lcd"
)

const pixelDepth = 3

// Video is an implementation of the hardware.FrameRenderer interface. The
// digest of each frame is chained with the digest of the previous frame.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	// length of pixels array contains enough room for the previous frame's
	// digest value
	return &Video{
		pixels: make([]byte, sha1.Size+lcd.Width*lcd.Height*pixelDepth),
	}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frameNum = 0
}

// FrameNum returns the number of frames included in the digest.
func (dig *Video) FrameNum() int {
	return dig.frameNum
}

// NewFrame implements hardware.FrameRenderer interface.
func (dig *Video) NewFrame(frame *lcd.Frame) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	i := copy(dig.pixels, dig.digest[:])

	for y := range frame {
		for x := range frame[y] {
			copy(dig.pixels[i:], frame[y][x][:])
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum++
	return nil
}
