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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/digest"
	"github.com/jetsetilly/gopheradvance/hardware/lcd"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestChaining(t *testing.T) {
	var frame lcd.Frame

	a := digest.NewVideo()
	b := digest.NewVideo()

	test.DemandSuccess(t, a.NewFrame(&frame))
	test.DemandSuccess(t, b.NewFrame(&frame))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectEquality(t, len(a.Hash()), 40)

	// identical frames produce a different hash because of chaining
	first := a.Hash()
	test.DemandSuccess(t, a.NewFrame(&frame))
	test.ExpectInequality(t, a.Hash(), first)
	test.ExpectEquality(t, a.FrameNum(), 2)

	// a single pixel change alters the digest
	frame[80][120] = lcd.RGB{0xff, 0x00, 0x00}
	test.DemandSuccess(t, b.NewFrame(&frame))
	test.ExpectInequality(t, a.Hash(), b.Hash())
}

func TestReset(t *testing.T) {
	var frame lcd.Frame

	dig := digest.NewVideo()
	zero := dig.Hash()
	test.DemandSuccess(t, dig.NewFrame(&frame))
	test.ExpectInequality(t, dig.Hash(), zero)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
	test.ExpectEquality(t, dig.FrameNum(), 0)
}
