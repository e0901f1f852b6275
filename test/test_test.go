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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopheradvance/test"
)

func TestSuccessAndFailure(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("failure"))

	var err error
	test.ExpectSuccess(t, err)
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, uint32(0x08000000), 0x08000000)
	test.ExpectInequality(t, "foo", "bar")
	test.ExpectApproximate(t, 59.7275, 59.73, 0.01)
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	_, _ = tw.Write([]byte("hello"))
	test.ExpectSuccess(t, tw.Compare("hello"))
	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
