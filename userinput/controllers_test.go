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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/keypad"
	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
	"github.com/jetsetilly/gopheradvance/test"
	"github.com/jetsetilly/gopheradvance/userinput"
)

func TestKeyboard(t *testing.T) {
	var io ioreg.Registers
	kp := keypad.NewKeypad(&io)
	kp.Reset()

	var c userinput.Controllers

	c.HandleUserInput(userinput.EventKeyboard{Key: "X", Down: true}, kp)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectEquality(t, kp.Pressed(), keypad.A)

	c.HandleUserInput(userinput.EventKeyboard{Key: "Up", Down: true}, kp)
	test.ExpectEquality(t, kp.Pressed(), keypad.A|keypad.Up)

	// repeated keys are ignored
	c.HandleUserInput(userinput.EventKeyboard{Key: "Up", Down: false, Repeat: true}, kp)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectEquality(t, kp.Pressed(), keypad.A|keypad.Up)

	c.HandleUserInput(userinput.EventKeyboard{Key: "X", Down: false}, kp)
	test.ExpectEquality(t, kp.Pressed(), keypad.Up)

	// unmapped key
	c.HandleUserInput(userinput.EventKeyboard{Key: "Q", Down: true}, kp)
	test.ExpectFailure(t, c.LastKeyHandled)
	test.ExpectEquality(t, kp.Pressed(), keypad.Up)

	// key down with a modifier is not forwarded but key up is
	c.HandleUserInput(userinput.EventKeyboard{Key: "Return", Down: true, Mod: userinput.KeyModCtrl}, kp)
	test.ExpectFailure(t, c.LastKeyHandled)
	c.HandleUserInput(userinput.EventKeyboard{Key: "Up", Down: false, Mod: userinput.KeyModCtrl}, kp)
	test.ExpectSuccess(t, c.LastKeyHandled)
	test.ExpectEquality(t, kp.Pressed(), keypad.Key(0))
}

func TestQuit(t *testing.T) {
	var io ioreg.Registers
	kp := keypad.NewKeypad(&io)

	var c userinput.Controllers
	test.ExpectFailure(t, c.Quit)
	c.HandleUserInput(userinput.EventQuit{}, kp)
	test.ExpectSuccess(t, c.Quit)
}
