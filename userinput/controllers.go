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

package userinput

import "github.com/jetsetilly/gopheradvance/hardware/keypad"

// the default mapping of key names to the GBA keypad
var keyMap = map[string]keypad.Key{
	"X":         keypad.A,
	"Z":         keypad.B,
	"Backspace": keypad.Select,
	"Return":    keypad.Start,
	"Right":     keypad.Right,
	"Left":      keypad.Left,
	"Up":        keypad.Up,
	"Down":      keypad.Down,
	"S":         keypad.R,
	"A":         keypad.L,
}

// Controllers keeps track of hardware userinput options.
type Controllers struct {
	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation as an input
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool
}

// HandleUserInput deciphers the Event and forwards the input to the keypad.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		c.keyboard(ev, handle)
	}
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) {
	if ev.Repeat {
		return
	}

	// keys with modifiers are never forwarded to the keypad. the exception
	// is the key up event, which must always be forwarded or the key will
	// stick
	if ev.Down && ev.Mod != KeyModNone {
		return
	}

	key, ok := keyMap[ev.Key]
	if !ok {
		return
	}

	if ev.Down {
		handle.Press(key)
	} else {
		handle.Release(key)
	}

	c.LastKeyHandled = true
}
