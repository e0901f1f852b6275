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

// Event represents all the different type of events that can occur in the gui.
type Event any

// KeyMod identifies the modifier keys held down with a key.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventQuit is sent when the gui has been asked to close.
type EventQuit struct{}

// EventKeyboard is sent on a keyboard event.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// HandleInput conceptualises data being sent to the console's keypad. The
// keypad.Keypad type satisfies this interface.
type HandleInput interface {
	Press(key keypad.Key)
	Release(key keypad.Key)
}
