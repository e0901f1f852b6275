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

// Package keypad implements the ten buttons of the console. The state of the
// buttons is presented to the CPU through KEYINPUT, where a pressed button
// reads as zero. KEYCNT can request an interrupt when a combination of
// buttons is pressed.
package keypad

import (
	"strings"

	"github.com/jetsetilly/gopheradvance/hardware/interrupts"
	"github.com/jetsetilly/gopheradvance/hardware/memory/ioreg"
)

// Key is a bit in KEYINPUT and KEYCNT.
type Key uint16

// List of keys.
const (
	A      Key = 0x0001
	B      Key = 0x0002
	Select Key = 0x0004
	Start  Key = 0x0008
	Right  Key = 0x0010
	Left   Key = 0x0020
	Up     Key = 0x0040
	Down   Key = 0x0080
	R      Key = 0x0100
	L      Key = 0x0200
)

const allKeys = 0x03ff

var keyNames = []string{"A", "B", "Select", "Start", "Right", "Left", "Up", "Down", "R", "L"}

func (k Key) String() string {
	var s []string
	for i, n := range keyNames {
		if k&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "+")
}

// bits of KEYCNT
const (
	cntIRQ = 0x4000
	cntAND = 0x8000
)

// Keypad is the console's buttons.
type Keypad struct {
	io *ioreg.Registers
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad(io *ioreg.Registers) *Keypad {
	kp := &Keypad{io: io}
	kp.Reset()
	return kp
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	kp.io.Set16(ioreg.KEYINPUT, allKeys)
}

// Pressed returns the keys that are currently held down.
func (kp *Keypad) Pressed() Key {
	return Key(^kp.io.Get16(ioreg.KEYINPUT) & allKeys)
}

// Press the key (or keys).
func (kp *Keypad) Press(k Key) {
	kp.io.Set16(ioreg.KEYINPUT, kp.io.Get16(ioreg.KEYINPUT)&^uint16(k))
	kp.Check()
}

// Release the key (or keys).
func (kp *Keypad) Release(k Key) {
	kp.io.Set16(ioreg.KEYINPUT, kp.io.Get16(ioreg.KEYINPUT)|uint16(k&allKeys))
	kp.Check()
}

// Check the interrupt condition in KEYCNT and request the keypad interrupt
// if it holds.
func (kp *Keypad) Check() {
	cnt := kp.io.Get16(ioreg.KEYCNT)
	if cnt&cntIRQ == 0 {
		return
	}

	sel := Key(cnt & allKeys)
	if sel == 0 {
		return
	}

	pressed := kp.Pressed()

	var cond bool
	if cnt&cntAND == cntAND {
		cond = pressed&sel == sel
	} else {
		cond = pressed&sel != 0
	}

	if cond {
		interrupts.Request(kp.io, interrupts.Keypad)
	}
}
