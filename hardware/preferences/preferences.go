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

// Package preferences holds the hardware and display preferences of the
// emulator. Preferences are stored on disk with the prefs package.
package preferences

import (
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/prefs"
	"github.com/jetsetilly/gopheradvance/resources"
)

// Default values for the preferences.
const (
	DefaultScale  = 3
	DefaultFPSCap = true
	DefaultFPS    = 59.73
)

// Preferences defines and collates all the preference values used by the
// emulation.
type Preferences struct {
	dsk *prefs.Disk

	// path to the BIOS image. an empty string means the emulation will start
	// without a BIOS
	BIOS prefs.String

	// log reads and writes to unmapped areas of memory
	LogUnmapped prefs.Bool

	// integer scaling of the display window
	Scale prefs.Int

	// limit the frame rate to FPS
	FPSCap prefs.Bool
	FPS    prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.bios", &p.BIOS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.logUnmapped", &p.LogUnmapped)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.fpsCap", &p.FPSCap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.fps", &p.FPS)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.BIOS.Set("")
	_ = p.LogUnmapped.Set(false)
	_ = p.Scale.Set(DefaultScale)
	_ = p.FPSCap.Set(DefaultFPSCap)
	_ = p.FPS.Set(DefaultFPS)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
