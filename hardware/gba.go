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

package hardware

import (
	"sync/atomic"

	"github.com/jetsetilly/gopheradvance/hardware/clocks"
	"github.com/jetsetilly/gopheradvance/hardware/cpu/arm7tdmi"
	"github.com/jetsetilly/gopheradvance/hardware/dma"
	"github.com/jetsetilly/gopheradvance/hardware/keypad"
	"github.com/jetsetilly/gopheradvance/hardware/lcd"
	"github.com/jetsetilly/gopheradvance/hardware/memory"
	"github.com/jetsetilly/gopheradvance/hardware/preferences"
	"github.com/jetsetilly/gopheradvance/hardware/timer"
	"github.com/jetsetilly/gopheradvance/logger"
)

// FatalError is returned by the Run functions when the emulation can not
// continue.
const FatalError = "gba: %v"

// FrameRenderer implementations receive every completed frame.
type FrameRenderer interface {
	NewFrame(frame *lcd.Frame) error
}

// GBA is the root of the emulation.
type GBA struct {
	Prefs *preferences.Preferences

	Clock  clocks.Clock
	Mem    *memory.Memory
	CPU    *arm7tdmi.ARM
	LCD    *lcd.LCD
	DMA    *dma.DMA
	Timers *timer.Timers
	Keypad *keypad.Keypad

	renderers []FrameRenderer

	// number of completed frames since the last reset
	frameNum int

	// cycle count at which the current portion of the scanline ends
	target uint64

	exit  atomic.Bool
	quiet atomic.Bool
}

// NewGBA creates a new GBA and everything associated with the hardware. The
// preferences argument can be nil, in which case the default values for all
// hardware preferences apply.
func NewGBA(prefs *preferences.Preferences) *GBA {
	gba := &GBA{
		Prefs: prefs,
	}

	gba.Mem = memory.NewMemory(gba, &gba.Clock)
	gba.CPU = arm7tdmi.NewARM(gba, gba.Mem, &gba.Clock)
	gba.LCD = lcd.NewLCD(gba.Mem)
	gba.DMA = dma.NewDMA(gba, gba.Mem)
	gba.Timers = timer.NewTimers(&gba.Mem.IO)
	gba.Keypad = keypad.NewKeypad(&gba.Mem.IO)

	if prefs != nil {
		gba.Mem.LogUnmapped = prefs.LogUnmapped.Get().(bool)
		prefs.LogUnmapped.SetHookPost(func(v any) error {
			gba.Mem.LogUnmapped = v.(bool)
			return nil
		})
	}

	gba.Reset()

	return gba
}

// AllowLogging implements the logger.Permission interface.
func (gba *GBA) AllowLogging() bool {
	return !gba.quiet.Load()
}

// Quiet suppresses logging from the emulation. Useful for headless runs where
// the log would otherwise fill with repeated entries.
func (gba *GBA) Quiet(quiet bool) {
	gba.quiet.Store(quiet)
}

// AddFrameRenderer adds a FrameRenderer to the list of renderers called at
// the end of each frame.
func (gba *GBA) AddFrameRenderer(r FrameRenderer) {
	gba.renderers = append(gba.renderers, r)
}

// LoadBIOS installs a BIOS image. The GBA is reset and will start from the
// reset vector of the BIOS.
func (gba *GBA) LoadBIOS(data []uint8) error {
	if err := gba.Mem.LoadBIOS(data); err != nil {
		return err
	}
	gba.Reset()
	return nil
}

// AttachCartridge inserts the cartridge data into the GBA and resets.
func (gba *GBA) AttachCartridge(data []uint8) {
	gba.Mem.AttachCartridge(data)
	gba.Reset()
}

// Reset the GBA. If there is no BIOS image then the processor is prepared
// as if the BIOS had completed and execution starts at the beginning of the
// cartridge.
func (gba *GBA) Reset() {
	gba.Mem.Reset()
	gba.LCD.Reset()
	gba.DMA.Reset()
	gba.Timers.Reset()
	gba.Keypad.Reset()

	gba.frameNum = 0
	gba.target = gba.Clock.Cycles

	if gba.Mem.HasBIOS() {
		gba.CPU.Reset()
	} else {
		gba.CPU.SkipBIOS(memory.OriginROM)
	}

	logger.Logf(gba, "GBA", "reset (bios=%v)", gba.Mem.HasBIOS())
}

// Exit causes Run() and RunForFrameCount() to return at the end of the
// current frame. Safe to call from any goroutine.
func (gba *GBA) Exit() {
	gba.exit.Store(true)
}

// FrameNum returns the number of frames completed since the last reset.
func (gba *GBA) FrameNum() int {
	return gba.frameNum
}

// Frame returns the most recent frame. The frame is updated as the
// emulation runs and should only be read from a FrameRenderer or when the
// emulation is not running.
func (gba *GBA) Frame() *lcd.Frame {
	return &gba.LCD.Frame
}
