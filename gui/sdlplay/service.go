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

package sdlplay

import (
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of milliseconds to wait for the first event in Service()
const serviceTimeout = 5

// send event to the emulation. events are dropped if the channel is full
func (scr *SdlPlay) sendEvent(ev userinput.Event) {
	select {
	case scr.userinput <- ev:
	default:
		logger.Logf(logger.Allow, "sdlplay", "dropped user input event (%T)", ev)
	}
}

// Service SDL events, feature requests and present the most recent frame.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() error {
	// wait for a short period for the first event and then retrieve
	// everything else that is pending
	ev := sdl.WaitEventTimeout(serviceTimeout)
	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.sendEvent(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			mod := userinput.KeyModNone

			if ev.Keysym.Mod&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				ev.Keysym.Mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = userinput.KeyModAlt
			} else if ev.Keysym.Mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				ev.Keysym.Mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = userinput.KeyModShift
			} else if ev.Keysym.Mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				ev.Keysym.Mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = userinput.KeyModCtrl
			}

			scr.sendEvent(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
				Mod:    mod,
			})
		}
	}

	// run any outstanding feature requests
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequests(r)
	default:
	}

	return scr.present()
}
