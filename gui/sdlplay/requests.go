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
	"fmt"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/gui"
	"github.com/veandco/go-sdl2/sdl"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements the gui.GUI interface.
//
// MUST NOT be called from the #mainthread
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// SetFeatureNoError implements the gui.GUI interface.
//
// MUST NOT be called from the #mainthread
func (scr *SdlPlay) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	scr.featureReq <- featureRequest{request: request, args: args}
	<-scr.featureErr
}

// featureRequests have been handed over to the featureReq channel. we service
// any requests on that channel here.
func (scr *SdlPlay) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- fmt.Errorf("sdlplay: %s: %v", request.request, r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqState:
		scr.state = request.args[0].(gui.EmulationState)

	case gui.ReqSetVisibility:
		scr.showWindow(request.args[0].(bool))

	case gui.ReqFullScreen:
		if request.args[0].(bool) {
			err = scr.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
		} else {
			err = scr.window.SetFullscreen(0)
		}

	case gui.ReqSetScale:
		scr.setScale(request.args[0].(int))

	case gui.ReqSetFPSCap:
		scr.fpsCap.Store(request.args[0].(bool))

	case gui.ReqSetTitle:
		scr.window.SetTitle(request.args[0].(string))

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.featureErr <- err
}
