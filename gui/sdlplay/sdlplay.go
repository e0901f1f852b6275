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
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopheradvance/gui"
	"github.com/jetsetilly/gopheradvance/hardware/lcd"
	"github.com/jetsetilly/gopheradvance/performance/limiter"
	"github.com/jetsetilly/gopheradvance/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	// connects SDL with the emulation. events are consumed by the goroutine
	// running the emulation
	userinput chan userinput.Event

	// feature requests are serviced by the main thread
	featureReq chan featureRequest
	featureErr chan error

	// limit frame presentation to a fixed fps
	lmtr   *limiter.FpsLimiter
	fpsCap atomic.Bool

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels of the most recent frame. copied to the texture by Service()
	crit    sync.Mutex
	pixels  []byte
	pending bool

	// the integer scaling of the window
	scale int32

	state gui.EmulationState
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(title string, scale int, fps float64, events chan userinput.Event) (*SdlPlay, error) {
	scr := &SdlPlay{
		userinput:  events,
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
		pixels:     make([]byte, lcd.Width*lcd.Height*pixelDepth),
	}

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// window is hidden until a ReqSetVisibility request
	scr.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		lcd.Width, lcd.Height,
		sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// the renderer scales the texture to the size of the window
	err = scr.renderer.SetLogicalSize(lcd.Width, lcd.Height)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	// texture is applied to the renderer to show the image. we copy the pixels
	// to it every frame
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		lcd.Width, lcd.Height)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	scr.setScale(scale)

	scr.lmtr = limiter.NewFPSLimiter(fps)
	scr.fpsCap.Store(true)

	return scr, nil
}

// Destroy SDL resources.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy() {
	if scr.lmtr != nil {
		scr.lmtr.Stop()
		scr.lmtr = nil
	}
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// scale values of less than one are ignored
func (scr *SdlPlay) setScale(scale int) {
	if scale < 1 {
		return
	}
	scr.scale = int32(scale)
	scr.window.SetSize(lcd.Width*scr.scale, lcd.Height*scr.scale)
}

// NewFrame implements the hardware.FrameRenderer interface.
func (scr *SdlPlay) NewFrame(frame *lcd.Frame) error {
	scr.crit.Lock()
	i := 0
	for y := range frame {
		for _, p := range frame[y] {
			scr.pixels[i] = p[0]
			scr.pixels[i+1] = p[1]
			scr.pixels[i+2] = p[2]
			i += pixelDepth
		}
	}
	scr.pending = true
	scr.crit.Unlock()

	if scr.fpsCap.Load() {
		scr.lmtr.Wait()
	}

	return nil
}

// copy pending frame to the texture and present it
func (scr *SdlPlay) present() error {
	scr.crit.Lock()
	if scr.pending {
		pixels, _, err := scr.texture.Lock(nil)
		if err != nil {
			scr.crit.Unlock()
			return err
		}
		copy(pixels, scr.pixels)
		scr.texture.Unlock()
		scr.pending = false
	}
	scr.crit.Unlock()

	err := scr.renderer.Clear()
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}
