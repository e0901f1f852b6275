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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopheradvance/cartridgeloader"
	"github.com/jetsetilly/gopheradvance/gui"
	"github.com/jetsetilly/gopheradvance/gui/sdlplay"
	"github.com/jetsetilly/gopheradvance/hardware"
	"github.com/jetsetilly/gopheradvance/hardware/preferences"
	"github.com/jetsetilly/gopheradvance/logger"
	"github.com/jetsetilly/gopheradvance/modalflag"
	"github.com/jetsetilly/gopheradvance/performance"
	"github.com/jetsetilly/gopheradvance/prefs"
	"github.com/jetsetilly/gopheradvance/statsview"
	"github.com/jetsetilly/gopheradvance/userinput"
	"github.com/jetsetilly/gopheradvance/version"
)

// exit value of the program when an error has occurred
const errorExit = 10

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service() error
}

// frontend is what the RUN mode requires of a GUI. It must accept feature
// requests and it must be able to display the frames of the emulation.
type frontend interface {
	gui.GUI
	hardware.FrameRenderer
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy()
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err

				// g is not assigned to gui because a nil pointer inside a
				// non-nil interface would be serviced
				gui = nil
			} else {
				gui = g
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy()
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				if err := gui.Service(); err != nil {
					logger.Log(logger.Allow, "main", err)
				}
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "DIGEST", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: errorExit}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "HEADLESS":
		err = headless(md)

	case "DIGEST":
		err = digestMode(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: errorExit}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// setEcho starts or stops the echoing of the log to stderr.
func setEcho(echo bool) {
	if echo {
		logger.SetEcho(logger.EchoWriter(os.Stderr), false)
	} else {
		logger.SetEcho(nil, false)
	}
}

// loadPreferences with the command line preferences string. the string is
// applied over the values in the preferences file.
func loadPreferences(cmdline string) (*preferences.Preferences, error) {
	if cmdline != "" {
		prefs.PushCommandLineStack(cmdline)
		defer prefs.PopCommandLineStack()
	}
	return preferences.NewPreferences()
}

// newEmulation creates a GBA with the cartridge named by the only argument
// remaining in md. the biosFile argument takes priority over the BIOS
// preference.
func newEmulation(md *modalflag.Modes, pref *preferences.Preferences, biosFile string) (*hardware.GBA, cartridgeloader.Loader, error) {
	var cartload cartridgeloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, cartload, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, cartload, fmt.Errorf("too many arguments for %s mode", md)
	}

	cartload = cartridgeloader.NewLoader(md.GetArg(0))
	err := cartload.Load()
	if err != nil {
		return nil, cartload, err
	}

	gba := hardware.NewGBA(pref)

	if biosFile == "" && pref != nil {
		biosFile = pref.BIOS.Get().(string)
	}

	if biosFile != "" {
		biosload := cartridgeloader.NewLoader(biosFile)
		err = biosload.Load()
		if err != nil {
			return nil, cartload, err
		}
		err = gba.LoadBIOS(biosload.Data)
		if err != nil {
			return nil, cartload, err
		}
	}

	gba.AttachCartridge(cartload.Data)

	if h, ok := cartload.Header(); ok {
		logger.Logf(logger.Allow, "main", "cartridge: %s", h)
		if !h.ChecksumValid {
			logger.Logf(logger.Allow, "main", "cartridge header checksum is invalid")
		}
	}

	return gba, cartload, nil
}

// overridePreferences calls the setter for every flag that was given on the
// command line. Returns true if any setter was called. The first error stops
// any further setters from being called.
func overridePreferences(md *modalflag.Modes, setters map[string]func() error) (bool, error) {
	var overridden bool
	var err error
	md.Visit(func(flag string) {
		if err != nil {
			return
		}
		if set, ok := setters[flag]; ok {
			overridden = true
			err = set()
		}
	})
	return overridden, err
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS image (overrides preference)")
	scale := md.AddInt("scale", preferences.DefaultScale, "window scaling")
	fpsCap := md.AddBool("fpscap", preferences.DefaultFPSCap, "cap fps to the hardware refresh rate")
	fullScreen := md.AddBool("fullscreen", false, "start in full-screen mode")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stderr")
	cmdPrefs := md.AddString("prefs", "", "preferences to apply for this run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	pref, err := loadPreferences(*cmdPrefs)
	if err != nil {
		return err
	}

	// flags on the command line take priority over the preferences
	overridden, err := overridePreferences(md, map[string]func() error{
		"scale":  func() error { return pref.Scale.Set(*scale) },
		"fpscap": func() error { return pref.FPSCap.Set(*fpsCap) },
	})
	if err != nil {
		return err
	}

	if *stats {
		srv := statsview.Launch(os.Stdout)
		defer srv.Stop()
	}

	gba, cartload, err := newEmulation(md, pref, *bios)
	if err != nil {
		return err
	}

	events := make(chan userinput.Event, 16)

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(fmt.Sprintf("%s - %s", version.ApplicationName, cartload.ShortName()),
			pref.Scale.Get().(int), pref.FPS.Get().(float64), events)
	}

	// wait for creator result
	var scr frontend
	select {
	case g := <-sync.creation:
		var ok bool
		if scr, ok = g.(frontend); !ok {
			return fmt.Errorf("%T cannot be used as a frontend", g)
		}
	case err := <-sync.creationError:
		return err
	}

	err = scr.SetFeature(gui.ReqSetFPSCap, pref.FPSCap.Get().(bool))
	if err != nil {
		return err
	}

	err = scr.SetFeature(gui.ReqFullScreen, *fullScreen)
	if err != nil {
		return err
	}

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	// changes to the preferences are forwarded to the gui
	pref.Scale.SetHookPost(func(v prefs.Value) error {
		return scr.SetFeature(gui.ReqSetScale, v.(int))
	})
	pref.FPSCap.SetHookPost(func(v prefs.Value) error {
		return scr.SetFeature(gui.ReqSetFPSCap, v.(bool))
	})

	gba.AddFrameRenderer(scr)

	err = scr.SetFeature(gui.ReqState, gui.StateRunning)
	if err != nil {
		return err
	}

	var ctrl userinput.Controllers

	err = gba.Run(func() (bool, error) {
		for {
			select {
			case ev := <-events:
				ctrl.HandleUserInput(ev, gba.Keypad)
				if ctrl.Quit {
					return false, nil
				}
			default:
				return true, nil
			}
		}
	})
	if err != nil {
		return err
	}

	err = scr.SetFeature(gui.ReqState, gui.StateEnding)
	if err != nil {
		return err
	}

	// preferences from the command line are not saved
	if *cmdPrefs == "" && !overridden {
		return pref.Save()
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS image (overrides preference)")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log)

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		srv := statsview.Launch(os.Stdout)
		defer srv.Stop()
	}

	gba, _, err := newEmulation(md, nil, *bios)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prf, gba, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r := version.Version()
	fmt.Printf("%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}
