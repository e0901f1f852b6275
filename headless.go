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

	"github.com/jetsetilly/gopheradvance/digest"
	"github.com/jetsetilly/gopheradvance/modalflag"
	"github.com/jetsetilly/gopheradvance/screenshot"
	"golang.org/x/term"
)

// number of frames between progress reports in headless mode
const progressInterval = 60

func headless(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS image (overrides preference)")
	frames := md.AddInt("frames", 60, "number of frames to run")
	shot := md.AddString("screenshot", "", "save the final frame to a PNG file")
	scale := md.AddInt("scale", 1, "scaling of the screenshot")
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

	gba, cartload, err := newEmulation(md, pref, *bios)
	if err != nil {
		return err
	}

	scr := screenshot.NewScreenshot()
	gba.AddFrameRenderer(scr)

	// progress is only shown on a terminal
	progress := term.IsTerminal(int(os.Stdout.Fd()))

	err = gba.RunForFrameCount(*frames, func(frame int) (bool, error) {
		if progress && frame%progressInterval == 0 {
			fmt.Printf("\r%s: frame %d/%d", cartload.ShortName(), frame, *frames)
		}
		return true, nil
	})
	if progress {
		fmt.Print("\r")
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d frames\n", cartload.ShortName(), gba.FrameNum())

	if *shot != "" {
		err = scr.Save(*shot, *scale)
		if err != nil {
			return err
		}
		fmt.Printf("screenshot saved to %s\n", *shot)
	}

	return nil
}

func digestMode(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS image")
	frames := md.AddInt("frames", 60, "number of frames to include in the digest")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// preferences are not used in digest mode. the digest should not depend
	// on the environment
	gba, _, err := newEmulation(md, nil, *bios)
	if err != nil {
		return err
	}
	gba.Quiet(true)

	dig := digest.NewVideo()
	gba.AddFrameRenderer(dig)

	err = gba.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	fmt.Println(dig.Hash())

	return nil
}
