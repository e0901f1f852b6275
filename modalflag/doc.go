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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes (and sub-modes), each with their own set of flags.
//
// The arguments are given to NewArgs() and then processed with Parse(). A
// program with no modes uses the package in much the same way as flag.FlagSet:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	scale := md.AddInt("scale", 3, "window scaling")
//	_, _ = md.Parse()
//
// Arguments that are not flags are retrieved after parsing with
// RemainingArgs() or GetArg().
//
// A mode is a command line argument that selects a different mode of
// operation for the program. The modes available for the next Parse() are
// named with AddSubModes(). The first one is the default.
//
//	md.AddSubModes("RUN", "HEADLESS", "DIGEST")
//
// Comparisons are case insensitive. After a successful Parse(), Mode() returns
// the selected mode. Flags for the selected mode are then added after a call
// to NewMode() and Parse() is called again. Flags are therefore positional: a
// flag given before the mode selector belongs to the outer mode.
//
//	gopheradvance -log HEADLESS -frames 120 game.gba
//
// Path() returns all modes selected so far, joined with a slash. This is
// useful for error messages.
//
// Help is printed automatically when the -help or -h flag is seen. The help
// lists the flags, the available sub-modes and any additional help added with
// AdditionalHelp(). Parse() returns ParseHelp in that case.
package modalflag
