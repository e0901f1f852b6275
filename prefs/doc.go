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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are declared with one of the types in this package
// (Bool, String, Int and Float) and added to a Disk instance with a key.
//
//	var scale prefs.Int
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("display.scale", &scale)
//	dsk.Load(true)
//
// The file on disk is a plain text file, with one key/value pair per line.
// Keys in the file that have not been added to the Disk instance are
// preserved when the file is saved. This means that more than one Disk
// instance can share the same file.
//
// Values can be overridden from the command line with
// PushCommandLineStack(). Command line values are consumed on the next
// Load() of a Disk containing the key.
package prefs
