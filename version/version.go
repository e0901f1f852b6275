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

// Package version reports the name and version of the application. The
// version number is set at build time with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/gopheradvance/version.number=v0.1.0"
//
// Without a version number the revision from the build information is used.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherAdvance"

// set by the linker. empty if the project was not built with a version number
var number string

// Version returns the version string and the revision string. The version
// string is "unreleased" if there is no version number but there is vcs
// information, and "local" if there is neither. The revision is suffixed with
// "+dirty" if the source had been modified since the last commit.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionString(false), "no revision information"
	}
	return revision(info.Settings)
}

func versionString(vcs bool) string {
	if number != "" {
		return number
	}
	if vcs {
		return "unreleased"
	}
	return "local"
}

func revision(settings []debug.BuildSetting) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	for _, v := range settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	return versionString(vcs), rev
}
