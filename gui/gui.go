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

// Package gui sits between the emulation and whatever is drawing the screen.
// Requests travel from the emulation to the GUI by way of SetFeature().
// Traffic in the other direction is in the form of userinput events.
//
// A GUI that displays the emulation will also satisfy the
// hardware.FrameRenderer interface.
package gui

// GUI is satisfied by any frontend that accepts feature requests.
type GUI interface {
	// SetFeature returns only once the request has been serviced by the GUI
	// thread. The error is the result of the request.
	SetFeature(request FeatureReq, args ...FeatureReqData) error

	// SetFeatureNoError is the same as SetFeature() but the result of the
	// request is discarded.
	SetFeatureNoError(request FeatureReq, args ...FeatureReqData)
}

// UnsupportedGuiFeature is returned by SetFeature() for requests the GUI
// does not understand.
const UnsupportedGuiFeature = "gui: unsupported feature request: %v"
