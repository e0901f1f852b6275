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

package logger
// Permission is consulted by every Log() and Logf() call. Emulation
// components hold the Permission of the GBA that owns them so that a quiet
// emulation (a digest run for example) can silence the whole tree at once.
type Permission interface {
	AllowLogging() bool
}

type fixed bool

func (p fixed) AllowLogging() bool {
	return bool(p)
}

// Allow should be used by code that is not part of an emulation, or by tests.
var Allow Permission = fixed(true)

// Deny discards the log entry. Used when a component is created outside of a
// running emulation and has no owner to ask.
var Deny Permission = fixed(false)
