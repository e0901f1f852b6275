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

package cartridgeloader

import (
	"fmt"
	"strings"
)

// location and size of fields in the cartridge header
const (
	headerTitle    = 0xa0
	headerCode     = 0xac
	headerMaker    = 0xb0
	headerFixed    = 0xb2
	headerVersion  = 0xbc
	headerChecksum = 0xbd
	headerSize     = 0xc0
)

// Header is the information in the header of a cartridge.
type Header struct {
	Title   string
	Code    string
	Maker   string
	Version uint8

	// the complement check of the header. the BIOS refuses to start a
	// cartridge if the check fails
	Checksum      uint8
	ChecksumValid bool
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s%s] v%d", h.Title, h.Code, h.Maker, h.Version)
}

// trailing zero bytes are not part of the text fields
func text(b []uint8) string {
	return strings.TrimRight(string(b), "\x00 ")
}

// Header parses the cartridge header of the loaded data. Returns false if the
// data is too short to contain a header.
func (cl Loader) Header() (Header, bool) {
	if len(cl.Data) < headerSize {
		return Header{}, false
	}

	d := cl.Data
	h := Header{
		Title:    text(d[headerTitle:headerCode]),
		Code:     text(d[headerCode:headerMaker]),
		Maker:    text(d[headerMaker:headerFixed]),
		Version:  d[headerVersion],
		Checksum: d[headerChecksum],
	}

	var chk uint8
	for _, v := range d[headerTitle:headerChecksum] {
		chk -= v
	}
	chk -= 0x19
	h.ChecksumValid = chk == h.Checksum

	return h, true
}
