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

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// ansi pens used by the colorizer
const (
	penTag    = "\033[36m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is drawn in a different colour to the detail.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	tag, detail, ok := bytes.Cut(p, []byte(": "))
	if !ok {
		return c.out.Write(p)
	}

	var b bytes.Buffer
	b.WriteString(penTag)
	b.Write(tag)
	b.WriteString(penNormal)
	b.WriteString(": ")
	b.Write(detail)

	_, err := c.out.Write(b.Bytes())
	if err != nil {
		return 0, err
	}

	return len(p), nil
}

// EchoWriter returns an io.Writer suitable for use with SetEcho(). Output is
// colorized only if the file is a terminal.
func EchoWriter(f *os.File) io.Writer {
	if term.IsTerminal(int(f.Fd())) {
		return NewColorizer(f)
	}
	return f
}
