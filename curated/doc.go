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

// Package curated wraps the plain Go error type so that errors raised by the
// emulation can be recognised by the pattern that created them, rather than
// by the formatted message.
//
// Errors are created with Errorf(), which takes a pattern and the values for
// the pattern's placeholders, exactly like fmt.Errorf():
//
//	e := curated.Errorf("arm7tdmi: cannot execute from %08x", pc)
//
// Is() checks the pattern of the most recent error in the chain. Has() checks
// every error in the chain:
//
//	f := curated.Errorf("gba: %v", e)
//
//	curated.Is(f, "gba: %v")                          // true
//	curated.Is(f, "arm7tdmi: cannot execute from %08x") // false
//	curated.Has(f, "arm7tdmi: cannot execute from %08x") // true
//
// Patterns that are tested for by other packages should be exported as
// constant strings by the package that raises them.
//
// The Error() implementation normalises the chain. A chain is the sequence of
// parts separated by ": " and adjacent duplicate parts are removed, so that
// wrapping an error with the same prefix more than once does not result in
// "gba: gba: ..." messages.
//
// IsAny() answers whether the error was created by this package at all. An
// uncurated error reaching the top of the program is a sign of an unexpected
// condition and the main program reports it differently.
package curated
