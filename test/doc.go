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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure and allow the test to continue.
// The Demand*() functions report the failure and stop the test immediately.
// Use Demand*() when a failure would make the rest of the test meaningless,
// for example when an emulation component could not be created.
//
// The success and failure functions accept bool and error values. For a bool,
// true is success. For an error, nil is success.
//
// All functions take an optional list of tags that are prepended to the
// failure message. Tags help identify which iteration of a table driven test
// failed.
package test
