// This file is part of hellosquare.
//
// hellosquare is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// hellosquare is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with hellosquare.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when the rest of the test depends on the value being correct. For
// example, demanding that two slices are the same length before iterating
// over them in unison.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. The
// nil value is considered a success because of how errors usually work (nil
// to indicate no error).
//
// CappedWriter implements io.Writer and should be used to capture output that
// may otherwise grow without limit.
package test
