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

// Package curated wraps the plain Go error type with a "pattern" that can be
// tested for later on.
//
// Curated errors are created with Errorf(), which takes the same arguments as
// fmt.Errorf(). Unlike fmt.Errorf() the pattern string is kept and can be
// used to identify the error:
//
//	e := curated.Errorf(render.WindowCreationFailure, err)
//
//	if curated.Is(e, render.WindowCreationFailure) {
//		fmt.Println("no window")
//	}
//
// Has() is similar to Is() but searches the whole chain of curated values.
// A setup error that wraps a loader error will satisfy Has() for both
// patterns but Is() only for the outermost one.
//
// The Error() implementation removes adjacent duplicate parts of the message.
// This means it doesn't matter too much if a package wraps an error that
// already carries the package prefix:
//
//	render: render: window creation: no display
//
// is printed as
//
//	render: window creation: no display
package curated
