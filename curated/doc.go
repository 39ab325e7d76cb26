// This file is part of Gopheradvance.
//
// Gopheradvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheradvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheradvance.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which behaves like the function of the same name in the
// fmt package except that the pattern is retained.
//
// The pattern is what identifies a curated error. Is() checks the outermost
// pattern of an error and Has() checks the entire chain:
//
//	e := curated.Errorf("scene: %v", err)
//	f := curated.Errorf("console: %v", e)
//
//	curated.Is(f, "scene: %v")  // false
//	curated.Has(f, "scene: %v") // true
//
// Packages declare the patterns they raise as exported constants so that
// callers can test for them without duplicating the string.
//
// The Error() implementation removes adjacent duplicate parts of the message,
// so a wrapping function doesn't need to worry about whether the error it
// received already carries the same prefix.
package curated
