// This file is part of sdlport.
//
// sdlport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdlport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdlport.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. The pattern string given to Errorf() is retained by the
// error and can be tested for with the Is() and Has() functions.
//
//	err := curated.Errorf("bindings: %v", "file not found")
//
//	if curated.Is(err, "bindings: %v") {
//		...
//	}
//
// Wrapped errors, ie. errors that are passed as values to Errorf(), are
// reached by Has() and by the Unwrap() method. This means that curated errors
// also work with errors.Is() and errors.As() from the standard library.
//
// Error messages are normalised such that adjacent duplicate parts of the
// message chain are removed. For example:
//
//	e1 := curated.Errorf("input: %v", "bad button")
//	e2 := curated.Errorf("input: %v", e1)
//
// e2.Error() returns "input: bad button" and not "input: input: bad button".
package curated
