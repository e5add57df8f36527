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

// Package keys defines the abstract keys seen by the game. Printable keys
// use their ASCII value so that a Key can be used directly as a character.
// Keys without a printable representation have values from 256 upwards.
//
// Keys have names, used in binding files and in log entries:
//
//	k, err := keys.Parse("pageup")
//	fmt.Println(k)	// prints "pageup"
//
// The Shifted() function applies the shift substitution for the keyboard
// layout the game was written for.
package keys
