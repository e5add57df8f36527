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

// Package bindings holds the user configurable key bindings. There are two
// kinds of binding:
//
// Named bindings map a name to a key. The mouse wheel uses the names "b4"
// (wheel up) and "b3" (wheel down).
//
// Button bindings replace the keys of a button in the touch layout. The
// button is identified by its name in the layout.
//
// Bindings are read from TOML or YAML files, the format being chosen by the
// file extension. An example TOML file:
//
//	[names]
//	b3 = "pagedown"
//	b4 = "pageup"
//
//	[buttons.fire]
//	key = "space"
//	alt = "enter"
package bindings
