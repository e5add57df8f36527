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

// Package termport is a platform layer for running without a window. Key
// presses are read from a terminal in raw mode. There are no pointer events
// and no display, so the touch controls cannot be used.
//
// A terminal does not report key releases so every key press is sent as a
// key down event immediately followed by a key up event.
package termport
