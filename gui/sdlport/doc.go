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

// Package sdlport is the SDL platform layer. It provides a userinput.Source
// that reads events from SDL, a Driver that performs the platform commands
// requested by the input package, and a Window that the game screen and the
// touch overlay are drawn to.
//
// All functions in this package must be called from the main thread. The
// caller should use runtime.LockOSThread() before calling NewWindow().
package sdlport
