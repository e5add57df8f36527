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

// Package userinput describes input from the real hardware that the player is
// using. It is the boundary between a platform (SDL, a terminal) and the
// input package, which turns userinput events into the events the game
// understands.
//
// A platform implements the Source interface. Events are polled one at a
// time and are returned as one of the Event* types in this package. A
// platform that can block until an event is ready should also implement the
// Waiter interface.
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system.
package userinput
