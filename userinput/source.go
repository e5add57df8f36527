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

package userinput

import "time"

// Source is implemented by a platform able to supply userinput events.
type Source interface {
	// Poll returns the next pending event or nil if there is no event
	// pending. Poll must not block.
	Poll() Event

	// ModState returns the modifier keys currently held.
	ModState() KeyMod

	// MouseState returns the current pointer position, in device pixels, and
	// the state of the physical mouse buttons.
	MouseState() (x, y int, buttons ButtonMask)

	// Ticks returns the time since the source was initialised.
	Ticks() time.Duration

	// FlushPointer discards any pending pointer events (button, motion and
	// wheel events).
	FlushPointer()
}

// Waiter is implemented by a Source that can block until an event is ready.
type Waiter interface {
	// Wait blocks until an event is available or until the timeout has
	// elapsed. Returns nil if the timeout elapsed.
	Wait(timeout time.Duration) Event
}
