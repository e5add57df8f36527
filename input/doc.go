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

// Package input turns the events of a userinput.Source into the events seen
// by the game. The Controller type is the only entry point:
//
//	ctrl := input.NewController(src, session, driver, input.Config{...})
//	for {
//		ev := ctrl.GetEvent()
//		...
//	}
//
// GetEvent() blocks until an event is available. Events queued with
// AddRedraw() or Push() are returned before any platform event.
//
// Every event carries the pointer position, in the logical coordinates of
// the game screen, and the state of the mouse buttons. Key events also carry
// the key and redraw events carry the area of the screen to redraw.
//
// When touch controls are enabled, pointer events are first tested against
// the virtual buttons of the touch layout. During gameplay, pointer events
// that do not hit a button drive the aim stick. For a short time after the
// game leaves a menu, pointer events are discarded (see the debounce
// package).
//
// Some keys are not passed to the game and instead cause the Controller to
// issue a Command to the Driver:
//
//	F11		toggle fullscreen
//	F12		toggle mouse grab
//	PrintScreen	save a screenshot
//
// A quit request from the platform is also a Command.
//
// The Controller is not safe for concurrent use and should only be used from
// the goroutine that first calls GetEvent().
package input
