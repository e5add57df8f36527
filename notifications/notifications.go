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

package notifications

// Notice describes events that somehow change the presentation of the game.
// These notifications can be used to present additional information to the
// user
type Notice string

// List of defined notifications.
const (
	// a screenshot has been saved
	NotifyScreenshot Notice = "NotifyScreenshot"

	// the mouse grab has been toggled
	NotifyGrabMouse Notice = "NotifyGrabMouse"

	// the window has been toggled between fullscreen and windowed modes
	NotifyFullscreen Notice = "NotifyFullscreen"
)

// Notify is implemented by the part of the program able to show a transient
// help message. The message argument is the text to show.
type Notify interface {
	Notify(notice Notice, message string) error
}
