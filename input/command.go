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

package input

// Command is a request to the Driver.
type Command int

// List of valid Command values.
const (
	CommandNone Command = iota
	CommandQuit
	CommandFullscreen
	CommandGrab
	CommandScreenshot
)

func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandFullscreen:
		return "fullscreen"
	case CommandGrab:
		return "grab"
	case CommandScreenshot:
		return "screenshot"
	}
	return "none"
}

// Driver carries out commands on behalf of the Controller. Errors returned by
// Execute() are logged and are not otherwise reported.
//
// A driver should terminate the program on receipt of CommandQuit.
type Driver interface {
	Execute(cmd Command) error
}

// Session is queried by the Controller for the state of the game.
type Session interface {
	// InGameplay returns true if the game is being played. It returns false
	// if the game is showing a menu or any other screen where the touch
	// controls act as a mouse.
	InGameplay() bool
}
