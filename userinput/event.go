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

import "fmt"

// Event represents all the different types of userinput events.
type Event interface{}

// EventQuit is sent when the platform requests that the program exits. For
// example, when the window is closed.
type EventQuit struct{}

// KeyMod is a bitmask of the modifier keys held at the time of an event.
type KeyMod int

// List of valid KeyMod bits.
const (
	KeyModNone  KeyMod = 0
	KeyModShift KeyMod = 1 << (iota - 1)
	KeyModCtrl
	KeyModAlt
)

func (m KeyMod) String() string {
	if m == KeyModNone {
		return "none"
	}
	s := ""
	if m&KeyModShift == KeyModShift {
		s += "shift+"
	}
	if m&KeyModCtrl == KeyModCtrl {
		s += "ctrl+"
	}
	if m&KeyModAlt == KeyModAlt {
		s += "alt+"
	}
	return s[:len(s)-1]
}

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	Sym    Sym
	Down   bool
	Mod    KeyMod
	Repeat bool
}

func (ev EventKeyboard) String() string {
	d := "up"
	if ev.Down {
		d = "down"
	}
	return fmt.Sprintf("key %s %s (mod %s)", ev.Sym, d, ev.Mod)
}

// MouseButton identifies a physical mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
)

// ButtonMask is the state of all physical mouse buttons.
type ButtonMask int

// List of valid ButtonMask bits.
const (
	ButtonLeft ButtonMask = 1 << iota
	ButtonMiddle
	ButtonRight
)

// Mask returns the ButtonMask bit for the button.
func (b MouseButton) Mask() ButtonMask {
	switch b {
	case MouseButtonLeft:
		return ButtonLeft
	case MouseButtonMiddle:
		return ButtonMiddle
	case MouseButtonRight:
		return ButtonRight
	}
	return 0
}

// EventMouseButton is sent when a mouse button is pressed or released. On
// touch devices a finger touching the screen is a left button press. The
// coordinates are in device pixels.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X, Y   int
}

// EventMouseMotion is sent when the pointer moves. The coordinates are in
// device pixels.
type EventMouseMotion struct {
	X, Y int
}

// EventMouseWheel is sent when the mouse wheel is turned. A positive Delta is
// away from the user.
type EventMouseWheel struct {
	Delta int
}

// EventUnknown is sent for platform events with no userinput equivalent.
type EventUnknown struct {
	Detail string
}

// Pointer returns the coordinates carried by a pointer event. Returns false
// if the event is not a pointer event or if it carries no coordinates.
func Pointer(ev Event) (x, y int, ok bool) {
	switch ev := ev.(type) {
	case EventMouseButton:
		return ev.X, ev.Y, true
	case EventMouseMotion:
		return ev.X, ev.Y, true
	}
	return 0, 0, false
}
