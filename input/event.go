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

import (
	"fmt"
	"image"

	"github.com/abuse-go/sdlport/keys"
	"github.com/abuse-go/sdlport/mouse"
)

// EventType distinguishes the kinds of Event.
type EventType int

// List of valid EventType values.
const (
	EventNone EventType = iota
	EventRedraw
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseButton
)

func (t EventType) String() string {
	switch t {
	case EventRedraw:
		return "redraw"
	case EventKeyDown:
		return "key down"
	case EventKeyUp:
		return "key up"
	case EventMouseMove:
		return "mouse move"
	case EventMouseButton:
		return "mouse button"
	}
	return "none"
}

// Event is a single event for the game. An event of type EventNone should be
// ignored by the game.
type Event struct {
	Type EventType

	// the key for EventKeyDown and EventKeyUp
	Key keys.Key

	// pointer position in logical coordinates and the mouse button mask.
	// present for every event type
	Pointer image.Point
	Buttons mouse.Buttons

	// the area to redraw for EventRedraw
	Redraw image.Rectangle
}

func (ev Event) String() string {
	switch ev.Type {
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("%s %s", ev.Type, ev.Key)
	case EventRedraw:
		return fmt.Sprintf("%s %v", ev.Type, ev.Redraw)
	case EventMouseMove, EventMouseButton:
		return fmt.Sprintf("%s %d,%d [%s]", ev.Type, ev.Pointer.X, ev.Pointer.Y, ev.Buttons)
	}
	return ev.Type.String()
}
