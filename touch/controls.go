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

package touch

import (
	"image"

	"github.com/abuse-go/sdlport/keys"
)

// HitKind is the type of control found by Controls.Hit().
type HitKind int

// List of valid HitKind values.
const (
	HitNone HitKind = iota
	HitButton
	HitStick
)

// Hit is the result of a hit test. Button is the index of the button in the
// layout and is only meaningful when Kind is HitButton.
type Hit struct {
	Kind   HitKind
	Button int
}

// SampleKind is the type of a touch sample.
type SampleKind int

// List of valid SampleKind values.
const (
	SamplePress SampleKind = iota
	SampleMotion
	SampleRelease
)

// Sample is a single touch. Coordinates are on the touch surface.
type Sample struct {
	Kind SampleKind
	X, Y int
}

// Joystick is the live state of the aim stick.
type Joystick struct {
	Stick
	Active bool
}

// Controls tracks the state of the virtual controls. Not safe for concurrent
// use.
type Controls struct {
	layout  Layout
	pressed []bool
	stick   Joystick
	display image.Point
}

// NewControls is the preferred method of initialisation for the Controls
// type. The display argument is the size of the game screen that the aim
// stick maps onto.
func NewControls(layout Layout, display image.Point) *Controls {
	return &Controls{
		layout:  layout,
		pressed: make([]bool, len(layout.Buttons)),
		stick:   Joystick{Stick: layout.Stick},
		display: display,
	}
}

// Hit returns the control under the point. Buttons are checked first and in
// the order of the layout. The aim stick is checked only if no button
// contains the point.
func (c *Controls) Hit(x, y int) Hit {
	for i, b := range c.layout.Buttons {
		if b.Contains(x, y) {
			return Hit{Kind: HitButton, Button: i}
		}
	}
	if c.stick.Contains(x, y) {
		return Hit{Kind: HitStick}
	}
	return Hit{Kind: HitNone}
}

// Press marks the first button containing the point as pressed. Returns the
// key for the button in the specified mode and true. Returns false if no
// button contains the point.
func (c *Controls) Press(x, y int, mode Mode) (keys.Key, bool) {
	for i, b := range c.layout.Buttons {
		if b.Contains(x, y) {
			c.pressed[i] = true
			return b.KeyFor(mode), true
		}
	}
	return keys.None, false
}

// Release clears the pressed state of the first pressed button containing the
// point. Returns the key for the button in the specified mode and true.
//
// A release outside of a pressed button has no effect and returns false. This
// means that a touch that slides off a button leaves the button pressed until
// a later release occurs inside it.
func (c *Controls) Release(x, y int, mode Mode) (keys.Key, bool) {
	for i, b := range c.layout.Buttons {
		if c.pressed[i] && b.Contains(x, y) {
			c.pressed[i] = false
			return b.KeyFor(mode), true
		}
	}
	return keys.None, false
}

// Pressed returns true if the button at index i is pressed.
func (c *Controls) Pressed(i int) bool {
	if i < 0 || i >= len(c.pressed) {
		return false
	}
	return c.pressed[i]
}

// Held returns the gameplay keys of every pressed button, in layout order.
func (c *Controls) Held() []keys.Key {
	var h []keys.Key
	for i, b := range c.layout.Buttons {
		if c.pressed[i] {
			h = append(h, b.Key)
		}
	}
	return h
}

// Aim updates the aim stick with a touch sample. A press inside the stick
// activates it. Motion inside the stick while it is active moves the knob. A
// release inside the stick deactivates it; a release outside leaves it
// active.
//
// Returns the position on the game screen that the stick points at and true
// if the sample moved the knob.
func (c *Controls) Aim(s Sample) (image.Point, bool) {
	if !c.stick.Contains(s.X, s.Y) {
		return image.Point{}, false
	}

	switch s.Kind {
	case SamplePress:
		c.stick.Active = true
	case SampleMotion:
		if !c.stick.Active {
			return image.Point{}, false
		}
	case SampleRelease:
		c.stick.Active = false
		return image.Point{}, false
	}

	c.stick.Offset = image.Pt(s.X-c.stick.Centre.X, s.Y-c.stick.Centre.Y)
	return c.aimPoint(), true
}

// aimPoint maps the stick offset onto the display. the edge of the stick
// corresponds to the edge of the display.
func (c *Controls) aimPoint() image.Point {
	w, h := c.display.X, c.display.Y
	r := c.stick.Radius
	if r <= 0 {
		return image.Pt(w/2, h/2)
	}
	return image.Pt(
		clamp(w/2+c.stick.Offset.X*w/(2*r), w-1),
		clamp(h/2+c.stick.Offset.Y*h/(2*r), h-1),
	)
}

func clamp(v, max int) int {
	if v > max {
		v = max
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Deactivate the aim stick. The knob offset is not changed.
func (c *Controls) Deactivate() {
	c.stick.Active = false
}

// Joystick returns the current state of the aim stick.
func (c *Controls) Joystick() Joystick {
	return c.stick
}
