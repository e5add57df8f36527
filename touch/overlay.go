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
	"image/color"
)

// OverlayButton is the presentation of a single button.
type OverlayButton struct {
	Name    string
	Rect    image.Rectangle
	Colour  color.RGBA
	Pressed bool
}

// Overlay is a snapshot of the virtual controls, suitable for drawing over
// the game screen. Coordinates are on the touch surface.
type Overlay struct {
	Surface image.Point
	Buttons []OverlayButton
	Stick   Joystick
}

// Overlay returns a snapshot of the current state of the controls.
func (c *Controls) Overlay() Overlay {
	ov := Overlay{
		Surface: c.layout.Surface,
		Buttons: make([]OverlayButton, len(c.layout.Buttons)),
		Stick:   c.stick,
	}
	for i, b := range c.layout.Buttons {
		ov.Buttons[i] = OverlayButton{
			Name:    b.Name,
			Rect:    b.Rect,
			Colour:  b.Colour,
			Pressed: c.pressed[i],
		}
	}
	return ov
}

// Knob returns the centre of the stick's knob. The knob is kept within the
// stick's circle.
func (j Joystick) Knob() image.Point {
	off := j.Offset
	d2 := off.X*off.X + off.Y*off.Y
	r2 := j.Radius * j.Radius
	if d2 > r2 && d2 > 0 {
		// scale the offset back onto the circle using integer square root
		d := isqrt(d2)
		off = image.Pt(off.X*j.Radius/d, off.Y*j.Radius/d)
	}
	return j.Centre.Add(off)
}

func isqrt(n int) int {
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// Dim returns the colour used for a button that is not pressed.
func Dim(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 128}
}
