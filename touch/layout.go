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

	"github.com/abuse-go/sdlport/keys"
)

// Mode selects which key a button generates.
type Mode int

// List of valid Mode values.
const (
	ModeMenu Mode = iota
	ModeGameplay
)

func (m Mode) String() string {
	if m == ModeGameplay {
		return "gameplay"
	}
	return "menu"
}

// ModeFor returns the Mode for the current state of the game.
func ModeFor(inGameplay bool) Mode {
	if inGameplay {
		return ModeGameplay
	}
	return ModeMenu
}

// Button is a rectangular region of the touch surface bound to a key.
type Button struct {
	Name   string
	Rect   image.Rectangle
	Key    keys.Key
	Alt    keys.Key
	Colour color.RGBA
}

// KeyFor returns the key for the button in the specified mode.
func (b Button) KeyFor(mode Mode) keys.Key {
	if mode == ModeMenu && b.Alt != keys.None {
		return b.Alt
	}
	return b.Key
}

// Contains returns true if the point lies within the button. The right and
// bottom edges are not part of the button.
func (b Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Stick is the circular aiming region.
type Stick struct {
	Centre image.Point
	Radius int

	// the offset of the stick's knob before any touch is received
	Offset image.Point
}

// Contains returns true if the point is on or within the circle.
func (s Stick) Contains(x, y int) bool {
	dx := x - s.Centre.X
	dy := y - s.Centre.Y
	return dx*dx+dy*dy <= s.Radius*s.Radius
}

// Layout describes the virtual controls.
type Layout struct {
	// the size of the touch surface
	Surface image.Point

	// buttons in order of priority. where buttons overlap the first button
	// in the list receives the touch
	Buttons []Button

	Stick Stick
}

// the colours used by the default layout
var (
	grey   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	orange = color.RGBA{R: 255, G: 128, B: 0, A: 255}
	blue   = color.RGBA{R: 51, G: 102, B: 255, A: 255}
	purple = color.RGBA{R: 153, G: 102, B: 255, A: 255}
	red    = color.RGBA{R: 255, G: 77, B: 77, A: 255}
	yellow = color.RGBA{R: 255, G: 230, B: 51, A: 255}
	green  = color.RGBA{R: 51, G: 255, B: 102, A: 255}
)

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// DefaultLayout returns the layout used by the game on a 1024x768 touch
// screen. Movement buttons are on the left of the screen and the aim stick is
// on the right.
func DefaultLayout() Layout {
	return Layout{
		Surface: image.Pt(1024, 768),
		Buttons: []Button{
			{Name: "menu", Rect: rect(10, 10, 80, 40), Key: keys.Esc, Colour: grey},
			{Name: "fire", Rect: rect(10, 448, 100, 100), Key: keys.Space, Alt: keys.Enter, Colour: orange},
			{Name: "left", Rect: rect(10, 558, 100, 100), Key: keys.Left, Colour: blue},
			{Name: "right", Rect: rect(120, 558, 100, 100), Key: keys.Right, Colour: blue},
			{Name: "crouch", Rect: rect(230, 558, 100, 100), Key: keys.Down, Colour: purple},
			{Name: "special", Rect: rect(844, 458, 50, 50), Key: keys.AltL, Alt: keys.Up, Colour: red},
			{Name: "weapon", Rect: rect(844, 518, 50, 50), Key: keys.Insert, Alt: keys.Down, Colour: yellow},
			{Name: "jump", Rect: rect(894, 578, 100, 100), Key: keys.Up, Colour: green},
		},
		Stick: Stick{
			Centre: image.Pt(954, 508),
			Radius: 60,
			Offset: image.Pt(100, 0),
		},
	}
}

// Button returns the index of the named button. Returns -1 if there is no
// button with that name.
func (l Layout) Button(name string) int {
	for i, b := range l.Buttons {
		if b.Name == name {
			return i
		}
	}
	return -1
}
