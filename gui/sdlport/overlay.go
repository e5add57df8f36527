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

package sdlport

import (
	"image"
	"image/color"

	"github.com/abuse-go/sdlport/touch"
	"github.com/veandco/go-sdl2/sdl"
)

// size of the crosshair in logical pixels
const crosshairSize = 4

// scale a point from one coordinate space to another
func scalePoint(p, from, to image.Point) image.Point {
	if from.X == 0 || from.Y == 0 {
		return p
	}
	return image.Pt(p.X*to.X/from.X, p.Y*to.Y/from.Y)
}

func scaleRect(r image.Rectangle, from, to image.Point) *sdl.Rect {
	min := scalePoint(r.Min, from, to)
	max := scalePoint(r.Max, from, to)
	return &sdl.Rect{
		X: int32(min.X),
		Y: int32(min.Y),
		W: int32(max.X - min.X),
		H: int32(max.Y - min.Y),
	}
}

func (win *Window) setColour(c color.RGBA) {
	_ = win.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// DrawScreen fills the game screen area. The colour indicates whether the
// game is in a menu or is being played.
func (win *Window) DrawScreen(inGameplay bool) {
	if inGameplay {
		win.setColour(color.RGBA{R: 16, G: 32, B: 16, A: 255})
	} else {
		win.setColour(color.RGBA{R: 16, G: 16, B: 48, A: 255})
	}
	_ = win.renderer.FillRect(nil)
}

// DrawCrosshair draws a crosshair at the pointer position. The position is
// in logical coordinates.
func (win *Window) DrawCrosshair(p image.Point) {
	out := win.outputSize()
	c := scalePoint(p, win.logical, out)
	s := crosshairSize * out.X / max(win.logical.X, 1)

	win.setColour(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	_ = win.renderer.DrawLine(int32(c.X-s), int32(c.Y), int32(c.X+s), int32(c.Y))
	_ = win.renderer.DrawLine(int32(c.X), int32(c.Y-s), int32(c.X), int32(c.Y+s))
}

// DrawOverlay draws the touch controls over the game screen. Buttons that are
// not pressed are drawn dimmed.
func (win *Window) DrawOverlay(ov touch.Overlay) {
	out := win.outputSize()

	for _, b := range ov.Buttons {
		r := scaleRect(b.Rect, ov.Surface, out)
		if b.Pressed {
			win.setColour(b.Colour)
		} else {
			win.setColour(touch.Dim(b.Colour))
		}
		_ = win.renderer.FillRect(r)
		win.setColour(b.Colour)
		_ = win.renderer.DrawRect(r)
	}

	stick := ov.Stick
	bounds := image.Rect(
		stick.Centre.X-stick.Radius, stick.Centre.Y-stick.Radius,
		stick.Centre.X+stick.Radius, stick.Centre.Y+stick.Radius,
	)
	win.setColour(color.RGBA{R: 200, G: 200, B: 200, A: 96})
	_ = win.renderer.DrawRect(scaleRect(bounds, ov.Surface, out))

	knob := stick.Knob()
	k := stick.Radius / 4
	if stick.Active {
		win.setColour(color.RGBA{R: 255, G: 255, B: 255, A: 200})
	} else {
		win.setColour(color.RGBA{R: 200, G: 200, B: 200, A: 96})
	}
	_ = win.renderer.FillRect(scaleRect(image.Rect(knob.X-k, knob.Y-k, knob.X+k, knob.Y+k), ov.Surface, out))
}
