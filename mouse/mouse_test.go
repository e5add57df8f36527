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

package mouse_test

import (
	"image"
	"testing"

	"github.com/abuse-go/sdlport/mouse"
	"github.com/abuse-go/sdlport/test"
	"github.com/abuse-go/sdlport/userinput"
)

func TestScaler(t *testing.T) {
	s := mouse.NewScaler(image.Pt(2048, 1536), image.Pt(1024, 768))
	test.ExpectEquality(t, s.Factor(), image.Pt(0x8000, 0x8000))

	test.ExpectEquality(t, s.Scale(2000, 100), image.Pt(1000, 50))
	test.ExpectEquality(t, s.Scale(0, 0), image.Pt(0, 0))
	test.ExpectEquality(t, s.Scale(2047, 1535), image.Pt(1023, 767))

	// coordinates outside the device are clamped
	test.ExpectEquality(t, s.Scale(4000, 3000), image.Pt(1023, 767))
	test.ExpectEquality(t, s.Scale(-10, -10), image.Pt(0, 0))
}

func TestScalerUpscale(t *testing.T) {
	// a device smaller than the logical screen
	s := mouse.NewScaler(image.Pt(320, 200), image.Pt(640, 400))
	test.ExpectEquality(t, s.Factor(), image.Pt(0x20000, 0x20000))
	test.ExpectEquality(t, s.Scale(160, 100), image.Pt(320, 200))

	// an empty device is treated as having the logical size
	s = mouse.NewScaler(image.Point{}, image.Pt(320, 200))
	test.ExpectEquality(t, s.Scale(100, 50), image.Pt(100, 50))
}

func TestEdges(t *testing.T) {
	var tr mouse.Tracker
	var edges int

	samples := []userinput.ButtonMask{0, userinput.ButtonLeft, userinput.ButtonLeft, 0}
	for i, s := range samples {
		if _, edge := tr.Update(image.Pt(i, i), s); edge {
			edges++
		}
	}
	test.ExpectEquality(t, edges, 2)
	test.ExpectEquality(t, tr.Buttons(), mouse.Buttons(0))
	test.ExpectEquality(t, tr.Position(), image.Pt(3, 3))
}

func TestMiddleButton(t *testing.T) {
	var tr mouse.Tracker

	b, edge := tr.Update(image.Point{}, userinput.ButtonMiddle)
	test.ExpectSuccess(t, edge)
	test.ExpectEquality(t, b, mouse.Left|mouse.Right)
	test.ExpectEquality(t, b.String(), "LR")

	b, edge = tr.Update(image.Point{}, 0)
	test.ExpectSuccess(t, edge)
	test.ExpectEquality(t, b, mouse.Buttons(0))
	test.ExpectEquality(t, b.String(), "--")
}

func TestReset(t *testing.T) {
	var tr mouse.Tracker

	tr.Update(image.Pt(5, 5), userinput.ButtonRight)
	test.ExpectEquality(t, tr.Buttons(), mouse.Right)

	tr.Reset()
	test.ExpectEquality(t, tr.Buttons(), mouse.Buttons(0))
	test.ExpectEquality(t, tr.Position(), image.Pt(5, 5))

	// the button is still physically held so the next update is a new press
	_, edge := tr.Update(image.Pt(5, 5), userinput.ButtonRight)
	test.ExpectSuccess(t, edge)

	tr.Move(image.Pt(9, 9))
	test.ExpectEquality(t, tr.Position(), image.Pt(9, 9))
	test.ExpectEquality(t, tr.Buttons(), mouse.Right)
}
