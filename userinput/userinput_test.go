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

package userinput_test

import (
	"testing"
	"time"

	"github.com/abuse-go/sdlport/test"
	"github.com/abuse-go/sdlport/userinput"
)

func TestPlayback(t *testing.T) {
	p := userinput.NewPlayback(
		userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true, X: 10, Y: 20},
		userinput.EventKeyboard{Sym: 'a', Down: true, Mod: userinput.KeyModShift},
	)
	p.AddAt(500*time.Millisecond, userinput.EventMouseMotion{X: 30, Y: 40})

	test.ExpectEquality(t, p.Pending(), 3)

	_ = p.Poll()
	x, y, mask := p.MouseState()
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 20)
	test.ExpectEquality(t, mask, userinput.ButtonLeft)

	_ = p.Poll()
	test.ExpectEquality(t, p.ModState(), userinput.KeyModShift)
	test.ExpectEquality(t, p.Ticks(), time.Duration(0))

	_ = p.Poll()
	test.ExpectEquality(t, p.Ticks(), 500*time.Millisecond)
	x, y, _ = p.MouseState()
	test.ExpectEquality(t, x, 30)
	test.ExpectEquality(t, y, 40)

	test.ExpectSuccess(t, p.Poll() == nil)
}

func TestFlushPointer(t *testing.T) {
	p := userinput.NewPlayback(
		userinput.EventMouseMotion{X: 1, Y: 1},
		userinput.EventKeyboard{Sym: userinput.SymReturn, Down: true},
		userinput.EventMouseWheel{Delta: 1},
		userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true},
	)
	p.FlushPointer()
	test.ExpectEquality(t, p.Flushed, 1)
	test.DemandEquality(t, p.Pending(), 1)

	ev, ok := p.Poll().(userinput.EventKeyboard)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Sym, userinput.SymReturn)
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, userinput.SymF11.String(), "F11")
	test.ExpectEquality(t, userinput.SymKP8.String(), "KP8")
	test.ExpectEquality(t, userinput.Sym('q').String(), "q")
	test.ExpectEquality(t, userinput.SymPrintScreen.String(), "PrintScreen")
	test.ExpectEquality(t, (userinput.KeyModShift | userinput.KeyModAlt).String(), "shift+alt")
	test.ExpectEquality(t, userinput.MouseButtonMiddle.Mask(), userinput.ButtonMiddle)
}
