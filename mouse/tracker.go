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

package mouse

import (
	"fmt"
	"image"

	"github.com/abuse-go/sdlport/userinput"
)

// Buttons is the button mask seen by the game.
type Buttons int

// List of valid Buttons bits. The middle physical button is seen as both
// buttons held.
const (
	Left Buttons = 1 << iota
	Right
)

func (b Buttons) String() string {
	return fmt.Sprintf("%c%c", mark(b&Left == Left, 'L'), mark(b&Right == Right, 'R'))
}

func mark(set bool, c rune) rune {
	if set {
		return c
	}
	return '-'
}

// the order physical buttons are examined by Update()
var physical = [...]struct {
	mask     userinput.ButtonMask
	semantic Buttons
}{
	{mask: userinput.ButtonLeft, semantic: Left},
	{mask: userinput.ButtonMiddle, semantic: Left | Right},
	{mask: userinput.ButtonRight, semantic: Right},
}

// Tracker records the last known state of the physical buttons. The zero
// value is ready to use.
type Tracker struct {
	held    [len(physical)]bool
	buttons Buttons
	pos     image.Point
}

// Update records the pointer position and compares the physical button state
// with the previous state. A button that was released and is now held sets
// its bits in the mask. A button that was held and is now released clears
// them. Returns true if any button changed.
func (t *Tracker) Update(pos image.Point, mask userinput.ButtonMask) (Buttons, bool) {
	t.pos = pos

	var edge bool
	for i, p := range physical {
		down := mask&p.mask == p.mask
		switch {
		case down && !t.held[i]:
			t.held[i] = true
			t.buttons |= p.semantic
			edge = true
		case !down && t.held[i]:
			t.held[i] = false
			t.buttons &^= p.semantic
			edge = true
		}
	}

	return t.buttons, edge
}

// Move records the pointer position without changing the button state.
func (t *Tracker) Move(pos image.Point) {
	t.pos = pos
}

// Reset forgets the button state. All buttons are considered released and the
// mask is cleared. The position is not changed.
func (t *Tracker) Reset() {
	t.held = [len(physical)]bool{}
	t.buttons = 0
}

// Position returns the most recent pointer position.
func (t *Tracker) Position() image.Point {
	return t.pos
}

// Buttons returns the current button mask.
func (t *Tracker) Buttons() Buttons {
	return t.buttons
}
