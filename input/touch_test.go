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

package input_test

import (
	"image"
	"testing"

	"github.com/abuse-go/sdlport/input"
	"github.com/abuse-go/sdlport/keys"
	"github.com/abuse-go/sdlport/mouse"
	"github.com/abuse-go/sdlport/test"
	"github.com/abuse-go/sdlport/userinput"
)

func TestTouchDebounce(t *testing.T) {
	src := userinput.NewPlayback()
	s := &session{}
	c := newTouchController(src, s, &driver{})

	// selecting a menu item with the fire button
	src.AddAt(1000*ms, press(50, 500))
	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.Enter)

	src.AddAt(1010*ms, release(50, 500))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyUp)
	test.ExpectEquality(t, ev.Key, keys.Enter)

	// the game starts. the change is seen on the next event
	s.gameplay = true
	src.AddAt(1020*ms, keyDown('x'))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, src.Flushed, 1)

	// touches are discarded during the debounce window
	src.AddAt(1100*ms, press(50, 500))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventNone)
	test.ExpectEquality(t, ev.Buttons, mouse.Buttons(0))
	test.ExpectEquality(t, len(c.HeldKeys()), 0)

	// but the keyboard is not
	src.AddAt(1200*ms, keyDown('y'))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.Key('y'))

	src.AddAt(1319*ms, release(50, 500))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventNone)

	// the first touch at the end of the window is processed normally
	src.AddAt(1320*ms, press(50, 500))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.Space)
}

// returns a controller in gameplay mode with the debounce window expired
func gameplayController(t *testing.T) (*input.Controller, *userinput.Playback) {
	t.Helper()

	src := userinput.NewPlayback(keyDown('x'))
	c := newTouchController(src, &session{gameplay: true}, &driver{})
	ev := c.GetEvent()
	test.DemandEquality(t, ev.Type, input.EventKeyDown)
	src.Advance(1000 * ms)

	return c, src
}

func TestTouchAim(t *testing.T) {
	c, src := gameplayController(t)

	src.Add(press(954, 508))
	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseMove)
	test.ExpectEquality(t, ev.Pointer, image.Pt(160, 100))
	test.ExpectEquality(t, ev.Buttons, mouse.Buttons(0))

	src.Add(motion(984, 538))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseMove)
	test.ExpectEquality(t, ev.Pointer, image.Pt(240, 150))

	// motion outside the stick leaves the pointer where it was
	src.Add(motion(500, 300))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Pointer, image.Pt(240, 150))

	src.Add(release(954, 508))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseMove)
	test.ExpectEquality(t, ev.Pointer, image.Pt(240, 150))

	ov, ok := c.Overlay()
	test.DemandSuccess(t, ok)
	test.ExpectFailure(t, ov.Stick.Active)
	test.ExpectEquality(t, ov.Stick.Offset, image.Pt(30, 30))

	// the stick is no longer active so motion is ignored
	src.Add(motion(954, 508))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Pointer, image.Pt(240, 150))
}

func TestTouchButtons(t *testing.T) {
	c, src := gameplayController(t)

	src.Add(press(50, 500))
	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.Space)
	test.ExpectEquality(t, ev.Buttons, mouse.Buttons(0))

	// releasing away from the button leaves it held
	src.Add(release(500, 300))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseMove)
	held := c.HeldKeys()
	test.DemandEquality(t, len(held), 1)
	test.ExpectEquality(t, held[0], keys.Space)

	ov, _ := c.Overlay()
	test.ExpectSuccess(t, ov.Buttons[1].Pressed)

	src.Add(release(60, 510))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyUp)
	test.ExpectEquality(t, ev.Key, keys.Space)
	test.ExpectEquality(t, len(c.HeldKeys()), 0)

	src.Add(press(860, 530))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Key, keys.Insert)
}

func TestTouchMenu(t *testing.T) {
	src := userinput.NewPlayback(
		press(50, 500),
		release(50, 500),
		press(860, 470),
		release(860, 470),
		press(500, 300),
		release(500, 300),
	)
	c := newTouchController(src, &session{}, &driver{})

	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.Enter)
	test.ExpectEquality(t, ev.Buttons, mouse.Buttons(0))

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyUp)
	test.ExpectEquality(t, ev.Key, keys.Enter)

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.Up)

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyUp)
	test.ExpectEquality(t, ev.Key, keys.Up)

	// away from the buttons a touch is a mouse click
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseButton)
	test.ExpectEquality(t, ev.Pointer, image.Pt(156, 78))
	test.ExpectEquality(t, ev.Buttons, mouse.Left)

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseButton)
	test.ExpectEquality(t, ev.Buttons, mouse.Buttons(0))
}

func TestTouchDisabled(t *testing.T) {
	c := newController(userinput.NewPlayback(), &session{}, &driver{})
	_, ok := c.Overlay()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, len(c.HeldKeys()), 0)
}
