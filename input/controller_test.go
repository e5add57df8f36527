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
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/abuse-go/sdlport/bindings"
	"github.com/abuse-go/sdlport/input"
	"github.com/abuse-go/sdlport/keys"
	"github.com/abuse-go/sdlport/logger"
	"github.com/abuse-go/sdlport/mouse"
	"github.com/abuse-go/sdlport/test"
	"github.com/abuse-go/sdlport/touch"
	"github.com/abuse-go/sdlport/userinput"
)

const ms = time.Millisecond

type session struct {
	gameplay bool
}

func (s *session) InGameplay() bool {
	return s.gameplay
}

type driver struct {
	cmds []input.Command
	err  error
}

func (d *driver) Execute(cmd input.Command) error {
	d.cmds = append(d.cmds, cmd)
	return d.err
}

func keyDown(sym userinput.Sym) userinput.EventKeyboard {
	return userinput.EventKeyboard{Sym: sym, Down: true}
}

func keyUp(sym userinput.Sym) userinput.EventKeyboard {
	return userinput.EventKeyboard{Sym: sym}
}

func press(x, y int) userinput.EventMouseButton {
	return userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true, X: x, Y: y}
}

func release(x, y int) userinput.EventMouseButton {
	return userinput.EventMouseButton{Button: userinput.MouseButtonLeft, X: x, Y: y}
}

func motion(x, y int) userinput.EventMouseMotion {
	return userinput.EventMouseMotion{X: x, Y: y}
}

var logical = image.Pt(320, 200)

func newController(src userinput.Source, s *session, d *driver) *input.Controller {
	return input.NewController(src, s, d, input.Config{
		Logical:  logical,
		Debounce: 300 * ms,
	})
}

func newTouchController(src userinput.Source, s *session, d *driver) *input.Controller {
	l := touch.DefaultLayout()
	return input.NewController(src, s, d, input.Config{
		Logical:  logical,
		Device:   l.Surface,
		Debounce: 300 * ms,
		Touch:    &l,
	})
}

func TestQueue(t *testing.T) {
	src := userinput.NewPlayback(keyDown('x'))
	c := newController(src, &session{}, &driver{})

	c.AddRedraw(image.Rect(0, 0, 10, 10))
	c.Push(input.Event{Type: input.EventKeyDown, Key: keys.F1})
	c.AddRedraw(image.Rect(5, 5, 20, 20))

	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventRedraw)
	test.ExpectEquality(t, ev.Redraw, image.Rect(0, 0, 10, 10))

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.F1)

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventRedraw)
	test.ExpectEquality(t, ev.Redraw, image.Rect(5, 5, 20, 20))

	// the platform event is only seen after the queue is empty
	test.ExpectEquality(t, src.Pending(), 1)
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.Key('x'))
}

func TestEventWaiting(t *testing.T) {
	src := userinput.NewPlayback()
	c := newController(src, &session{}, &driver{})

	test.ExpectFailure(t, c.EventWaiting())

	c.AddRedraw(image.Rect(0, 0, 1, 1))
	test.ExpectSuccess(t, c.EventWaiting())
	_ = c.GetEvent()
	test.ExpectFailure(t, c.EventWaiting())

	// the platform event is read but held for the next GetEvent()
	src.Add(keyDown(userinput.SymReturn))
	test.ExpectSuccess(t, c.EventWaiting())
	test.ExpectEquality(t, src.Pending(), 0)
	test.ExpectSuccess(t, c.EventWaiting())

	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.Enter)
	test.ExpectFailure(t, c.EventWaiting())
}

func TestKeyboard(t *testing.T) {
	type keyTest struct {
		ev  userinput.EventKeyboard
		typ input.EventType
		key keys.Key
	}

	shift := func(sym userinput.Sym) userinput.EventKeyboard {
		return userinput.EventKeyboard{Sym: sym, Down: true, Mod: userinput.KeyModShift}
	}

	for _, k := range []keyTest{
		{ev: keyDown('a'), typ: input.EventKeyDown, key: keys.Key('a')},
		{ev: keyUp('a'), typ: input.EventKeyUp, key: keys.Key('a')},
		{ev: shift('a'), typ: input.EventKeyDown, key: keys.Key('A')},
		{ev: shift('7'), typ: input.EventKeyDown, key: keys.Key('&')},
		{ev: shift(userinput.SymUp), typ: input.EventKeyDown, key: keys.Up},
		{ev: keyDown(userinput.SymKP8), typ: input.EventKeyDown, key: keys.Up},
		{ev: keyDown(userinput.SymKP2), typ: input.EventKeyDown, key: keys.Down},
		{ev: keyDown(userinput.SymKP4), typ: input.EventKeyDown, key: keys.Left},
		{ev: keyUp(userinput.SymKP6), typ: input.EventKeyUp, key: keys.Right},
		{ev: keyDown(userinput.SymKP0), typ: input.EventKeyDown, key: keys.Insert},
		{ev: keyDown(userinput.SymReturn), typ: input.EventKeyDown, key: keys.Enter},
		{ev: keyDown(userinput.SymEscape), typ: input.EventKeyDown, key: keys.Esc},
		{ev: keyDown(userinput.SymSpace), typ: input.EventKeyDown, key: keys.Space},
		{ev: keyDown(userinput.SymCtrlR), typ: input.EventKeyDown, key: keys.CtrlR},
		{ev: keyDown(userinput.SymF10), typ: input.EventKeyDown, key: keys.F10},
		{ev: keyDown(userinput.SymKP5), typ: input.EventNone, key: keys.None},
	} {
		src := userinput.NewPlayback(k.ev)
		c := newController(src, &session{}, &driver{})
		ev := c.GetEvent()
		test.ExpectEquality(t, ev.Type, k.typ, k.ev)
		test.ExpectEquality(t, ev.Key, k.key, k.ev)
	}
}

func TestKeyFlags(t *testing.T) {
	test.ExpectEquality(t, input.KeyFlags(userinput.KeyModNone), 0)
	test.ExpectEquality(t, input.KeyFlags(userinput.KeyModShift), 8)
	test.ExpectEquality(t, input.KeyFlags(userinput.KeyModCtrl), 4)
	test.ExpectEquality(t, input.KeyFlags(userinput.KeyModShift|userinput.KeyModAlt), 10)

	src := userinput.NewPlayback(userinput.EventKeyboard{Sym: userinput.SymCtrlL, Down: true, Mod: userinput.KeyModCtrl})
	c := newController(src, &session{}, &driver{})
	_ = c.GetEvent()
	test.ExpectEquality(t, c.Modifiers(), 4)
}

func TestCommands(t *testing.T) {
	src := userinput.NewPlayback(
		keyDown(userinput.SymF11),
		keyUp(userinput.SymF11),
		userinput.EventKeyboard{Sym: userinput.SymF11, Down: true, Repeat: true},
		keyDown(userinput.SymF12),
		keyDown(userinput.SymPrintScreen),
		userinput.EventQuit{},
	)
	d := &driver{}
	c := newController(src, &session{}, d)

	for src.Pending() > 0 {
		ev := c.GetEvent()
		test.ExpectEquality(t, ev.Type, input.EventNone)
	}

	test.DemandEquality(t, len(d.cmds), 4)
	test.ExpectEquality(t, d.cmds[0], input.CommandFullscreen)
	test.ExpectEquality(t, d.cmds[1], input.CommandGrab)
	test.ExpectEquality(t, d.cmds[2], input.CommandScreenshot)
	test.ExpectEquality(t, d.cmds[3], input.CommandQuit)
}

func TestDriverError(t *testing.T) {
	src := userinput.NewPlayback(keyDown(userinput.SymPrintScreen))
	d := &driver{err: errors.New("disk full")}
	c := newController(src, &session{}, d)

	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventNone)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "input: command: screenshot: disk full\n")
}

func TestWheel(t *testing.T) {
	src := userinput.NewPlayback(
		userinput.EventMouseWheel{Delta: 1},
		userinput.EventMouseWheel{Delta: -2},
		userinput.EventMouseWheel{Delta: 0},
	)
	c := newController(src, &session{}, &driver{})

	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.PageUp)

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyUp)
	test.ExpectEquality(t, ev.Key, keys.PageDown)

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventNone)

	// user bindings
	b := bindings.Default()
	b.Set(bindings.WheelUp, keys.Key('w'))
	src.Add(userinput.EventMouseWheel{Delta: 1})
	c = input.NewController(src, &session{}, &driver{}, input.Config{Logical: logical, Bindings: b})
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Key, keys.Key('w'))
}

func TestMouse(t *testing.T) {
	src := userinput.NewPlayback(
		motion(100, 100),
		press(2000, 100),
		motion(1000, 1000),
		release(1000, 1000),
		userinput.EventMouseButton{Button: userinput.MouseButtonMiddle, Down: true, X: 0, Y: 0},
	)
	c := input.NewController(src, &session{}, &driver{}, input.Config{
		Logical: image.Pt(1024, 768),
		Device:  image.Pt(2048, 1536),
	})

	var buttonEvents int

	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseMove)
	test.ExpectEquality(t, ev.Pointer, image.Pt(50, 50))

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseButton)
	test.ExpectEquality(t, ev.Pointer, image.Pt(1000, 50))
	test.ExpectEquality(t, ev.Buttons, mouse.Left)
	buttonEvents++

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseMove)
	test.ExpectEquality(t, ev.Buttons, mouse.Left)

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseButton)
	test.ExpectEquality(t, ev.Buttons, mouse.Buttons(0))
	buttonEvents++

	test.ExpectEquality(t, buttonEvents, 2)

	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseButton)
	test.ExpectEquality(t, ev.Buttons, mouse.Left|mouse.Right)

	// keyboard events carry the pointer state
	src.Add(keyDown('z'))
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Pointer, image.Pt(0, 0))
	test.ExpectEquality(t, ev.Buttons, mouse.Left|mouse.Right)
}

func TestUnknownEvent(t *testing.T) {
	src := userinput.NewPlayback(userinput.EventUnknown{Detail: "window exposed"})
	c := newController(src, &session{}, &driver{})
	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventNone)
}

// waiter is a Source that only delivers events through Wait()
type waiter struct {
	*userinput.Playback
	next  userinput.Event
	waits int
}

func (w *waiter) Poll() userinput.Event {
	return nil
}

func (w *waiter) Wait(_ time.Duration) userinput.Event {
	w.waits++
	if w.waits < 3 {
		return nil
	}
	return w.next
}

func TestWaiter(t *testing.T) {
	w := &waiter{
		Playback: userinput.NewPlayback(),
		next:     keyDown(userinput.SymTab),
	}
	c := newController(w, &session{}, &driver{})

	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)
	test.ExpectEquality(t, ev.Key, keys.Tab)
	test.ExpectEquality(t, w.waits, 3)
}

func TestGoroutineOwner(t *testing.T) {
	src := userinput.NewPlayback(keyDown('a'), keyDown('b'))
	c := newController(src, &session{}, &driver{})
	_ = c.GetEvent()

	done := make(chan bool)
	go func() {
		_ = c.GetEvent()
		done <- true
	}()
	<-done

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "input: GetEvent() called from more than one goroutine\n")
}

// liveMod is a Source with a live modifier state that can disagree with the
// modifier recorded on a keyboard event
type liveMod struct {
	*userinput.Playback
	mod userinput.KeyMod
}

func (s *liveMod) ModState() userinput.KeyMod {
	return s.mod
}

func TestShiftRecordedWithEvent(t *testing.T) {
	src := &liveMod{
		Playback: userinput.NewPlayback(
			userinput.EventKeyboard{Sym: 'a', Down: true, Mod: userinput.KeyModShift},
			userinput.EventKeyboard{Sym: 'a', Down: true},
		),
	}
	c := newController(src, &session{}, &driver{})

	// shift was released before the event was processed
	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Key, keys.Key('A'))

	// shift was pressed before the event was processed
	src.mod = userinput.KeyModShift
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Key, keys.Key('a'))

	// the modifier flags are the live state
	test.ExpectEquality(t, c.Modifiers(), input.KeyFlags(userinput.KeyModShift))
}

func TestGameplayWithoutTouch(t *testing.T) {
	src := userinput.NewPlayback(keyDown('x'), press(10, 10))
	c := newController(src, &session{gameplay: true}, &driver{})

	ev := c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventKeyDown)

	// without touch controls there is no debounce and no flush
	ev = c.GetEvent()
	test.ExpectEquality(t, ev.Type, input.EventMouseButton)
	test.ExpectEquality(t, ev.Buttons, mouse.Left)
	test.ExpectEquality(t, src.Flushed, 0)
}
