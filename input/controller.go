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
	"image"
	"time"

	"github.com/abuse-go/sdlport/assert"
	"github.com/abuse-go/sdlport/bindings"
	"github.com/abuse-go/sdlport/debounce"
	"github.com/abuse-go/sdlport/keys"
	"github.com/abuse-go/sdlport/logger"
	"github.com/abuse-go/sdlport/mouse"
	"github.com/abuse-go/sdlport/touch"
	"github.com/abuse-go/sdlport/userinput"
)

// the time to sleep between polls if the source is not a userinput.Waiter
const pollQuantum = time.Millisecond

// the timeout given to userinput.Waiter.Wait()
const waitTimeout = 10 * time.Millisecond

// Config is used to create a new Controller.
type Config struct {
	// the size of the game screen
	Logical image.Point

	// the size of the platform's window or screen. if this is the zero value
	// then it is assumed to be the same as Logical
	Device image.Point

	// length of the debounce window after leaving a menu
	Debounce time.Duration

	// touch controls are disabled if Touch is nil
	Touch *touch.Layout

	// if Bindings is nil then bindings.Default() is used
	Bindings *bindings.Bindings
}

// Controller produces events for the game. The zero value is not usable and
// NewController() should be used to create a Controller instance.
type Controller struct {
	src     userinput.Source
	session Session
	driver  Driver

	// the goroutine that first called GetEvent()
	owner    assert.Owner
	hasOwner bool

	// synthetic events are returned before any platform event
	queue []Event

	// a platform event read by EventWaiting() but not yet processed
	held userinput.Event

	scaler   mouse.Scaler
	mouse    mouse.Tracker
	bindings *bindings.Bindings
	debounce *debounce.Tracker

	// nil if touch controls are disabled
	touch       *touch.Controls
	touchScaler mouse.Scaler
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController(src userinput.Source, session Session, driver Driver, cfg Config) *Controller {
	if cfg.Device == (image.Point{}) {
		cfg.Device = cfg.Logical
	}
	if cfg.Bindings == nil {
		cfg.Bindings = bindings.Default()
	}

	c := &Controller{
		src:      src,
		session:  session,
		driver:   driver,
		scaler:   mouse.NewScaler(cfg.Device, cfg.Logical),
		bindings: cfg.Bindings,
		debounce: debounce.NewTracker(cfg.Debounce),
	}

	if cfg.Touch != nil {
		c.touch = touch.NewControls(*cfg.Touch, cfg.Logical)
		c.touchScaler = mouse.NewScaler(cfg.Device, cfg.Touch.Surface)
		logger.Logf(logger.Allow, "input", "touch controls enabled (%d buttons)", len(cfg.Touch.Buttons))
	}

	return c
}

// AddRedraw queues a redraw event for the area of the screen.
func (c *Controller) AddRedraw(r image.Rectangle) {
	c.queue = append(c.queue, Event{Type: EventRedraw, Redraw: r})
}

// Push queues an event. The event will be returned by GetEvent() after any
// previously queued events and before any platform event.
func (c *Controller) Push(ev Event) {
	c.queue = append(c.queue, ev)
}

// EventWaiting returns true if a call to GetEvent() would return without
// waiting. A platform event may be read from the source but it is not
// processed until the next call to GetEvent().
func (c *Controller) EventWaiting() bool {
	if len(c.queue) > 0 || c.held != nil {
		return true
	}
	c.held = c.src.Poll()
	return c.held != nil
}

// GetEvent returns the next event for the game. It blocks until an event is
// available.
func (c *Controller) GetEvent() Event {
	c.checkOwner()

	if len(c.queue) > 0 {
		ev := c.queue[0]
		c.queue = c.queue[1:]
		ev.Pointer = c.mouse.Position()
		ev.Buttons = c.mouse.Buttons()
		return ev
	}

	for {
		raw := c.held
		c.held = nil
		if raw == nil {
			raw = c.src.Poll()
		}
		if raw != nil {
			return c.process(raw)
		}
		c.wait()
	}
}

// wait for a platform event. a Waiter can block until the event is ready,
// other sources are polled again after a short sleep
func (c *Controller) wait() {
	if w, ok := c.src.(userinput.Waiter); ok {
		c.held = w.Wait(waitTimeout)
		return
	}
	time.Sleep(pollQuantum)
}

func (c *Controller) checkOwner() {
	if !c.hasOwner {
		c.owner = assert.NewOwner()
		c.hasOwner = true
		return
	}
	if !c.owner.Check() {
		logger.Log(logger.Allow, "input", "GetEvent() called from more than one goroutine")
	}
}

// Modifiers returns the current modifier state in the bit layout used by the
// game. See KeyFlags().
func (c *Controller) Modifiers() int {
	return KeyFlags(c.src.ModState())
}

// Overlay returns the current state of the touch controls. Returns false if
// touch controls are disabled.
func (c *Controller) Overlay() (touch.Overlay, bool) {
	if c.touch == nil {
		return touch.Overlay{}, false
	}
	return c.touch.Overlay(), true
}

// HeldKeys returns the keys of the touch buttons currently pressed.
func (c *Controller) HeldKeys() []keys.Key {
	if c.touch == nil {
		return nil
	}
	return c.touch.Held()
}

// process a single platform event
func (c *Controller) process(raw userinput.Event) Event {
	now := c.src.Ticks()
	inGameplay := c.session.InGameplay()

	// the debounce window only applies to touch input
	if c.debounce.Observe(inGameplay, now) && c.touch != nil {
		c.mouse.Reset()
		c.touch.Deactivate()
		c.src.FlushPointer()
		logger.Logf(logger.Allow, "input", "debounce for %v", c.debounce.Duration())
	}

	// pointer state is refreshed before the event is classified
	var ev Event
	if c.touch != nil {
		if tev, ok := c.refreshTouch(raw, touch.ModeFor(inGameplay), now); ok {
			return tev
		}
		if inGameplay {
			ev.Type = EventMouseMove
		} else {
			ev.Type = c.refreshMouse()
		}
	} else {
		ev.Type = c.refreshMouse()
	}
	ev.Pointer = c.mouse.Position()
	ev.Buttons = c.mouse.Buttons()

	switch raw := raw.(type) {
	case userinput.EventQuit:
		c.execute(CommandQuit)
		ev.Type = EventNone

	case userinput.EventMouseWheel:
		ev.Type = EventNone
		var k keys.Key
		switch {
		case raw.Delta > 0:
			k = c.bindings.Lookup(bindings.WheelUp)
			ev.Type = EventKeyDown
		case raw.Delta < 0:
			k = c.bindings.Lookup(bindings.WheelDown)
			ev.Type = EventKeyUp
		}
		if k == keys.None {
			ev.Type = EventNone
		}
		ev.Key = k

	case userinput.EventKeyboard:
		typ, k, cmd := classifyKeyboard(raw)
		if cmd != CommandNone && raw.Down && !raw.Repeat {
			c.execute(cmd)
		}
		ev.Type = typ
		ev.Key = k

	case userinput.EventMouseButton, userinput.EventMouseMotion:
		// pointer events have already been dealt with

	default:
		// a button edge found for an unrecognised event must still be seen
		if ev.Type != EventMouseButton {
			ev.Type = EventNone
		}
	}

	return ev
}

// refreshMouse updates the mouse tracker from the current platform state.
// returns EventMouseButton if any button has changed.
func (c *Controller) refreshMouse() EventType {
	x, y, mask := c.src.MouseState()
	_, edge := c.mouse.Update(c.scaler.Scale(x, y), mask)
	if edge {
		return EventMouseButton
	}
	return EventMouseMove
}

// refreshTouch tests pointer events against the touch controls. returns true
// if the event has been fully handled, in which case the returned Event should
// be given to the game.
func (c *Controller) refreshTouch(raw userinput.Event, mode touch.Mode, now time.Duration) (Event, bool) {
	x, y, ok := userinput.Pointer(raw)
	if !ok {
		return Event{}, false
	}

	if mode == touch.ModeGameplay && c.debounce.Active(now) {
		c.mouse.Reset()
		return Event{
			Type:    EventNone,
			Pointer: c.mouse.Position(),
		}, true
	}

	p := c.touchScaler.Scale(x, y)

	var sample touch.Sample
	sample.X, sample.Y = p.X, p.Y

	switch raw := raw.(type) {
	case userinput.EventMouseButton:
		var k keys.Key
		var hit bool
		if raw.Down {
			sample.Kind = touch.SamplePress
			k, hit = c.touch.Press(p.X, p.Y, mode)
		} else {
			sample.Kind = touch.SampleRelease
			k, hit = c.touch.Release(p.X, p.Y, mode)
		}
		if hit {
			// the button edge is absorbed by the tracker so that the touch is
			// not also seen as a mouse click
			if mode == touch.ModeGameplay {
				c.mouse.Reset()
			} else {
				c.refreshMouse()
			}
			typ := EventKeyUp
			if raw.Down {
				typ = EventKeyDown
			}
			return Event{Type: typ, Key: k, Pointer: c.mouse.Position()}, true
		}
	default:
		sample.Kind = touch.SampleMotion
	}

	if mode != touch.ModeGameplay {
		return Event{}, false
	}

	// in gameplay the pointer is driven only by the aim stick and the game
	// never sees a mouse button
	c.mouse.Reset()
	if aim, ok := c.touch.Aim(sample); ok {
		c.mouse.Move(aim)
	}
	return Event{}, false
}

func (c *Controller) execute(cmd Command) {
	logger.Logf(logger.Allow, "input", "command: %s", cmd)
	if c.driver == nil {
		return
	}
	if err := c.driver.Execute(cmd); err != nil {
		logger.Logf(logger.Allow, "input", "command: %s: %v", cmd, err)
	}
}
