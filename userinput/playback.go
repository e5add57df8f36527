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

package userinput

import "time"

// Playback is a Source that returns a predefined list of events. The mouse
// and modifier state are updated as events are returned, in the same way as
// a real platform would update them.
//
// The clock only moves when Advance() is called or when an event added with
// AddAt() is returned.
type Playback struct {
	events []timedEvent
	now    time.Duration
	mod    KeyMod
	x, y   int
	mask   ButtonMask

	// the number of times FlushPointer() has been called
	Flushed int
}

type timedEvent struct {
	ev Event
	at time.Duration
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(events ...Event) *Playback {
	p := &Playback{}
	p.Add(events...)
	return p
}

// Add events to the end of the playback list. The events are returned at
// whatever time the clock reads.
func (p *Playback) Add(events ...Event) {
	for _, ev := range events {
		p.events = append(p.events, timedEvent{ev: ev, at: -1})
	}
}

// AddAt adds an event to the end of the list. The clock is moved to the
// specified time when the event is returned.
func (p *Playback) AddAt(at time.Duration, ev Event) {
	p.events = append(p.events, timedEvent{ev: ev, at: at})
}

// Advance moves the clock forward.
func (p *Playback) Advance(d time.Duration) {
	p.now += d
}

// Pending returns the number of events not yet returned.
func (p *Playback) Pending() int {
	return len(p.events)
}

// Poll implements the Source interface.
func (p *Playback) Poll() Event {
	if len(p.events) == 0 {
		return nil
	}

	te := p.events[0]
	p.events = p.events[1:]
	if te.at > p.now {
		p.now = te.at
	}

	switch ev := te.ev.(type) {
	case EventKeyboard:
		p.mod = ev.Mod
	case EventMouseMotion:
		p.x, p.y = ev.X, ev.Y
	case EventMouseButton:
		p.x, p.y = ev.X, ev.Y
		if ev.Down {
			p.mask |= ev.Button.Mask()
		} else {
			p.mask &^= ev.Button.Mask()
		}
	}

	return te.ev
}

// ModState implements the Source interface.
func (p *Playback) ModState() KeyMod {
	return p.mod
}

// MouseState implements the Source interface.
func (p *Playback) MouseState() (int, int, ButtonMask) {
	return p.x, p.y, p.mask
}

// Ticks implements the Source interface.
func (p *Playback) Ticks() time.Duration {
	return p.now
}

// FlushPointer implements the Source interface.
func (p *Playback) FlushPointer() {
	p.Flushed++
	n := p.events[:0]
	for _, te := range p.events {
		switch te.ev.(type) {
		case EventMouseButton, EventMouseMotion, EventMouseWheel:
			continue
		}
		n = append(n, te)
	}
	p.events = n
}
