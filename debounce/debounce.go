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

// Package debounce suppresses pointer input for a short time after the game
// changes from a menu to gameplay. Without the window, the touch that selected
// the menu item would be seen by the game as a press of whichever virtual
// button lies underneath it.
package debounce

import "time"

// DefaultDuration is the length of the window used by the game.
const DefaultDuration = 300 * time.Millisecond

// State of the Tracker.
type State int

// List of valid State values.
const (
	Idle State = iota
	Debouncing
)

func (s State) String() string {
	if s == Debouncing {
		return "debouncing"
	}
	return "idle"
}

// Tracker observes the mode of the game and opens a debounce window on the
// change from menu to gameplay.
type Tracker struct {
	duration   time.Duration
	state      State
	start      time.Duration
	inGameplay bool
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// A duration of zero disables the debounce window.
func NewTracker(duration time.Duration) *Tracker {
	return &Tracker{duration: duration}
}

// Observe records the current mode. Returns true on the observation where the
// mode changes from menu to gameplay, at which point the debounce window
// starts. Returns false at all other times.
//
// A change from gameplay to menu ends any open window.
func (t *Tracker) Observe(inGameplay bool, now time.Duration) bool {
	was := t.inGameplay
	t.inGameplay = inGameplay

	if !inGameplay {
		t.state = Idle
		return false
	}

	if was {
		return false
	}

	if t.duration > 0 {
		t.state = Debouncing
		t.start = now
	}
	return true
}

// Active returns true if the debounce window is open. The window is open
// while less than the duration has passed since it was started. The first
// call after the window has expired returns the tracker to the Idle state.
func (t *Tracker) Active(now time.Duration) bool {
	if t.state != Debouncing {
		return false
	}
	if now-t.start < t.duration {
		return true
	}
	t.state = Idle
	return false
}

// State returns the current state of the tracker. The state is only updated
// by calls to Observe() and Active().
func (t *Tracker) State() State {
	return t.state
}

// Duration returns the length of the debounce window.
func (t *Tracker) Duration() time.Duration {
	return t.duration
}
