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

package main

import (
	"time"

	"github.com/abuse-go/sdlport/input"
	"github.com/abuse-go/sdlport/keys"
	"github.com/abuse-go/sdlport/logger"
	"github.com/abuse-go/sdlport/notifications"
)

// how long a notification message is shown for
const messageDuration = 2 * time.Second

// demo is a stand-in for the game. it starts in the menu. pressing enter
// starts the game and escape returns to the menu.
type demo struct {
	gameplay bool

	// set when the program should end
	quit bool

	// the most recent notification and when it was received
	message     string
	messageTime time.Time
}

// InGameplay implements the input.Session interface.
func (d *demo) InGameplay() bool {
	return d.gameplay
}

// Notify implements the notifications.Notify interface.
func (d *demo) Notify(notice notifications.Notice, message string) error {
	d.message = message
	d.messageTime = time.Now()
	logger.Logf(logger.Allow, "demo", "%s: %s", notice, message)
	return nil
}

// the current message. empty if the message has expired
func (d *demo) currentMessage(now time.Time) string {
	if now.Sub(d.messageTime) > messageDuration {
		return ""
	}
	return d.message
}

// update the demo with an event from the controller
func (d *demo) update(ev input.Event) {
	if ev.Type == input.EventNone {
		return
	}

	logger.Log(logger.Allow, "demo", ev)

	if ev.Type != input.EventKeyDown {
		return
	}

	switch ev.Key {
	case keys.Enter:
		if !d.gameplay {
			d.gameplay = true
			logger.Log(logger.Allow, "demo", "game started")
		}
	case keys.Esc:
		if d.gameplay {
			d.gameplay = false
			logger.Log(logger.Allow, "demo", "returned to menu")
		}
	}
}
