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

package termport

import (
	"errors"
	"io"
	"time"

	"github.com/abuse-go/sdlport/logger"
	"github.com/abuse-go/sdlport/userinput"
	"github.com/pkg/term"
)

// DefaultDevice is the terminal used if no device is given to NewSource().
const DefaultDevice = "/dev/tty"

// how long a read of the terminal waits before checking whether the source
// has been closed
const readTimeout = 100 * time.Millisecond

// Source implements the userinput.Source and userinput.Waiter interfaces for
// a terminal.
type Source struct {
	tty *term.Term

	events chan userinput.Event
	quit   chan struct{}
	done   chan struct{}

	// modifier state of the most recent keyboard event returned by Poll()
	mod userinput.KeyMod

	start time.Time
}

// NewSource is the preferred method of initialisation for the Source type.
// The terminal is put into raw mode until Close() is called.
func NewSource(device string) (*Source, error) {
	if device == "" {
		device = DefaultDevice
	}

	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, err
	}

	err = tty.SetReadTimeout(readTimeout)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, err
	}

	src := &Source{
		tty:    tty,
		events: make(chan userinput.Event, 64),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		start:  time.Now(),
	}

	go src.read()

	logger.Logf(logger.Allow, "termport", "reading from %s", device)

	return src, nil
}

// Close restores the terminal to the state it was in before NewSource().
func (src *Source) Close() error {
	close(src.quit)
	<-src.done
	if err := src.tty.Restore(); err != nil {
		_ = src.tty.Close()
		return err
	}
	return src.tty.Close()
}

func (src *Source) read() {
	defer close(src.done)

	buf := make([]byte, 32)
	for {
		select {
		case <-src.quit:
			return
		default:
		}

		n, err := src.tty.Read(buf)
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Log(logger.Allow, "termport", err)
			src.send(userinput.EventQuit{})
			return
		}

		for _, k := range parse(buf[:n]) {
			if k.quit {
				src.send(userinput.EventQuit{})
				continue
			}
			src.send(userinput.EventKeyboard{Sym: k.sym, Mod: k.mod, Down: true})
			src.send(userinput.EventKeyboard{Sym: k.sym, Mod: k.mod, Down: false})
		}
	}
}

// events are dropped if the source is closed
func (src *Source) send(ev userinput.Event) {
	select {
	case src.events <- ev:
	case <-src.quit:
	}
}

func (src *Source) received(ev userinput.Event) userinput.Event {
	if kb, ok := ev.(userinput.EventKeyboard); ok {
		src.mod = kb.Mod
	}
	return ev
}

// Poll implements the userinput.Source interface.
func (src *Source) Poll() userinput.Event {
	select {
	case ev := <-src.events:
		return src.received(ev)
	default:
	}
	return nil
}

// Wait implements the userinput.Waiter interface.
func (src *Source) Wait(timeout time.Duration) userinput.Event {
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case ev := <-src.events:
		return src.received(ev)
	case <-t.C:
	}
	return nil
}

// ModState implements the userinput.Source interface.
func (src *Source) ModState() userinput.KeyMod {
	return src.mod
}

// MouseState implements the userinput.Source interface. A terminal has no
// pointer.
func (src *Source) MouseState() (int, int, userinput.ButtonMask) {
	return 0, 0, 0
}

// Ticks implements the userinput.Source interface.
func (src *Source) Ticks() time.Duration {
	return time.Since(src.start)
}

// FlushPointer implements the userinput.Source interface. There are never any
// pointer events to flush.
func (src *Source) FlushPointer() {
}
