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

package sdlport

import (
	"time"

	"github.com/abuse-go/sdlport/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Source implements the userinput.Source and userinput.Waiter interfaces
// for SDL.
type Source struct{}

// NewSource is the preferred method of initialisation for the Source type.
// SDL must have been initialised with the video subsystem.
func NewSource() *Source {
	return &Source{}
}

// Poll implements the userinput.Source interface.
func (src *Source) Poll() userinput.Event {
	return translate(sdl.PollEvent())
}

// Wait implements the userinput.Waiter interface.
func (src *Source) Wait(timeout time.Duration) userinput.Event {
	return translate(sdl.WaitEventTimeout(int(timeout.Milliseconds())))
}

// ModState implements the userinput.Source interface.
func (src *Source) ModState() userinput.KeyMod {
	return translateMod(sdl.GetModState())
}

// MouseState implements the userinput.Source interface.
func (src *Source) MouseState() (int, int, userinput.ButtonMask) {
	x, y, state := sdl.GetMouseState()
	return int(x), int(y), translateMask(state)
}

// Ticks implements the userinput.Source interface.
func (src *Source) Ticks() time.Duration {
	return time.Duration(sdl.GetTicks()) * time.Millisecond
}

// FlushPointer implements the userinput.Source interface.
func (src *Source) FlushPointer() {
	sdl.PumpEvents()
	sdl.FlushEvents(sdl.MOUSEMOTION, sdl.MOUSEWHEEL)
}
