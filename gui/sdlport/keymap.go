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
	"fmt"

	"github.com/abuse-go/sdlport/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// sdl keycodes for printable characters are the same as the ASCII value
var keymap = map[sdl.Keycode]userinput.Sym{
	sdl.K_BACKSPACE:    userinput.SymBackspace,
	sdl.K_TAB:          userinput.SymTab,
	sdl.K_RETURN:       userinput.SymReturn,
	sdl.K_KP_ENTER:     userinput.SymReturn,
	sdl.K_ESCAPE:       userinput.SymEscape,
	sdl.K_SPACE:        userinput.SymSpace,
	sdl.K_DELETE:       userinput.SymDelete,
	sdl.K_UP:           userinput.SymUp,
	sdl.K_DOWN:         userinput.SymDown,
	sdl.K_LEFT:         userinput.SymLeft,
	sdl.K_RIGHT:        userinput.SymRight,
	sdl.K_LCTRL:        userinput.SymCtrlL,
	sdl.K_RCTRL:        userinput.SymCtrlR,
	sdl.K_LALT:         userinput.SymAltL,
	sdl.K_RALT:         userinput.SymAltR,
	sdl.K_LSHIFT:       userinput.SymShiftL,
	sdl.K_RSHIFT:       userinput.SymShiftR,
	sdl.K_CAPSLOCK:     userinput.SymCapsLock,
	sdl.K_NUMLOCKCLEAR: userinput.SymNumLock,
	sdl.K_HOME:         userinput.SymHome,
	sdl.K_END:          userinput.SymEnd,
	sdl.K_INSERT:       userinput.SymInsert,
	sdl.K_PAGEUP:       userinput.SymPageUp,
	sdl.K_PAGEDOWN:     userinput.SymPageDown,
	sdl.K_PRINTSCREEN:  userinput.SymPrintScreen,
	sdl.K_F1:           userinput.SymF1,
	sdl.K_F2:           userinput.SymF2,
	sdl.K_F3:           userinput.SymF3,
	sdl.K_F4:           userinput.SymF4,
	sdl.K_F5:           userinput.SymF5,
	sdl.K_F6:           userinput.SymF6,
	sdl.K_F7:           userinput.SymF7,
	sdl.K_F8:           userinput.SymF8,
	sdl.K_F9:           userinput.SymF9,
	sdl.K_F10:          userinput.SymF10,
	sdl.K_F11:          userinput.SymF11,
	sdl.K_F12:          userinput.SymF12,
	sdl.K_KP_0:         userinput.SymKP0,
	sdl.K_KP_1:         userinput.SymKP1,
	sdl.K_KP_2:         userinput.SymKP2,
	sdl.K_KP_3:         userinput.SymKP3,
	sdl.K_KP_4:         userinput.SymKP4,
	sdl.K_KP_5:         userinput.SymKP5,
	sdl.K_KP_6:         userinput.SymKP6,
	sdl.K_KP_7:         userinput.SymKP7,
	sdl.K_KP_8:         userinput.SymKP8,
	sdl.K_KP_9:         userinput.SymKP9,
}

func translateSym(k sdl.Keycode) userinput.Sym {
	if s, ok := keymap[k]; ok {
		return s
	}
	if k > sdl.K_SPACE && k < sdl.K_DELETE {
		return userinput.Sym(k)
	}
	return userinput.SymNone
}

func translateMod(mod sdl.Keymod) userinput.KeyMod {
	var m userinput.KeyMod
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		m |= userinput.KeyModShift
	}
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		m |= userinput.KeyModCtrl
	}
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		m |= userinput.KeyModAlt
	}
	return m
}

func translateButton(b uint8) userinput.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return userinput.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return userinput.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return userinput.MouseButtonRight
	}
	return userinput.MouseButtonNone
}

func translateMask(state uint32) userinput.ButtonMask {
	var m userinput.ButtonMask
	if state&sdl.Button(sdl.BUTTON_LEFT) != 0 {
		m |= userinput.ButtonLeft
	}
	if state&sdl.Button(sdl.BUTTON_MIDDLE) != 0 {
		m |= userinput.ButtonMiddle
	}
	if state&sdl.Button(sdl.BUTTON_RIGHT) != 0 {
		m |= userinput.ButtonRight
	}
	return m
}

// translate an SDL event into a userinput event. returns nil for a nil event
func translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case nil:
		return nil

	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Sym:    translateSym(ev.Keysym.Sym),
			Down:   ev.Type == sdl.KEYDOWN,
			Mod:    translateMod(sdl.Keymod(ev.Keysym.Mod)),
			Repeat: ev.Repeat != 0,
		}

	case *sdl.MouseButtonEvent:
		return userinput.EventMouseButton{
			Button: translateButton(ev.Button),
			Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
			X:      int(ev.X),
			Y:      int(ev.Y),
		}

	case *sdl.MouseMotionEvent:
		return userinput.EventMouseMotion{
			X: int(ev.X),
			Y: int(ev.Y),
		}

	case *sdl.MouseWheelEvent:
		delta := int(ev.Y)
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			delta = -delta
		}
		return userinput.EventMouseWheel{
			Delta: delta,
		}
	}

	return userinput.EventUnknown{Detail: fmt.Sprintf("%T", ev)}
}
