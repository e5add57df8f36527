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
	"github.com/abuse-go/sdlport/keys"
	"github.com/abuse-go/sdlport/userinput"
)

// keys with no printable representation. the keypad direction keys are
// aliases of the arrow keys
var symKeys = map[userinput.Sym]keys.Key{
	userinput.SymUp:        keys.Up,
	userinput.SymDown:      keys.Down,
	userinput.SymLeft:      keys.Left,
	userinput.SymRight:     keys.Right,
	userinput.SymKP8:       keys.Up,
	userinput.SymKP2:       keys.Down,
	userinput.SymKP4:       keys.Left,
	userinput.SymKP6:       keys.Right,
	userinput.SymKP0:       keys.Insert,
	userinput.SymCtrlL:     keys.CtrlL,
	userinput.SymCtrlR:     keys.CtrlR,
	userinput.SymAltL:      keys.AltL,
	userinput.SymAltR:      keys.AltR,
	userinput.SymShiftL:    keys.ShiftL,
	userinput.SymShiftR:    keys.ShiftR,
	userinput.SymNumLock:   keys.NumLock,
	userinput.SymCapsLock:  keys.CapsLock,
	userinput.SymHome:      keys.Home,
	userinput.SymEnd:       keys.End,
	userinput.SymBackspace: keys.Backspace,
	userinput.SymTab:       keys.Tab,
	userinput.SymReturn:    keys.Enter,
	userinput.SymSpace:     keys.Space,
	userinput.SymEscape:    keys.Esc,
	userinput.SymDelete:    keys.Delete,
	userinput.SymInsert:    keys.Insert,
	userinput.SymPageUp:    keys.PageUp,
	userinput.SymPageDown:  keys.PageDown,
	userinput.SymF1:        keys.F1,
	userinput.SymF2:        keys.F2,
	userinput.SymF3:        keys.F3,
	userinput.SymF4:        keys.F4,
	userinput.SymF5:        keys.F5,
	userinput.SymF6:        keys.F6,
	userinput.SymF7:        keys.F7,
	userinput.SymF8:        keys.F8,
	userinput.SymF9:        keys.F9,
	userinput.SymF10:       keys.F10,
}

// keys that are commands for the driver
var symCommands = map[userinput.Sym]Command{
	userinput.SymF11:         CommandFullscreen,
	userinput.SymF12:         CommandGrab,
	userinput.SymPrintScreen: CommandScreenshot,
}

// classifyKeyboard returns the event type and key for a keyboard event. Shift
// substitution uses the modifier state recorded with the event.
//
// If the key is a command key then the command is returned with an event type
// of EventNone. The command should only be acted upon if the key is down.
func classifyKeyboard(ev userinput.EventKeyboard) (EventType, keys.Key, Command) {
	if cmd, ok := symCommands[ev.Sym]; ok {
		return EventNone, keys.None, cmd
	}

	typ := EventKeyUp
	if ev.Down {
		typ = EventKeyDown
	}

	if k, ok := symKeys[ev.Sym]; ok {
		return typ, k, CommandNone
	}

	if ev.Sym > userinput.SymSpace && ev.Sym < userinput.SymDelete {
		k := keys.Key(ev.Sym)
		if ev.Mod&userinput.KeyModShift == userinput.KeyModShift {
			k = keys.Shifted(k)
		}
		return typ, k, CommandNone
	}

	return EventNone, keys.None, CommandNone
}

// KeyFlags packs the modifier state into the bit layout used by the game's
// keyboard state. Shift is bit 3, control is bit 2 and alt is bit 1.
func KeyFlags(mod userinput.KeyMod) int {
	var f int
	if mod&userinput.KeyModShift == userinput.KeyModShift {
		f |= 1 << 3
	}
	if mod&userinput.KeyModCtrl == userinput.KeyModCtrl {
		f |= 1 << 2
	}
	if mod&userinput.KeyModAlt == userinput.KeyModAlt {
		f |= 1 << 1
	}
	return f
}
