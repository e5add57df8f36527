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

import "fmt"

// Sym identifies a physical key independently of the platform. Printable
// keys use their (unshifted) ASCII value. Other keys have values from
// SymFirstNamed upwards.
type Sym int

// ASCII control keys.
const (
	SymNone      Sym = 0
	SymBackspace Sym = 8
	SymTab       Sym = 9
	SymReturn    Sym = 13
	SymEscape    Sym = 27
	SymSpace     Sym = 32
	SymDelete    Sym = 127
)

// SymFirstNamed is the value of the first key without an ASCII value.
const SymFirstNamed Sym = 0x1000

// Keys without an ASCII value.
const (
	SymUp Sym = SymFirstNamed + iota
	SymDown
	SymLeft
	SymRight
	SymCtrlL
	SymCtrlR
	SymAltL
	SymAltR
	SymShiftL
	SymShiftR
	SymCapsLock
	SymNumLock
	SymHome
	SymEnd
	SymInsert
	SymPageUp
	SymPageDown
	SymPrintScreen
	SymF1
	SymF2
	SymF3
	SymF4
	SymF5
	SymF6
	SymF7
	SymF8
	SymF9
	SymF10
	SymF11
	SymF12
	SymKP0
	SymKP1
	SymKP2
	SymKP3
	SymKP4
	SymKP5
	SymKP6
	SymKP7
	SymKP8
	SymKP9
)

func (s Sym) String() string {
	switch {
	case s == SymNone:
		return "none"
	case s > SymSpace && s < SymDelete:
		return string(rune(s))
	case s >= SymF1 && s <= SymF12:
		return fmt.Sprintf("F%d", int(s-SymF1)+1)
	case s >= SymKP0 && s <= SymKP9:
		return fmt.Sprintf("KP%d", int(s-SymKP0))
	}
	if n, ok := symNames[s]; ok {
		return n
	}
	return fmt.Sprintf("sym(%#x)", int(s))
}

var symNames = map[Sym]string{
	SymBackspace:   "Backspace",
	SymTab:         "Tab",
	SymReturn:      "Return",
	SymEscape:      "Escape",
	SymSpace:       "Space",
	SymDelete:      "Delete",
	SymUp:          "Up",
	SymDown:        "Down",
	SymLeft:        "Left",
	SymRight:       "Right",
	SymCtrlL:       "Left Ctrl",
	SymCtrlR:       "Right Ctrl",
	SymAltL:        "Left Alt",
	SymAltR:        "Right Alt",
	SymShiftL:      "Left Shift",
	SymShiftR:      "Right Shift",
	SymCapsLock:    "CapsLock",
	SymNumLock:     "Numlock",
	SymHome:        "Home",
	SymEnd:         "End",
	SymInsert:      "Insert",
	SymPageUp:      "PageUp",
	SymPageDown:    "PageDown",
	SymPrintScreen: "PrintScreen",
}
