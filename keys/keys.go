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

package keys

import (
	"fmt"
	"strings"

	"github.com/abuse-go/sdlport/curated"
)

// Key is an abstract key identifier.
type Key int

// None is the zero value and indicates the absence of a key.
const None Key = 0

// Keys with an ASCII control code.
const (
	Backspace Key = 8
	Tab       Key = 9
	Enter     Key = 13
	Esc       Key = 27
	Space     Key = 32
	Delete    Key = 127
)

// Keys with no printable representation.
const (
	Up Key = 256 + iota
	Down
	Left
	Right
	CtrlL
	CtrlR
	AltL
	AltR
	ShiftL
	ShiftR
	CapsLock
	NumLock
	Home
	End
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	Insert
	PageUp
	PageDown
)

var names = map[Key]string{
	Backspace: "backspace",
	Tab:       "tab",
	Enter:     "enter",
	Esc:       "esc",
	Space:     "space",
	Delete:    "delete",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	CtrlL:     "ctrl_l",
	CtrlR:     "ctrl_r",
	AltL:      "alt_l",
	AltR:      "alt_r",
	ShiftL:    "shift_l",
	ShiftR:    "shift_r",
	CapsLock:  "capslock",
	NumLock:   "numlock",
	Home:      "home",
	End:       "end",
	F1:        "f1",
	F2:        "f2",
	F3:        "f3",
	F4:        "f4",
	F5:        "f5",
	F6:        "f6",
	F7:        "f7",
	F8:        "f8",
	F9:        "f9",
	F10:       "f10",
	Insert:    "insert",
	PageUp:    "pageup",
	PageDown:  "pagedown",
}

var byName map[string]Key

func init() {
	byName = make(map[string]Key, len(names))
	for k, n := range names {
		byName[n] = k
	}
}

// Printable returns true if the key has a printable ASCII representation.
func (k Key) Printable() bool {
	return k > Space && k < Delete
}

func (k Key) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	if k.Printable() {
		return string(rune(k))
	}
	if k == None {
		return "none"
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// UnknownKey is the error pattern returned by Parse().
const UnknownKey = "keys: unknown key name (%s)"

// Parse returns the key with the name s. Names are not case sensitive except
// for single printable characters, which name themselves.
func Parse(s string) (Key, error) {
	if len(s) == 1 {
		k := Key(s[0])
		if k.Printable() {
			return k, nil
		}
	}
	if k, ok := byName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return None, curated.Errorf(UnknownKey, s)
}
