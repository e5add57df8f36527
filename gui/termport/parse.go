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

import "github.com/abuse-go/sdlport/userinput"

// the result of parsing terminal input
type key struct {
	sym  userinput.Sym
	mod  userinput.KeyMod
	quit bool
}

const (
	ctrlC = 0x03
	esc   = 0x1b
)

// final byte of CSI sequences with no parameter
var csiFinal = map[byte]userinput.Sym{
	'A': userinput.SymUp,
	'B': userinput.SymDown,
	'C': userinput.SymRight,
	'D': userinput.SymLeft,
	'H': userinput.SymHome,
	'F': userinput.SymEnd,
}

// parameter of CSI sequences ending with a tilde
var csiTilde = map[string]userinput.Sym{
	"1":  userinput.SymHome,
	"2":  userinput.SymInsert,
	"3":  userinput.SymDelete,
	"4":  userinput.SymEnd,
	"5":  userinput.SymPageUp,
	"6":  userinput.SymPageDown,
	"15": userinput.SymF5,
	"17": userinput.SymF6,
	"18": userinput.SymF7,
	"19": userinput.SymF8,
	"20": userinput.SymF9,
	"21": userinput.SymF10,
	"23": userinput.SymF11,
	"24": userinput.SymF12,
}

// SS3 sequences
var ss3Final = map[byte]userinput.Sym{
	'P': userinput.SymF1,
	'Q': userinput.SymF2,
	'R': userinput.SymF3,
	'S': userinput.SymF4,
}

// parse the bytes from a single read of the terminal. escape sequences split
// across reads are not recognised
func parse(b []byte) []key {
	var keys []key

	for i := 0; i < len(b); i++ {
		c := b[i]

		switch {
		case c == ctrlC:
			keys = append(keys, key{quit: true})

		case c == esc:
			k, n := parseEscape(b[i+1:])
			if k.sym != userinput.SymNone {
				keys = append(keys, k)
			}
			i += n

		case c == '\r' || c == '\n':
			keys = append(keys, key{sym: userinput.SymReturn})

		case c == 0x7f || c == 0x08:
			keys = append(keys, key{sym: userinput.SymBackspace})

		case c == '\t':
			keys = append(keys, key{sym: userinput.SymTab})

		case c >= 0x01 && c <= 0x1a:
			keys = append(keys, key{sym: userinput.Sym('a' + c - 1), mod: userinput.KeyModCtrl})

		case c >= 'A' && c <= 'Z':
			keys = append(keys, key{sym: userinput.Sym(c - 'A' + 'a'), mod: userinput.KeyModShift})

		case c >= ' ' && c < 0x7f:
			keys = append(keys, key{sym: userinput.Sym(c)})
		}
	}

	return keys
}

// parse the bytes following an escape. returns the number of bytes consumed
func parseEscape(b []byte) (key, int) {
	if len(b) < 2 {
		return key{sym: userinput.SymEscape}, 0
	}

	switch b[0] {
	case '[':
		if s, ok := csiFinal[b[1]]; ok {
			return key{sym: s}, 2
		}
		for j := 1; j < len(b); j++ {
			if b[j] == '~' {
				if s, ok := csiTilde[string(b[1:j])]; ok {
					return key{sym: s}, j + 1
				}
				return key{sym: userinput.SymNone}, j + 1
			}
			if b[j] < '0' || b[j] > '9' {
				break
			}
		}
	case 'O':
		if s, ok := ss3Final[b[1]]; ok {
			return key{sym: s}, 2
		}
	}

	return key{sym: userinput.SymEscape}, 0
}
