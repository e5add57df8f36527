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

// digit and punctuation substitutions when shift is held. the digits follow
// the UK keyboard layout.
var shifted = map[Key]Key{
	'1':  '!',
	'2':  '"',
	'3':  '#',
	'4':  '$',
	'5':  '%',
	'6':  '^',
	'7':  '&',
	'8':  '*',
	'9':  '(',
	'0':  ')',
	'-':  '_',
	'=':  '+',
	',':  '<',
	'.':  '>',
	'/':  '?',
	';':  ':',
	'\'': '"',
}

// Shifted returns the key produced by k when shift is held. Lower case
// letters become upper case. Keys without a shifted form are returned
// unchanged.
func Shifted(k Key) Key {
	if k >= 'a' && k <= 'z' {
		return k - 'a' + 'A'
	}
	if s, ok := shifted[k]; ok {
		return s
	}
	return k
}
