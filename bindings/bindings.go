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

package bindings

import (
	"slices"

	"github.com/abuse-go/sdlport/curated"
	"github.com/abuse-go/sdlport/keys"
	"github.com/abuse-go/sdlport/touch"
)

// Names used by the mouse wheel.
const (
	WheelUp   = "b4"
	WheelDown = "b3"
)

// Sentinel error patterns.
const (
	UnknownButton = "bindings: no button named %s in layout"
	BadBinding    = "bindings: %s: %v"
	FileError     = "bindings: %v"
	UnknownFormat = "bindings: unsupported file format (%s)"
)

// Button replaces the keys of a button in the touch layout. An Alt value of
// keys.None removes the alternate key.
type Button struct {
	Key keys.Key
	Alt keys.Key
}

// Bindings is the set of named and button bindings.
type Bindings struct {
	names   map[string]keys.Key
	buttons map[string]Button
}

// Default returns the bindings used when no file has been loaded. The mouse
// wheel cycles through the weapons.
func Default() *Bindings {
	return &Bindings{
		names: map[string]keys.Key{
			WheelUp:   keys.PageUp,
			WheelDown: keys.PageDown,
		},
		buttons: make(map[string]Button),
	}
}

// Lookup returns the key bound to the name. Returns keys.None if there is no
// binding.
func (b *Bindings) Lookup(name string) keys.Key {
	return b.names[name]
}

// Set binds a key to the name.
func (b *Bindings) Set(name string, k keys.Key) {
	b.names[name] = k
}

// SetButton replaces the keys of the named button.
func (b *Bindings) SetButton(name string, btn Button) {
	b.buttons[name] = btn
}

// Names returns the bound names in sorted order.
func (b *Bindings) Names() []string {
	return sortedKeys(b.names)
}

// Apply the button bindings to the layout. It is an error for a binding to
// name a button that is not in the layout.
func (b *Bindings) Apply(l *touch.Layout) error {
	for _, name := range sortedKeys(b.buttons) {
		i := l.Button(name)
		if i < 0 {
			return curated.Errorf(UnknownButton, name)
		}
		l.Buttons[i].Key = b.buttons[name].Key
		l.Buttons[i].Alt = b.buttons[name].Alt
	}
	return nil
}

// FromLayout returns the Default() bindings with a button binding for every
// button in the layout. Useful for creating a bindings file for editing.
func FromLayout(l touch.Layout) *Bindings {
	b := Default()
	for _, btn := range l.Buttons {
		b.buttons[btn.Name] = Button{Key: btn.Key, Alt: btn.Alt}
	}
	return b
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	k := make([]string, 0, len(m))
	for n := range m {
		k = append(k, n)
	}
	slices.Sort(k)
	return k
}
