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
	"image"
	"time"

	"github.com/abuse-go/sdlport/debounce"
	"github.com/abuse-go/sdlport/paths"
	"github.com/abuse-go/sdlport/prefs"
	"github.com/abuse-go/sdlport/touch"
)

// Preferences for the input package.
type Preferences struct {
	dsk *prefs.Disk

	// length of the debounce window after leaving a menu
	Debounce prefs.Duration

	// whether touch controls are enabled
	Touch prefs.Bool

	// whether the touch controls should be drawn
	Overlay prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("input.debounce", &p.Debounce); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("input.touch", &p.Touch); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("input.overlay", &p.Overlay); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Debounce.Set(debounce.DefaultDuration)
	_ = p.Touch.Set(false)
	_ = p.Overlay.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a Config for the logical and device sizes using the current
// preference values. The default touch layout is used if touch controls are
// enabled.
func (p *Preferences) Config(logical, device image.Point) Config {
	cfg := Config{
		Logical:  logical,
		Device:   device,
		Debounce: p.Debounce.Get().(time.Duration),
	}
	if p.Touch.Get().(bool) {
		l := touch.DefaultLayout()
		cfg.Touch = &l
	}
	return cfg
}
