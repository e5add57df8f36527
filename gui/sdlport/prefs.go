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
	"github.com/abuse-go/sdlport/paths"
	"github.com/abuse-go/sdlport/prefs"
)

// Preferences for the SDL platform layer.
type Preferences struct {
	dsk *prefs.Disk

	// whether the window opens in fullscreen mode
	Fullscreen prefs.Bool

	// whether the window grabs the pointer when it opens
	Grab prefs.Bool

	// the file name for screenshots. if empty then a unique name is created
	// for every screenshot
	Screenshot prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
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

	if err := p.dsk.Add("sdlport.fullscreen", &p.Fullscreen); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdlport.grab", &p.Grab); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("sdlport.screenshot", &p.Screenshot); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Fullscreen.Set(false)
	_ = p.Grab.Set(false)
	_ = p.Screenshot.Set("")
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
