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
	"os"

	"github.com/abuse-go/sdlport/curated"
	"github.com/abuse-go/sdlport/input"
	"github.com/abuse-go/sdlport/logger"
	"github.com/abuse-go/sdlport/notifications"
	"github.com/abuse-go/sdlport/paths"
)

// Display is the part of the platform that the Driver acts on. It is
// implemented by the Window type.
type Display interface {
	ToggleFullscreen() (bool, error)
	ToggleGrab() (bool, error)
	Screenshot(filename string) error
}

// UnsupportedCommand is returned by Execute() for an unknown command.
const UnsupportedCommand = "sdlport: unsupported command: %v"

// Driver implements the input.Driver interface.
type Driver struct {
	display Display
	notify  notifications.Notify
	prefs   *Preferences

	// called for the quit command. if nil then the program exits immediately
	// with status zero
	Quit func()
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The notify argument can be nil.
func NewDriver(display Display, notify notifications.Notify, prefs *Preferences) *Driver {
	return &Driver{
		display: display,
		notify:  notify,
		prefs:   prefs,
	}
}

func onOff(set bool) string {
	if set {
		return "ON"
	}
	return "OFF"
}

func (drv *Driver) notice(notice notifications.Notice, message string) error {
	logger.Log(logger.Allow, "sdlport", message)
	if drv.notify == nil {
		return nil
	}
	return drv.notify.Notify(notice, message)
}

// Execute implements the input.Driver interface.
func (drv *Driver) Execute(cmd input.Command) error {
	switch cmd {
	case input.CommandQuit:
		if drv.Quit != nil {
			drv.Quit()
			return nil
		}
		os.Exit(0)

	case input.CommandFullscreen:
		set, err := drv.display.ToggleFullscreen()
		if err != nil {
			return err
		}
		return drv.notice(notifications.NotifyFullscreen, fmt.Sprintf("Fullscreen: %s", onOff(set)))

	case input.CommandGrab:
		set, err := drv.display.ToggleGrab()
		if err != nil {
			return err
		}
		return drv.notice(notifications.NotifyGrabMouse, fmt.Sprintf("Grab Mouse: %s", onOff(set)))

	case input.CommandScreenshot:
		filename := ""
		if drv.prefs != nil {
			filename = drv.prefs.Screenshot.String()
		}
		if filename == "" {
			filename = paths.UniqueFilename("screenshot", ".bmp")
		}
		if err := drv.display.Screenshot(filename); err != nil {
			return err
		}
		return drv.notice(notifications.NotifyScreenshot, fmt.Sprintf("Screenshot saved to: %s", filename))
	}

	return curated.Errorf(UnsupportedCommand, cmd)
}
