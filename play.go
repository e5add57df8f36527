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

package main

import (
	"fmt"
	"image"
	"os"

	"github.com/abuse-go/sdlport/bindings"
	"github.com/abuse-go/sdlport/curated"
	"github.com/abuse-go/sdlport/gui/sdlport"
	"github.com/abuse-go/sdlport/gui/termport"
	"github.com/abuse-go/sdlport/input"
	"github.com/abuse-go/sdlport/logger"
	"github.com/abuse-go/sdlport/prefs"
	"github.com/abuse-go/sdlport/statsview"
	"github.com/abuse-go/sdlport/touch"
)

// PlayCmd runs the demonstration.
type PlayCmd struct {
	Terminal  bool   `help:"Read key presses from the terminal instead of opening a window"`
	TTY       string `help:"Terminal device used with --terminal" default:"/dev/tty"`
	Log       bool   `help:"Echo log entries to stderr"`
	Statsview bool   `help:"Launch the statsview server (if compiled in)"`
	Prefs     string `help:"Preference overrides. eg. \"input.touch::true; input.debounce::500ms\""`
	Keys      string `name:"bindings" help:"Key bindings file (TOML or YAML)" type:"path"`
	Logical   string `help:"Size of the game screen" default:"320x200"`
	Device    string `help:"Size of the window" default:"1024x768"`
}

// BadSize is returned when a size on the command line can't be parsed.
const BadSize = "bad size: %s"

func parseSize(s string) (image.Point, error) {
	var p image.Point
	n, err := fmt.Sscanf(s, "%dx%d", &p.X, &p.Y)
	if err != nil || n != 2 || p.X <= 0 || p.Y <= 0 {
		return image.Point{}, curated.Errorf(BadSize, s)
	}
	return p, nil
}

// Run implements the kong command interface.
func (cmd *PlayCmd) Run() error {
	if cmd.Log {
		logger.SetEcho(os.Stderr, true)
		defer logger.SetEcho(nil, false)
	}

	if cmd.Statsview {
		if statsview.Available() {
			statsview.Launch(os.Stderr)
		} else {
			logger.Log(logger.Allow, "sdlport", "statsview is not available in this build")
		}
	}

	if cmd.Prefs != "" {
		prefs.PushCommandLineStack(cmd.Prefs)
		defer prefs.PopCommandLineStack()
	}

	logical, err := parseSize(cmd.Logical)
	if err != nil {
		return err
	}
	device, err := parseSize(cmd.Device)
	if err != nil {
		return err
	}

	b := bindings.Default()
	if cmd.Keys != "" {
		b, err = bindings.Load(cmd.Keys)
		if err != nil {
			return err
		}
	}

	inputPrefs, err := input.NewPreferences()
	if err != nil {
		return err
	}

	cfg := inputPrefs.Config(logical, device)
	cfg.Bindings = b
	if cfg.Touch != nil {
		if err := b.Apply(cfg.Touch); err != nil {
			return err
		}
	}

	if cmd.Terminal {
		return cmd.runTerminal(cfg)
	}
	return cmd.runSDL(cfg, inputPrefs.Overlay.Get().(bool))
}

func (cmd *PlayCmd) runSDL(cfg input.Config, overlay bool) error {
	sdlPrefs, err := sdlport.NewPreferences()
	if err != nil {
		return err
	}

	win, err := sdlport.NewWindow(cfg.Logical, cfg.Device, sdlPrefs)
	if err != nil {
		return err
	}
	defer func() {
		if err := sdlPrefs.Save(); err != nil {
			logger.Log(logger.Allow, "sdlport", err)
		}
		_ = win.Destroy()
	}()

	d := &demo{}
	drv := sdlport.NewDriver(win, d, sdlPrefs)
	drv.Quit = func() {
		d.quit = true
	}

	ctl := input.NewController(sdlport.NewSource(), d, drv, cfg)

	for !d.quit {
		ev := ctl.GetEvent()
		d.update(ev)

		// draw only once the queue of events is empty
		if ctl.EventWaiting() {
			continue
		}

		win.Clear()
		win.DrawScreen(d.InGameplay())
		win.DrawCrosshair(ev.Pointer)
		if ov, ok := ctl.Overlay(); ok && overlay {
			win.DrawOverlay(ov)
		}
		win.Present()
	}

	return nil
}

// driver for the terminal. the terminal can't change fullscreen or grab
// state and has nothing to take a screenshot of
type termDriver struct {
	d *demo
}

// Execute implements the input.Driver interface.
func (drv termDriver) Execute(cmd input.Command) error {
	if cmd == input.CommandQuit {
		drv.d.quit = true
		return nil
	}
	return curated.Errorf(sdlport.UnsupportedCommand, cmd)
}

func (cmd *PlayCmd) runTerminal(cfg input.Config) error {
	if cfg.Touch != nil {
		logger.Log(logger.Allow, "termport", "touch controls are not available in the terminal")
		cfg.Touch = nil
	}

	src, err := termport.NewSource(cmd.TTY)
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Log(logger.Allow, "termport", err)
		}
	}()

	d := &demo{}
	ctl := input.NewController(src, d, termDriver{d: d}, cfg)

	fmt.Print("ctrl-c to quit\r\n")
	for !d.quit {
		ev := ctl.GetEvent()
		d.update(ev)
		if ev.Type != input.EventNone {
			fmt.Printf("%s\r\n", ev)
		}
	}

	return nil
}

// BindingsCmd writes the default bindings in a format suitable for editing.
type BindingsCmd struct {
	Format string `help:"Output format" enum:"toml,yaml" default:"toml"`
}

// Run implements the kong command interface.
func (cmd *BindingsCmd) Run() error {
	b := bindings.FromLayout(touch.DefaultLayout())
	return b.Encode(os.Stdout, bindings.Format(cmd.Format))
}
