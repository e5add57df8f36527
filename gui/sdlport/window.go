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
	"image"
	"unsafe"

	"github.com/abuse-go/sdlport/curated"
	"github.com/abuse-go/sdlport/logger"
	"github.com/abuse-go/sdlport/version"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLError is returned when an SDL function fails.
const SDLError = "sdlport: %v"

// Window is an SDL window and renderer. The game screen is of the logical
// size and is scaled to fill the window.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	logical image.Point
	prefs   *Preferences
}

// NewWindow is the preferred method of initialisation for the Window type.
// The window is opened at the device size.
func NewWindow(logical, device image.Point, prefs *Preferences) (*Window, error) {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &Window{
		logical: logical,
		prefs:   prefs,
	}

	win.window, err = sdl.CreateWindow(version.String(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(device.X), int32(device.Y),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		_ = win.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	err = win.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	if err != nil {
		_ = win.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	if prefs.Fullscreen.Get().(bool) {
		win.setFullscreen(true)
	}
	if prefs.Grab.Get().(bool) {
		win.window.SetGrab(true)
	}

	return win, nil
}

// Destroy cleans up the resources.
func (win *Window) Destroy() error {
	if win.renderer != nil {
		if err := win.renderer.Destroy(); err != nil {
			return err
		}
		win.renderer = nil
	}
	if win.window != nil {
		if err := win.window.Destroy(); err != nil {
			return err
		}
		win.window = nil
	}
	sdl.Quit()
	return nil
}

// Device returns the size of the window in pixels.
func (win *Window) Device() image.Point {
	w, h := win.window.GetSize()
	return image.Pt(int(w), int(h))
}

func (win *Window) outputSize() image.Point {
	w, h, err := win.renderer.GetOutputSize()
	if err != nil {
		return win.Device()
	}
	return image.Pt(int(w), int(h))
}

func (win *Window) setFullscreen(set bool) {
	var err error
	if set {
		err = win.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		err = win.window.SetFullscreen(0)
	}
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "fullscreen: %v", err)
	}
}

// ToggleFullscreen implements the Display interface.
func (win *Window) ToggleFullscreen() (bool, error) {
	set := win.window.GetFlags()&sdl.WINDOW_FULLSCREEN_DESKTOP != sdl.WINDOW_FULLSCREEN_DESKTOP
	win.setFullscreen(set)
	return set, win.prefs.Fullscreen.Set(set)
}

// ToggleGrab implements the Display interface.
func (win *Window) ToggleGrab() (bool, error) {
	set := !win.window.GetGrab()
	win.window.SetGrab(set)
	return set, win.prefs.Grab.Set(set)
}

// Screenshot implements the Display interface. The contents of the renderer
// are saved as a bitmap.
func (win *Window) Screenshot(filename string) error {
	sz := win.outputSize()

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(sz.X), int32(sz.Y), 32, sdl.PIXELFORMAT_ARGB8888)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer surface.Free()

	pixels := surface.Pixels()
	err = win.renderer.ReadPixels(nil, sdl.PIXELFORMAT_ARGB8888, unsafe.Pointer(&pixels[0]), int(surface.Pitch))
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	err = surface.SaveBMP(filename)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	return nil
}

// Clear the window ready for a new frame.
func (win *Window) Clear() {
	_ = win.renderer.SetDrawColor(0, 0, 0, 255)
	_ = win.renderer.Clear()
}

// Present the frame.
func (win *Window) Present() {
	win.renderer.Present()
}
