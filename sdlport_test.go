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
	"image"
	"os"
	"testing"
	"time"

	"github.com/abuse-go/sdlport/input"
	"github.com/abuse-go/sdlport/keys"
	"github.com/abuse-go/sdlport/notifications"
	"github.com/abuse-go/sdlport/test"
)

func TestDemo(t *testing.T) {
	d := &demo{}
	test.ExpectFailure(t, d.InGameplay())

	// key up events and other keys do not change the mode
	d.update(input.Event{Type: input.EventKeyUp, Key: keys.Enter})
	test.ExpectFailure(t, d.InGameplay())
	d.update(input.Event{Type: input.EventKeyDown, Key: keys.Key('a')})
	test.ExpectFailure(t, d.InGameplay())

	d.update(input.Event{Type: input.EventKeyDown, Key: keys.Enter})
	test.ExpectSuccess(t, d.InGameplay())
	d.update(input.Event{Type: input.EventKeyDown, Key: keys.Esc})
	test.ExpectFailure(t, d.InGameplay())
}

func TestDemoMessage(t *testing.T) {
	d := &demo{}
	test.ExpectEquality(t, d.currentMessage(time.Now()), "")

	test.ExpectSuccess(t, d.Notify(notifications.NotifyGrabMouse, "Grab Mouse: ON"))
	test.ExpectEquality(t, d.currentMessage(d.messageTime), "Grab Mouse: ON")
	test.ExpectEquality(t, d.currentMessage(d.messageTime.Add(messageDuration+time.Millisecond)), "")
}

func TestParseSize(t *testing.T) {
	p, err := parseSize("320x200")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, image.Pt(320, 200))

	_, err = parseSize("320")
	test.ExpectFailure(t, err)
	_, err = parseSize("0x200")
	test.ExpectFailure(t, err)
}

func TestFindUserConfig(t *testing.T) {
	t.Setenv("SDLPORT_CONFIG", "")
	test.ExpectEquality(t, findUserConfig([]string{"--config=a.toml"}), "a.toml")
	test.ExpectEquality(t, findUserConfig([]string{"play", "--config", "b.yaml"}), "b.yaml")
	test.ExpectEquality(t, findUserConfig([]string{"--config"}), "")

	t.Setenv("SDLPORT_CONFIG", "c.yml")
	test.ExpectEquality(t, findUserConfig(nil), "c.yml")
}

func TestConfigCandidatePaths(t *testing.T) {
	chdir(t, t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".sdlport", 0700))

	yamlPaths, tomlPaths := configCandidatePaths("user.toml")
	test.DemandSuccess(t, len(tomlPaths) > 0)
	test.ExpectEquality(t, tomlPaths[0], "user.toml")

	yamlPaths, tomlPaths = configCandidatePaths("user.yaml")
	test.DemandSuccess(t, len(yamlPaths) > 0)
	test.ExpectEquality(t, yamlPaths[0], "user.yaml")
	test.ExpectEquality(t, len(tomlPaths), 1)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
