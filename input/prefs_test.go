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

package input_test

import (
	"image"
	"os"
	"testing"
	"time"

	"github.com/abuse-go/sdlport/input"
	"github.com/abuse-go/sdlport/test"
)

func TestPreferences(t *testing.T) {
	chdir(t, t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".sdlport", 0700))

	p, err := input.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Debounce.Get().(time.Duration), 300*time.Millisecond)
	test.ExpectEquality(t, p.Touch.Get().(bool), false)
	test.ExpectEquality(t, p.Overlay.Get().(bool), true)

	cfg := p.Config(image.Pt(320, 200), image.Pt(1024, 768))
	test.ExpectSuccess(t, cfg.Touch == nil)

	test.ExpectSuccess(t, p.Touch.Set(true))
	test.ExpectSuccess(t, p.Debounce.Set("150ms"))
	test.DemandSuccess(t, p.Save())

	// a second instance sees the saved values
	q, err := input.NewPreferences()
	test.DemandSuccess(t, err)
	cfg = q.Config(image.Pt(320, 200), image.Pt(1024, 768))
	test.ExpectEquality(t, cfg.Debounce, 150*time.Millisecond)
	test.DemandSuccess(t, cfg.Touch != nil)
	test.ExpectEquality(t, len(cfg.Touch.Buttons), 8)

	q.SetDefaults()
	test.ExpectEquality(t, q.Touch.Get().(bool), false)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
