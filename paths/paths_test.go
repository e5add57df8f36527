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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abuse-go/sdlport/paths"
	"github.com/abuse-go/sdlport/test"
)

func TestPaths(t *testing.T) {
	chdir(t, t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".sdlport", 0700))

	pth, err := paths.ResourcePath("foo", "bar")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".sdlport", "foo", "bar"))

	_, err = os.Stat(filepath.Join(".sdlport", "foo"))
	test.ExpectSuccess(t, err)

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".sdlport", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	chdir(t, t.TempDir())

	fn := paths.UniqueFilename("screenshot", ".bmp")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "screenshot_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".bmp"))

	// a file with the same name causes a suffix to be added
	test.DemandSuccess(t, os.WriteFile(fn, nil, 0600))
	gn := paths.UniqueFilename("screenshot", ".bmp")
	test.ExpectInequality(t, gn, fn)
	test.ExpectSuccess(t, strings.HasSuffix(gn, "_1.bmp"))
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
