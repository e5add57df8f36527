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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. If the filename exists anyway
// then a numeric suffix is added.
//
// Format of the returned string is:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// The ext argument should include the leading dot.
func UniqueFilename(prepend string, ext string) string {
	n := time.Now()
	fn := fmt.Sprintf("%s_%04d%02d%02d_%02d%02d%02d", prepend, n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
	fn = strings.ReplaceAll(fn, string(filepath.Separator), "_")

	u := fn + ext
	for i := 1; ; i++ {
		if _, err := os.Stat(u); err != nil {
			return u
		}
		u = fmt.Sprintf("%s_%d%s", fn, i, ext)
	}
}
