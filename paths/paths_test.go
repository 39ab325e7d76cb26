// This file is part of Gopheradvance.
//
// Gopheradvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopheradvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopheradvance.  If not, see <https://www.gnu.org/licenses/>.

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/gopheradvance/paths"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestLocalResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopheradvance", 0o700))

	pth, err := paths.ResourcePath("shots", "foo.png")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopheradvance", "shots", "foo.png"))

	// sub-directory has been created
	info, err := os.Stat(filepath.Join(".gopheradvance", "shots"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopheradvance", "preferences"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopheradvance")
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^shot_demo_\d{8}_\d{6}$`)
	fn := paths.UniqueFilename("shot", "scenes/demo.lua")
	test.ExpectSuccess(t, re.MatchString(fn))

	re = regexp.MustCompile(`^shot_\d{8}_\d{6}$`)
	fn = paths.UniqueFilename("shot", "")
	test.ExpectSuccess(t, re.MatchString(fn))
}
