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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/prefs"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.Set("FALSE"))
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectSuccess(t, v.Set("True"))
	test.ExpectEquality(t, v.String(), "true")
	test.ExpectFailure(t, v.Set(10))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")
	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, v.Get().(int), 3)
	test.ExpectSuccess(t, v.Set(" -7 "))
	test.ExpectEquality(t, v.Get().(int), -7)
	test.ExpectFailure(t, v.Set("foo"))
	test.ExpectFailure(t, v.Set(1.5))
	test.ExpectEquality(t, v.Get().(int), -7)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")
	test.ExpectSuccess(t, v.Set(0.5))
	test.ExpectEquality(t, v.Get().(float64), 0.5)
	test.ExpectSuccess(t, v.Set("1.25"))
	test.ExpectEquality(t, v.String(), "1.250")
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.Get().(float64), 2.0)
	test.ExpectFailure(t, v.Set("foo"))
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set("hello world"))
	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "hello")
	test.ExpectSuccess(t, v.Set("goodbye"))
	test.ExpectEquality(t, v.String(), "goodb")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post []int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = append(post, value.(int))
		return nil
	})

	test.ExpectSuccess(t, v.Set(1))
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectSuccess(t, v.Set(1))

	// pre hook prevented the change and the post hook was not called
	test.ExpectEquality(t, v.Get().(int), 1)
	test.ExpectEquality(t, len(post), 2)
}

func TestDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	var b prefs.Bool
	var i prefs.Int
	var s prefs.String

	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectSuccess(t, dsk.Add("test.int", &i))
	test.ExpectSuccess(t, dsk.Add("test.string", &s))

	err = dsk.Add("test.int", &i)
	test.ExpectEquality(t, curated.Is(err, prefs.DuplicateKey), true)

	// no file yet
	err = dsk.Load()
	test.ExpectEquality(t, curated.Is(err, prefs.NoPrefsFile), true)

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, i.Set(42))
	test.ExpectSuccess(t, s.Set("foo bar"))
	test.ExpectSuccess(t, dsk.Save())

	// an unknown value in the file is preserved
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	data = append(data, []byte("other.value :: 99\n")...)
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o600))

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, i.Get().(int), 0)

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, i.Get().(int), 42)
	test.ExpectEquality(t, s.String(), "foo bar")

	test.ExpectSuccess(t, dsk.Save())
	data, err = os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "other.value :: 99\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "test.int :: 42\n"))

	test.ExpectEquality(t, dsk.String(), "test.bool :: true\ntest.int :: 42\ntest.string :: foo bar\n")
}

func TestDiskCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	test.DemandSuccess(t, os.WriteFile(pth, []byte("test.int :: 10\n"), 0o600))

	prefs.PushCommandLineStack("test.int::20")
	defer prefs.PopCommandLineStack()

	var i prefs.Int
	dsk, err := prefs.NewDisk(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, dsk.Add("test.int", &i))
	test.ExpectEquality(t, i.Get().(int), 20)

	// the command line value takes precedence over the file
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get().(int), 20)
}
