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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopheradvance/modalflag"
	"github.com/jetsetilly/gopheradvance/test"
)

const testScene = `
function setup()
	poke16(DISPCNT, 0x0403)
end

function frame(n)
	poke16(VRAM + (n % 240) * 2, rgb(31, n % 32, 0))
end
`

// prepares a temporary directory with a local resource directory and a scene
// script. returns the name of the script
func prepare(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopheradvance", 0o700))
	test.DemandSuccess(t, os.WriteFile("test.lua", []byte(testScene), 0o644))
	return "test.lua"
}

func modes(args ...string) *modalflag.Modes {
	md := modalflag.NewModes(nil, args)
	md.AddModes("RUN", "HEADLESS", "SHOT", "STATE")
	_, _ = md.Parse()
	return md
}

func TestHeadless(t *testing.T) {
	scn := prepare(t)

	var a strings.Builder
	err := headless(context.Background(), modes("headless", "-frames", "10", scn), &a)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(a.String(), "(10 frames)\n"))

	// the digest is the same every time
	var b strings.Builder
	err = headless(context.Background(), modes("headless", "-frames", "10", scn), &b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.String(), b.String())

	// and different for a different number of frames
	var c strings.Builder
	err = headless(context.Background(), modes("headless", "-frames", "11", scn), &c)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, a.String(), c.String())
}

func TestMissingScene(t *testing.T) {
	prepare(t)

	var w strings.Builder
	err := headless(context.Background(), modes("headless"), &w)
	test.ExpectFailure(t, err)

	err = headless(context.Background(), modes("headless", "missing.lua"), &w)
	test.ExpectFailure(t, err)
}

func TestShot(t *testing.T) {
	scn := prepare(t)

	var w strings.Builder
	err := shot(context.Background(), modes("shot", "-frames", "2", "-scale", "2", scn), &w)
	test.DemandSuccess(t, err)

	fn := strings.TrimSpace(strings.TrimPrefix(w.String(), "screenshot saved to "))
	test.ExpectEquality(t, filepath.Ext(fn), ".png")

	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 0)
}

func TestState(t *testing.T) {
	scn := prepare(t)

	var w strings.Builder
	err := state(context.Background(), modes("state", scn), &w)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "Registers"))
}

func TestExampleScenes(t *testing.T) {
	scenes, err := filepath.Glob("scenes/*.lua")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(scenes) > 0, true)

	for i := range scenes {
		scenes[i], err = filepath.Abs(scenes[i])
		test.DemandSuccess(t, err)
	}

	prepare(t)

	for _, scn := range scenes {
		var w strings.Builder
		err := headless(context.Background(), modes("headless", "-frames", "5", scn), &w)
		test.ExpectSuccess(t, err)
	}
}
