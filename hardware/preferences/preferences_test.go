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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopheradvance/hardware/preferences"
	"github.com/jetsetilly/gopheradvance/prefs"
	"github.com/jetsetilly/gopheradvance/test"
)

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.FPSCap.Get().(bool), true)
	test.ExpectEquality(t, p.Scale.Get().(int), 3)
	test.ExpectEquality(t, p.Presenter.String(), preferences.PresenterSDL)
	test.ExpectEquality(t, p.Echo.Get().(bool), false)

	// values are validated
	test.ExpectFailure(t, p.Scale.Set(0))
	test.ExpectFailure(t, p.Presenter.Set("opengl"))
	test.ExpectEquality(t, p.Scale.Get().(int), 3)

	test.ExpectSuccess(t, p.Scale.Set(4))
	test.ExpectSuccess(t, p.Presenter.Set(preferences.PresenterEbiten))
	test.ExpectSuccess(t, p.Save())

	p, err = preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Scale.Get().(int), 4)
	test.ExpectEquality(t, p.Presenter.String(), preferences.PresenterEbiten)
}

func TestCommandLine(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("television.fpscap::false; display.scale::2")
	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, p.FPSCap.Get().(bool), false)
	test.ExpectEquality(t, p.Scale.Get().(int), 2)
}
