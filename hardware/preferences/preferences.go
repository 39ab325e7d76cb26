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

package preferences

import (
	"github.com/jetsetilly/gopheradvance/curated"
	"github.com/jetsetilly/gopheradvance/paths"
	"github.com/jetsetilly/gopheradvance/prefs"
)

// List of presenter names.
const (
	PresenterSDL    = "sdl"
	PresenterEbiten = "ebiten"
)

// Preferences defines and collates all the preference values used by the
// console.
type Preferences struct {
	dsk *prefs.Disk

	// pace the timing engine to real-time
	FPSCap prefs.Bool

	// integer scaling of the display window
	Scale prefs.Int

	// the presenter used by the RUN mode. one of the Presenter values
	Presenter prefs.String

	// echo log entries to the terminal as they are created
	Echo prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but with an explicit file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 || v.(int) > 8 {
			return curated.Errorf("preferences: scale must be between 1 and 8")
		}
		return nil
	})
	p.Presenter.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case PresenterSDL, PresenterEbiten:
			return nil
		}
		return curated.Errorf("preferences: unknown presenter (%s)", v)
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("television.fpscap", &p.FPSCap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.presenter", &p.Presenter)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("logger.echo", &p.Echo)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.FPSCap.Set(true)
	_ = p.Scale.Set(3)
	_ = p.Presenter.Set(PresenterSDL)
	_ = p.Echo.Set(false)
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
