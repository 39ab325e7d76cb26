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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gopheradvance/curated"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no preferences file (%s)"
	DuplicateKey = "prefs: duplicate key (%s)"
)

// the first line of every saved preferences file. lines beginning with # are
// ignored on load
const warningBoilerPlate = "# gopheradvance preferences. values are key :: value"

// the separator between key and value in the preferences file
const fileSeparator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path string

	crit    sync.Mutex
	entries map[string]pref

	// values from the command line take precedence over values in the file
	overrides map[string]string

	// values in the file that have not been added. preserved when saving
	unknown map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]string),
		unknown:   make(map[string]string),
	}, nil
}

// Add preference value to list of values to store/load from disk. If the
// command line stack has a value for the key then it is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		dsk.overrides[key] = v
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	return nil
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, fileSeparator, dsk.entries[k]))
	}
	return s.String()
}

// Reset all entries to the default value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Load preference values from disk. Returns an error with the NoPrefsFile
// pattern if the file does not exist.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, strings.TrimSpace(fileSeparator))
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		p, ok := dsk.entries[key]
		if !ok {
			dsk.unknown[key] = value
			continue
		}
		if _, ok := dsk.overrides[key]; ok {
			continue
		}
		if err := p.Set(value); err != nil {
			return curated.Errorf("prefs: %s: %v", key, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values := make(map[string]string, len(dsk.entries)+len(dsk.unknown))
	for k, v := range dsk.unknown {
		values[k] = v
	}
	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(warningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, fileSeparator, values[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}
