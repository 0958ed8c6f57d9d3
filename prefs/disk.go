// This file is part of Accsim.
//
// Accsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Accsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Accsim.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand. it is maintained by accsim ***"

// the separator between key and value in the preferences file
const separator = " :: "

// Disk represents preference values as stored on disk. A preferences file can
// be shared by more than one Disk instance. Entries in the file that are not
// known to the Disk instance are left untouched by Save().
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for disk")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference value to the disk instance. The key must be unique and must
// not contain the separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.Contains(key, separator) || strings.Contains(key, "\n") {
		return fmt.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already exists (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the preferences file. a missing file is not an error
func (dsk *Disk) read() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return entries, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boiler plate
	if !scanner.Scan() {
		return entries, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		entries[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return entries, nil
}

// Save current preference values to disk. Entries in the file that do not
// belong to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range slices.Sorted(maps.Keys(entries)) {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, entries[k])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values on the command line stack take
// precedence over the values in the file.
func (dsk *Disk) Load() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if v, ok := entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}
