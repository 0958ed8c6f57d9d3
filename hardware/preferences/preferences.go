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

package preferences

import (
	"fmt"
	"time"

	"github.com/accsim/accsim/hardware/clocks"
	"github.com/accsim/accsim/prefs"
	"github.com/accsim/accsim/resources"
)

// DefaultMemorySize is the number of data memory cells.
const DefaultMemorySize = 100

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// number of cells in data memory. the value must be positive
	MemorySize prefs.Int

	// whether the fetch unit performs a prefetch after every fetch
	Prefetch prefs.Bool

	// latency charged to every fetch
	FetchTime prefs.Duration

	// additional latency charged on a cache miss
	MissPenalty prefs.Duration

	// latency charged for a prefetch
	PrefetchTime prefs.Duration
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("memory=%s prefetch=%s %s", p.MemorySize.String(), p.Prefetch.String(), p.Timing())
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resources directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() but with an explicit
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := newPreferences()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		v   interface {
			fmt.Stringer
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"hardware.memory.size", &p.MemorySize},
		{"hardware.fetch.prefetch", &p.Prefetch},
		{"hardware.fetch.time", &p.FetchTime},
		{"hardware.fetch.missPenalty", &p.MissPenalty},
		{"hardware.fetch.prefetchTime", &p.PrefetchTime},
	} {
		if err := p.dsk.Add(e.key, e.v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaults returns preferences with the default values and no backing
// file. Load() and Save() do nothing.
func NewDefaults() *Preferences {
	return newPreferences()
}

func newPreferences() *Preferences {
	p := &Preferences{}

	p.MemorySize.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("preferences: memory size must be positive (%d)", v.(int))
		}
		return nil
	})

	nonNegative := func(v prefs.Value) error {
		if v.(time.Duration) < 0 {
			return fmt.Errorf("preferences: latency cannot be negative (%v)", v)
		}
		return nil
	}
	p.FetchTime.SetHookPre(nonNegative)
	p.MissPenalty.SetHookPre(nonNegative)
	p.PrefetchTime.SetHookPre(nonNegative)

	p.SetDefaults()

	return p
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.MemorySize.Set(DefaultMemorySize)
	_ = p.Prefetch.Set(false)
	_ = p.FetchTime.Set(clocks.FetchTime)
	_ = p.MissPenalty.Set(clocks.MissPenalty)
	_ = p.PrefetchTime.Set(clocks.PrefetchTime)
}

// Timing returns the latency values as a clocks.Timing instance.
func (p *Preferences) Timing() clocks.Timing {
	return clocks.Timing{
		Fetch:       p.FetchTime.Get().(time.Duration),
		MissPenalty: p.MissPenalty.Get().(time.Duration),
		Prefetch:    p.PrefetchTime.Get().(time.Duration),
	}
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
