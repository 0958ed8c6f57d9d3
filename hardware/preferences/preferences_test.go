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

package preferences_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/accsim/accsim/hardware/clocks"
	"github.com/accsim/accsim/hardware/preferences"
	"github.com/accsim/accsim/prefs"
	"github.com/accsim/accsim/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectEquality(t, p.MemorySize.Get().(int), preferences.DefaultMemorySize)
	test.ExpectEquality(t, p.Prefetch.Get().(bool), false)
	test.ExpectEquality(t, p.Timing(), clocks.DefaultTiming())

	// no backing file
	test.ExpectSuccess(t, p.Load())
	test.ExpectSuccess(t, p.Save())
}

func TestValidation(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectFailure(t, p.MemorySize.Set(0))
	test.ExpectFailure(t, p.MemorySize.Set(-1))
	test.ExpectEquality(t, p.MemorySize.Get().(int), preferences.DefaultMemorySize)

	test.ExpectFailure(t, p.MissPenalty.Set(-time.Millisecond))
	test.ExpectEquality(t, p.MissPenalty.Get().(time.Duration), clocks.MissPenalty)
	test.ExpectSuccess(t, p.MissPenalty.Set(time.Duration(0)))
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.MemorySize.Set(200))
	test.ExpectSuccess(t, p.Prefetch.Set(true))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.MemorySize.Get().(int), 200)
	test.ExpectEquality(t, q.Prefetch.Get().(bool), true)
	test.ExpectEquality(t, q.Timing(), clocks.DefaultTiming())
}

func TestCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("hardware.memory.size::50; hardware.fetch.missPenalty::1s")
	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, p.MemorySize.Get().(int), 50)
	test.ExpectEquality(t, p.Timing().MissPenalty, time.Second)

	// invalid values on the command line are an error
	prefs.PushCommandLineStack("hardware.memory.size::0")
	_, err = preferences.NewPreferencesFromFile(fn)
	test.ExpectFailure(t, err)
	prefs.PopCommandLineStack()
}
