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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/accsim/accsim/prefs"
	"github.com/accsim/accsim/test"
)

func readPrefFile(t *testing.T, fn string) string {
	t.Helper()
	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return string(b)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, dsk.Save())

	expected := fmt.Sprintf("%s\ntest :: true\ntestB :: false\n", prefs.WarningBoilerPlate)
	test.ExpectEquality(t, readPrefFile(t, fn), expected)
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("-99"))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectFailure(t, w.Set(1.5))
	test.ExpectSuccess(t, dsk.Save())

	expected := fmt.Sprintf("%s\nnumber :: 10\nnumberB :: -99\n", prefs.WarningBoilerPlate)
	test.ExpectEquality(t, readPrefFile(t, fn), expected)
}

func TestDuration(t *testing.T) {
	var v prefs.Duration
	test.ExpectEquality(t, v.Get().(time.Duration), 0)
	test.ExpectSuccess(t, v.Set("150ms"))
	test.ExpectEquality(t, v.Get().(time.Duration), 150*time.Millisecond)
	test.ExpectEquality(t, v.String(), "150ms")
	test.ExpectSuccess(t, v.Set(time.Second))
	test.ExpectEquality(t, v.String(), "1s")
	test.ExpectFailure(t, v.Set("soon"))
	test.ExpectFailure(t, v.Set(10))
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, v.Set("hello"))
	test.ExpectEquality(t, v.String(), "hello")
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.String(), "10")
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) <= 0 {
			return fmt.Errorf("must be positive")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)

	// rejected value leaves the stored value unchanged
	test.ExpectFailure(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Duration
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("duration", &w))

	// missing file is not an error
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, v.Set(42))
	test.ExpectSuccess(t, w.Set("25ms"))
	test.ExpectSuccess(t, dsk.Save())

	test.ExpectSuccess(t, v.Reset())
	test.ExpectSuccess(t, w.Reset())
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 42)
	test.ExpectEquality(t, w.Get().(time.Duration), 25*time.Millisecond)
}

func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.String
	var b prefs.String
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, a.Set("foo"))
	test.ExpectSuccess(t, b.Set("bar"))

	// saving one disk instance preserves the entries of the other
	test.ExpectSuccess(t, dskA.Save())
	test.ExpectSuccess(t, dskB.Save())

	expected := fmt.Sprintf("%s\na :: foo\nb :: bar\n", prefs.WarningBoilerPlate)
	test.ExpectEquality(t, readPrefFile(t, fn), expected)
}

func TestInvalidFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\nfoo :: bar\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectFailure(t, dsk.Load())
}

func TestAdd(t *testing.T) {
	_, err := prefs.NewDisk("")
	test.ExpectFailure(t, err)

	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectFailure(t, dsk.Add("foo", &v))
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add("foo :: bar", &v))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, strings.HasPrefix(dsk.String(), "foo :: true"))
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("number::20; unused::true")
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 20)

	// consumed entries are not returned by the pop
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::true")

	// the file is not changed by the command line
	expected := fmt.Sprintf("%s\nnumber :: 10\n", prefs.WarningBoilerPlate)
	test.ExpectEquality(t, readPrefFile(t, fn), expected)
}
