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
	"testing"

	"github.com/accsim/accsim/prefs"
	"github.com/accsim/accsim/test"
)

func TestCommandLineStack(t *testing.T) {
	// empty stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	prefs.PushCommandLineStack("foo::bar; baz::qux")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "baz::qux; foo::bar")

	// malformed entries are ignored
	prefs.PushCommandLineStack("foo::bar; baz; qux::")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar; qux::")

	// only the top of the stack is consulted
	prefs.PushCommandLineStack("foo::bar")
	prefs.PushCommandLineStack("baz::qux")
	ok, _ := prefs.GetCommandLinePref("foo")
	test.ExpectEquality(t, ok, false)
	ok, v := prefs.GetCommandLinePref("baz")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, v.(string), "qux")

	// value has been consumed
	ok, _ = prefs.GetCommandLinePref("baz")
	test.ExpectEquality(t, ok, false)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "foo::bar")
}
