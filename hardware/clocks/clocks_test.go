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

package clocks_test

import (
	"testing"
	"time"

	"github.com/accsim/accsim/hardware/clocks"
	"github.com/accsim/accsim/test"
)

func TestTally(t *testing.T) {
	var c clocks.Tally
	c.Wait(10 * time.Millisecond)
	c.Wait(100 * time.Millisecond)
	test.ExpectEquality(t, c.Total, 110*time.Millisecond)
	test.ExpectEquality(t, c.Calls, 2)

	c.Reset()
	test.ExpectEquality(t, c.Total, 0)
	test.ExpectEquality(t, c.Calls, 0)
}

func TestReal(t *testing.T) {
	var c clocks.Real
	start := time.Now()
	c.Wait(5 * time.Millisecond)
	test.ExpectSuccess(t, time.Since(start) >= 5*time.Millisecond)
}

func TestDefaultTiming(t *testing.T) {
	tm := clocks.DefaultTiming()
	test.ExpectEquality(t, tm.Fetch, 10*time.Millisecond)
	test.ExpectEquality(t, tm.MissPenalty, 100*time.Millisecond)
	test.ExpectEquality(t, tm.Prefetch, 10*time.Millisecond)
	test.ExpectEquality(t, tm.String(), "fetch=10ms miss=100ms prefetch=10ms")
}
