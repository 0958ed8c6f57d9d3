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

package clocks

import (
	"fmt"
	"time"
)

// Default latencies of the fetch unit.
const (
	FetchTime    = 10 * time.Millisecond
	MissPenalty  = 100 * time.Millisecond
	PrefetchTime = 10 * time.Millisecond
)

// Timing collects the three latencies of the fetch unit.
type Timing struct {
	// every fetch incurs this latency
	Fetch time.Duration

	// additional latency for a fetch that misses the cache
	MissPenalty time.Duration

	// latency of a prefetch
	Prefetch time.Duration
}

// DefaultTiming returns the default latencies.
func DefaultTiming() Timing {
	return Timing{
		Fetch:       FetchTime,
		MissPenalty: MissPenalty,
		Prefetch:    PrefetchTime,
	}
}

func (t Timing) String() string {
	return fmt.Sprintf("fetch=%v miss=%v prefetch=%v", t.Fetch, t.MissPenalty, t.Prefetch)
}

// Clock implementations impose latency on the emulation.
type Clock interface {
	Wait(d time.Duration)
}

// Real blocks the calling goroutine for the duration of the latency.
type Real struct{}

// Wait implements the Clock interface.
func (Real) Wait(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// Tally does not block. It records the total duration of all calls to Wait().
type Tally struct {
	Total time.Duration
	Calls int
}

// Wait implements the Clock interface.
func (t *Tally) Wait(d time.Duration) {
	t.Total += d
	t.Calls++
}

// Reset sets the total and the number of calls to zero.
func (t *Tally) Reset() {
	t.Total = 0
	t.Calls = 0
}
