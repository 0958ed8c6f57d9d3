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

package fetch

import (
	"fmt"
	"time"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/hardware/clocks"
	"github.com/accsim/accsim/hardware/cpu/instructions"
)

// ProgramBoundsError is returned when an address outside of the program is
// requested.
const ProgramBoundsError = "fetch: address %d outside of program (length %d)"

// line is the single cache line.
type line struct {
	valid   bool
	address int
	ins     instructions.Instruction
}

// Stats records the activity of the fetch unit.
type Stats struct {
	Fetches    int
	Hits       int
	Misses     int
	Prefetches int

	// total latency imposed by the fetch unit
	Latency time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("fetches=%d hits=%d misses=%d prefetches=%d latency=%v",
		s.Fetches, s.Hits, s.Misses, s.Prefetches, s.Latency)
}

// Unit is the fetch unit.
type Unit struct {
	program []instructions.Instruction
	timing  clocks.Timing
	clock   clocks.Clock

	cache line

	Stats Stats
}

// NewUnit is the preferred method of initialisation for the Unit type. The
// program is not copied and must not be changed while the Unit is in use.
func NewUnit(program []instructions.Instruction, timing clocks.Timing, clock clocks.Clock) *Unit {
	if clock == nil {
		clock = clocks.Real{}
	}
	return &Unit{
		program: program,
		timing:  timing,
		clock:   clock,
	}
}

// SetClock changes the clock used to impose latency. A nil clock is the same
// as clocks.Real.
func (u *Unit) SetClock(clock clocks.Clock) {
	if clock == nil {
		clock = clocks.Real{}
	}
	u.clock = clock
}

// Timing returns the latencies used by the fetch unit.
func (u *Unit) Timing() clocks.Timing {
	return u.timing
}

// ProgramLength returns the number of instructions in the program.
func (u *Unit) ProgramLength() int {
	return len(u.program)
}

// Reset empties the cache line and clears the stats.
func (u *Unit) Reset() {
	u.cache = line{}
	u.Stats = Stats{}
}

// Cached returns the address tagged on the cache line. The boolean is false if
// the cache line is empty.
func (u *Unit) Cached() (int, bool) {
	return u.cache.address, u.cache.valid
}

func (u *Unit) wait(d time.Duration) {
	u.Stats.Latency += d
	u.clock.Wait(d)
}

// read an instruction from the program into the cache line.
func (u *Unit) load(address int) error {
	if address < 0 || address >= len(u.program) {
		return curated.Errorf(ProgramBoundsError, address, len(u.program))
	}
	u.cache = line{
		valid:   true,
		address: address,
		ins:     u.program[address],
	}
	return nil
}

// Fetch returns the instruction at the address. The boolean return value
// indicates whether the instruction was found in the cache.
func (u *Unit) Fetch(address int) (instructions.Instruction, bool, error) {
	u.Stats.Fetches++
	u.wait(u.timing.Fetch)

	if u.cache.valid && u.cache.address == address {
		u.Stats.Hits++
		return u.cache.ins, true, nil
	}

	u.Stats.Misses++
	u.wait(u.timing.MissPenalty)

	if err := u.load(address); err != nil {
		return instructions.Instruction{}, false, err
	}

	return u.cache.ins, false, nil
}

// Prefetch loads the instruction after the address into the cache line. If
// the address is the last instruction in the program the last instruction is
// loaded again.
func (u *Unit) Prefetch(address int) error {
	u.Stats.Prefetches++
	u.wait(u.timing.Prefetch)

	return u.load(min(address+1, len(u.program)-1))
}
