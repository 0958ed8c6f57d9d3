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

package hardware

import (
	"fmt"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/hardware/cpu"
	"github.com/accsim/accsim/hardware/cpu/execution"
)

// Step executes a single instruction cycle: fetch, prefetch (if enabled) and
// execute. The result of the cycle is returned and is also available as
// CPU.LastResult.
//
// Any error is fatal. The processor should be Reset() before it is used again.
func (prc *Processor) Step() (execution.Result, error) {
	if prc.CPU.PC.Halted() {
		return prc.CPU.LastResult, curated.Errorf(cpu.HaltedError)
	}

	pc := prc.CPU.PC.Address()

	// latency of the cycle is the difference in the accumulated latency
	latency := prc.Fetch.Stats.Latency

	ins, hit, err := prc.Fetch.Fetch(pc)
	if err != nil {
		return execution.Result{}, curated.Errorf(ExecutionError, fmt.Sprintf("pc %d", pc), err)
	}

	// the prefetch happens before the instruction is executed and always
	// loads the instruction after the current one, whatever the instruction
	// turns out to do
	prefetched := prc.Prefs.Prefetch.Get().(bool)
	if prefetched {
		if err := prc.Fetch.Prefetch(pc); err != nil {
			return execution.Result{}, curated.Errorf(ExecutionError, fmt.Sprintf("pc %d", pc), err)
		}
	}

	if err := prc.CPU.ExecuteInstruction(ins); err != nil {
		return prc.CPU.LastResult, curated.Errorf(ExecutionError, fmt.Sprintf("pc %d (%s)", pc, ins), err)
	}

	r := &prc.CPU.LastResult
	r.CacheHit = hit
	r.Prefetched = prefetched
	r.Latency = prc.Fetch.Stats.Latency - latency

	for _, t := range prc.tracers {
		t.Trace(*r)
	}

	return *r, nil
}
