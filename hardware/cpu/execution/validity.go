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

package execution

import (
	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/hardware/clocks"
	"github.com/accsim/accsim/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition and the timing of the fetch
// unit.
func (r Result) IsValid(timing clocks.Timing) error {
	if !r.Final {
		return curated.Errorf("execution: cycle not finalised")
	}

	if r.Defn == nil {
		return curated.Errorf("execution: instruction not decoded")
	}

	if r.Defn.OpCode != r.Instruction.OpCode {
		return curated.Errorf("execution: definition (%s) does not match instruction (%s)", r.Defn.Mnemonic, r.Instruction.OpCode)
	}

	// HLT always halts. a jump can halt if it leaves the program counter at
	// the halt address
	if r.Defn.OpCode == instructions.HLT && !r.Halted {
		return curated.Errorf("execution: unexpected halt state for %s", r.Defn.Mnemonic)
	}
	if r.Halted && r.Defn.OpCode != instructions.HLT && r.Defn.Effect != instructions.Flow {
		return curated.Errorf("execution: unexpected halt state for %s", r.Defn.Mnemonic)
	}

	latency := timing.Fetch
	if !r.CacheHit {
		latency += timing.MissPenalty
	}
	if r.Prefetched {
		latency += timing.Prefetch
	}
	if r.Latency != latency {
		return curated.Errorf("execution: latency wrong for %s (%v instead of %v)", r.Defn.Mnemonic, r.Latency, latency)
	}

	return nil
}
