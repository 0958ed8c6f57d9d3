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
	"fmt"
	"strings"
	"time"

	"github.com/accsim/accsim/hardware/cpu/instructions"
)

// Result records the state of the most recent instruction cycle.
type Result struct {
	// the address the instruction was fetched from
	Address int

	// the instruction and its definition. Defn is nil until the instruction
	// has been decoded
	Instruction instructions.Instruction
	Defn        *instructions.Definition

	// addressing mode at the time the operand was resolved
	Mode instructions.AddressingMode

	// the operand after resolution. only meaningful if the instruction uses
	// its operand
	Resolved int64

	// the accumulator after the instruction
	Accumulator int64

	// the instruction was HLT
	Halted bool

	// fetch information. CacheHit is true if the instruction was found in the
	// cache. Prefetched is true if a prefetch was issued in the same cycle.
	// Latency is the total latency of the cycle
	CacheHit   bool
	Prefetched bool
	Latency    time.Duration

	// whether the cycle has completed. a Result that is not final was
	// interrupted by an error
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04d %s", r.Address, r.Instruction))
	if r.Defn != nil && r.Defn.UsesOperand && r.Mode == instructions.Indirect {
		s.WriteString(fmt.Sprintf(" (%d)", r.Resolved))
	}
	s.WriteString(fmt.Sprintf(" acc=%d", r.Accumulator))
	if r.CacheHit {
		s.WriteString(" hit")
	} else {
		s.WriteString(" miss")
	}
	if r.Prefetched {
		s.WriteString(" +prefetch")
	}
	s.WriteString(fmt.Sprintf(" %v", r.Latency))
	return s.String()
}
