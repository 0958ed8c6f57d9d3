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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/accsim/accsim/hardware"
	"github.com/accsim/accsim/hardware/cpu/execution"
)

// the number of bytes recorded for each instruction
const recordSize = 8 * 5

// Execution implements the hardware.Tracer and Digest interfaces.
type Execution struct {
	digest [sha1.Size]byte

	// the previous digest followed by the record of the latest instruction
	buffer []byte

	// number of instructions in the digest
	count int
}

// NewExecution is the preferred method of initialisation for the Execution
// type. The new instance is attached to the processor.
func NewExecution(prc *hardware.Processor) *Execution {
	dig := &Execution{
		buffer: make([]byte, sha1.Size+recordSize),
	}
	if prc != nil {
		prc.AttachTracer(dig)
	}
	return dig
}

// Hash implements the Digest interface.
func (dig *Execution) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Execution) ResetDigest() {
	clear(dig.digest[:])
	dig.count = 0
}

// Count returns the number of instructions in the digest.
func (dig *Execution) Count() int {
	return dig.count
}

// Trace implements the hardware.Tracer interface.
func (dig *Execution) Trace(r execution.Result) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the buffer
	copy(dig.buffer, dig.digest[:])

	rec := dig.buffer[sha1.Size:]
	binary.LittleEndian.PutUint64(rec[0:], uint64(r.Address))
	binary.LittleEndian.PutUint64(rec[8:], uint64(r.Instruction.OpCode))
	binary.LittleEndian.PutUint64(rec[16:], uint64(r.Instruction.Operand))
	binary.LittleEndian.PutUint64(rec[24:], uint64(r.Resolved))
	binary.LittleEndian.PutUint64(rec[32:], uint64(r.Accumulator))

	dig.digest = sha1.Sum(dig.buffer)
	dig.count++
}

// State returns the hash of the architectural state: the accumulator, the
// program counter, the addressing mode and the contents of memory. Fetch
// statistics and the cache line are not included.
func State(s hardware.State) string {
	b := make([]byte, 0, 8*(len(s.Memory)+3)+2)
	b = binary.LittleEndian.AppendUint64(b, uint64(s.Accumulator))
	b = binary.LittleEndian.AppendUint64(b, uint64(s.PC.Address()))
	if s.PC.Halted() {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	if s.Indirect {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	b = binary.LittleEndian.AppendUint64(b, uint64(len(s.Memory)))
	for _, v := range s.Memory {
		b = binary.LittleEndian.AppendUint64(b, uint64(v))
	}
	return fmt.Sprintf("%x", sha1.Sum(b))
}
