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

	"github.com/accsim/accsim/hardware/clocks"
	"github.com/accsim/accsim/hardware/cpu"
	"github.com/accsim/accsim/hardware/cpu/execution"
	"github.com/accsim/accsim/hardware/cpu/instructions"
	"github.com/accsim/accsim/hardware/cpu/registers"
	"github.com/accsim/accsim/hardware/fetch"
	"github.com/accsim/accsim/hardware/memory"
	"github.com/accsim/accsim/hardware/preferences"
	"github.com/accsim/accsim/logger"
)

// ExecutionError wraps any error that occurs during an instruction cycle. The
// first value is the context of the cycle and the second is the error.
const ExecutionError = "hardware: %s: %v"

// Tracer implementations are notified of every completed instruction cycle.
type Tracer interface {
	Trace(result execution.Result)
}

// Processor is the main container for the emulated components.
type Processor struct {
	Prefs *preferences.Preferences

	Mem   *memory.Memory
	CPU   *cpu.CPU
	Fetch *fetch.Unit

	program []instructions.Instruction
	tracers []Tracer
}

// NewProcessor creates a new Processor and everything associated with it. A
// nil preferences argument means the default values are used. The program is
// copied.
//
// The memory size and the fetch latencies are read from the preferences once.
// The prefetch preference is consulted on every cycle.
func NewProcessor(prefs *preferences.Preferences, program []instructions.Instruction) (*Processor, error) {
	if prefs == nil {
		prefs = preferences.NewDefaults()
	}

	prc := &Processor{
		Prefs:   prefs,
		program: append([]instructions.Instruction(nil), program...),
	}

	var err error

	prc.Mem, err = memory.NewMemory(prefs.MemorySize.Get().(int))
	if err != nil {
		return nil, err
	}

	prc.CPU = cpu.NewCPU(prc.Mem)
	prc.Fetch = fetch.NewUnit(prc.program, prefs.Timing(), nil)

	logger.Logf(logger.Allow, "hardware", "memory size %d", prc.Mem.Size())
	logger.Logf(logger.Allow, "hardware", "program length %d", len(prc.program))
	logger.Logf(logger.Allow, "hardware", "latency %s", prc.Fetch.Timing())

	return prc, nil
}

func (prc *Processor) String() string {
	return prc.CPU.String()
}

// SetClock changes how latency is imposed. The default is clocks.Real, which
// blocks for the duration of the latency.
func (prc *Processor) SetClock(clock clocks.Clock) {
	prc.Fetch.SetClock(clock)
}

// AttachTracer adds a Tracer to be notified of each instruction cycle. Tracers
// are notified in the order they were attached.
func (prc *Processor) AttachTracer(tracer Tracer) {
	if tracer != nil {
		prc.tracers = append(prc.tracers, tracer)
	}
}

// DetachTracers removes all tracers.
func (prc *Processor) DetachTracers() {
	prc.tracers = prc.tracers[:0]
}

// Program returns a copy of the program.
func (prc *Processor) Program() []instructions.Instruction {
	return append([]instructions.Instruction(nil), prc.program...)
}

// Halted returns true if the program has executed a HLT instruction.
func (prc *Processor) Halted() bool {
	return prc.CPU.PC.Halted()
}

// Reset the processor to its initial state. The program is kept.
func (prc *Processor) Reset() {
	prc.CPU.Reset()
	prc.Mem.Reset()
	prc.Fetch.Reset()
}

// State is a snapshot of the processor. It is safe to keep a State after the
// processor has continued.
type State struct {
	Accumulator int64
	PC          registers.ProgramCounter
	Indirect    bool

	// the address tagged on the cache line. CacheValid is false if the cache
	// line is empty
	CachedAddress int
	CacheValid    bool

	Memory []int64
	Stats  fetch.Stats
}

func (s State) String() string {
	return fmt.Sprintf("acc=%d pc=%s indirect=%v", s.Accumulator, s.PC, s.Indirect)
}

// State returns a snapshot of the current processor state.
func (prc *Processor) State() State {
	s := State{
		Accumulator: prc.CPU.Acc.Value(),
		PC:          prc.CPU.PC,
		Indirect:    prc.CPU.Addressing.Indirect(),
		Memory:      prc.Mem.Snapshot(),
		Stats:       prc.Fetch.Stats,
	}
	s.CachedAddress, s.CacheValid = prc.Fetch.Cached()
	return s
}
