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

package cpu

import (
	"fmt"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/hardware/cpu/execution"
	"github.com/accsim/accsim/hardware/cpu/instructions"
	"github.com/accsim/accsim/hardware/cpu/registers"
	"github.com/accsim/accsim/hardware/memory/cpubus"
)

// Sentinal error patterns.
const (
	DivisionByZero = "cpu: division by zero"
	UnknownOpcode  = "cpu: unknown opcode (%d)"
	NegativeShift  = "cpu: negative shift count (%d)"
	HaltedError    = "cpu: processor is halted"
)

// a program counter of -1 means the program has halted. any other negative
// value is outside of the program and will fail on the next fetch
const haltAddress = -1

// CPU implements the accumulator processor.
type CPU struct {
	PC  registers.ProgramCounter
	Acc registers.Register

	// the addressing unit is shared with the dispatch function. ADR toggles
	// the mode
	Addressing *Addressing

	mem cpubus.Memory

	// LastResult is the result of the most recent call to
	// ExecuteInstruction(). it is reset at the start of every call
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is in its reset state.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:        mem,
		PC:         registers.NewProgramCounter(0),
		Acc:        registers.NewRegister(0, "ACC"),
		Addressing: NewAddressing(mem),
	}
	return mc
}

// Plumb CPU into a new memory.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
	mc.Addressing.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s mode=%s", mc.PC.Label(), mc.PC, mc.Acc.Label(), mc.Acc, mc.Addressing.Mode())
}

// Reset puts the CPU in its initial state: the accumulator and program
// counter are zero and addressing is direct.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.PC.Load(0)
	mc.Acc.Load(0)
	mc.Addressing.Reset()
}

// ExecuteInstruction executes a single instruction. The instruction should be
// the one found at the current value of the program counter.
//
// The operand is resolved by the addressing unit before the opcode is
// dispatched, but only if the instruction uses its operand. After a
// successful dispatch the program counter is loaded with the target address
// plus one, including after a jump, so a JMP to address k continues at k+1.
// HLT halts the program counter instead, as does a jump to address -2 (the
// program counter would otherwise be -1, which is the halt address).
//
// Any error is fatal. The PC, accumulator and addressing mode are not changed
// if there is an error but LastResult will be partially filled.
func (mc *CPU) ExecuteInstruction(ins instructions.Instruction) error {
	if mc.PC.Halted() {
		return curated.Errorf(HaltedError)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Instruction = ins
	mc.LastResult.Mode = mc.Addressing.Mode()

	defn, ok := instructions.Lookup(ins.OpCode)
	if !ok {
		return curated.Errorf(UnknownOpcode, int(ins.OpCode))
	}
	mc.LastResult.Defn = &defn

	var y int64
	if defn.UsesOperand {
		var err error
		y, err = mc.Addressing.Resolve(ins.Operand)
		if err != nil {
			return err
		}
	}
	mc.LastResult.Resolved = y

	t, err := mc.dispatch(defn.OpCode, mc.Acc.Value(), mc.PC.Address(), y)
	if err != nil {
		return err
	}

	if t.target+1 == haltAddress {
		t.halt = true
	}

	mc.Acc.Load(t.acc)
	if t.halt {
		mc.PC.Halt()
	} else {
		mc.PC.Load(t.target + 1)
	}

	mc.LastResult.Accumulator = t.acc
	mc.LastResult.Halted = t.halt
	mc.LastResult.Final = true

	return nil
}
