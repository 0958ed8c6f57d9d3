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
	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/hardware/cpu/instructions"
)

// transition is the outcome of a single instruction. the program counter is
// loaded with target+1 unless halt is true.
type transition struct {
	acc    int64
	target int
	halt   bool
}

// dispatch performs the operation for the opcode. a is the current
// accumulator, p is the address of the instruction and y is the resolved
// operand. the only side effects are on memory (SAV) and on the addressing
// mode (ADR).
func (mc *CPU) dispatch(op instructions.OpCode, a int64, p int, y int64) (transition, error) {
	switch op {
	case instructions.NOP:
		return transition{acc: a, target: p}, nil

	case instructions.MOV:
		return transition{acc: y, target: p}, nil

	case instructions.ADD:
		return transition{acc: a + y, target: p}, nil

	case instructions.SUB:
		return transition{acc: a - y, target: p}, nil

	case instructions.MUL:
		return transition{acc: a * y, target: p}, nil

	case instructions.DIV:
		if y == 0 {
			return transition{}, curated.Errorf(DivisionByZero)
		}
		// integer division truncates towards zero
		return transition{acc: a / y, target: p}, nil

	case instructions.AND:
		// result is the operand if the accumulator is non-zero, otherwise the
		// accumulator. this is not a boolean result
		if a != 0 {
			return transition{acc: y, target: p}, nil
		}
		return transition{acc: a, target: p}, nil

	case instructions.OR:
		// result is the accumulator if it is non-zero, otherwise the operand
		if a != 0 {
			return transition{acc: a, target: p}, nil
		}
		return transition{acc: y, target: p}, nil

	case instructions.NOT:
		if a == 0 {
			return transition{acc: 1, target: p}, nil
		}
		return transition{acc: 0, target: p}, nil

	case instructions.BWA:
		return transition{acc: a & y, target: p}, nil

	case instructions.BWO:
		return transition{acc: a | y, target: p}, nil

	case instructions.BWX:
		return transition{acc: a ^ y, target: p}, nil

	case instructions.BWL:
		if y < 0 {
			return transition{}, curated.Errorf(NegativeShift, y)
		}
		return transition{acc: a << y, target: p}, nil

	case instructions.BWR:
		if y < 0 {
			return transition{}, curated.Errorf(NegativeShift, y)
		}
		return transition{acc: a >> y, target: p}, nil

	case instructions.BWN:
		return transition{acc: ^a, target: p}, nil

	case instructions.JMP:
		return transition{acc: a, target: int(y)}, nil

	case instructions.JPZ:
		if a == 0 {
			return transition{acc: a, target: int(y)}, nil
		}
		return transition{acc: a, target: p}, nil

	case instructions.JPN:
		if a != 0 {
			return transition{acc: a, target: int(y)}, nil
		}
		return transition{acc: a, target: p}, nil

	case instructions.SAV:
		if err := mc.mem.Write(y, a); err != nil {
			return transition{}, err
		}
		return transition{acc: a, target: p}, nil

	case instructions.LOD:
		v, err := mc.mem.Read(y)
		if err != nil {
			return transition{}, err
		}
		return transition{acc: v, target: p}, nil

	case instructions.HLT:
		return transition{acc: a, halt: true}, nil

	case instructions.ADR:
		mc.Addressing.Toggle()
		return transition{acc: a, target: p}, nil
	}

	return transition{}, curated.Errorf(UnknownOpcode, int(op))
}
