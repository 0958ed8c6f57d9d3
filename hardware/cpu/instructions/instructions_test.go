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

package instructions_test

import (
	"testing"

	"github.com/accsim/accsim/hardware/cpu/instructions"
	"github.com/accsim/accsim/test"
)

func TestDefinitionsTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), instructions.NumOpCodes)
	test.ExpectEquality(t, len(defs), 22)

	// table must be indexed by opcode
	for i, defn := range defs {
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectInequality(t, defn.Mnemonic, "")
	}
}

func TestOpCodeValues(t *testing.T) {
	// values are fixed by the program file format
	test.ExpectEquality(t, int(instructions.NOP), 0)
	test.ExpectEquality(t, int(instructions.BWN), 14)
	test.ExpectEquality(t, int(instructions.JMP), 15)
	test.ExpectEquality(t, int(instructions.HLT), 20)
	test.ExpectEquality(t, int(instructions.ADR), 21)
}

func TestLookup(t *testing.T) {
	defn, ok := instructions.Lookup(instructions.SAV)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, defn.Mnemonic, "SAV")
	test.ExpectEquality(t, defn.Effect, instructions.Memory)
	test.ExpectSuccess(t, defn.UsesOperand)

	_, ok = instructions.Lookup(instructions.OpCode(22))
	test.ExpectFailure(t, ok)
	_, ok = instructions.Lookup(instructions.OpCode(-1))
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, instructions.OpCode(99).String(), "??? (99)")
}

func TestLookupMnemonic(t *testing.T) {
	defn, ok := instructions.LookupMnemonic(" jpz ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, defn.OpCode, instructions.JPZ)
	test.ExpectSuccess(t, defn.IsBranch())

	_, ok = instructions.LookupMnemonic("FOO")
	test.ExpectFailure(t, ok)
}

func TestOperandUsage(t *testing.T) {
	for _, op := range []instructions.OpCode{instructions.NOP, instructions.NOT, instructions.BWN, instructions.HLT, instructions.ADR} {
		defn, _ := instructions.Lookup(op)
		test.ExpectFailure(t, defn.UsesOperand, op)
	}
}

func TestInstructionString(t *testing.T) {
	ins := instructions.Instruction{OpCode: instructions.MOV, Operand: -5}
	test.ExpectEquality(t, ins.String(), "MOV -5")
}
