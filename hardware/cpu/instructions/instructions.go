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

package instructions

import (
	"fmt"
	"strings"
)

// OpCode selects the behaviour of an instruction.
type OpCode int

// List of valid OpCode values. The numeric value of each opcode is the value
// used in program files.
const (
	NOP OpCode = iota
	MOV
	ADD
	SUB
	MUL
	DIV
	AND
	OR
	NOT
	BWA // bitwise and
	BWO // bitwise or
	BWX // bitwise xor
	BWL // shift left
	BWR // shift right
	BWN // bitwise not
	JMP
	JPZ // jump if zero
	JPN // jump if not zero
	SAV
	LOD
	HLT
	ADR // toggle addressing mode

	// NumOpCodes is the number of defined opcodes
	NumOpCodes int = iota
)

func (op OpCode) String() string {
	if defn, ok := Lookup(op); ok {
		return defn.Mnemonic
	}
	return fmt.Sprintf("??? (%d)", int(op))
}

// Instruction is a single entry in a program. Instructions are never changed
// once the program has been loaded.
type Instruction struct {
	OpCode  OpCode
	Operand int64
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%s %d", ins.OpCode, ins.Operand)
}

// Definition defines the static information about an opcode.
type Definition struct {
	OpCode   OpCode
	Mnemonic string
	Effect   Category

	// whether the instruction uses its operand. instructions that don't use
	// the operand never resolve it, even when indirect addressing is active
	UsesOperand bool
}

func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02d %s [effect=%s operand=%t]", int(defn.OpCode), defn.Mnemonic, defn.Effect, defn.UsesOperand)
}

// IsBranch returns true if the instruction is a conditional jump.
func (defn Definition) IsBranch() bool {
	return defn.OpCode == JPZ || defn.OpCode == JPN
}

// the definitions table is indexed by opcode
var definitions = [...]Definition{
	{OpCode: NOP, Mnemonic: "NOP", Effect: Control},
	{OpCode: MOV, Mnemonic: "MOV", Effect: Arithmetic, UsesOperand: true},
	{OpCode: ADD, Mnemonic: "ADD", Effect: Arithmetic, UsesOperand: true},
	{OpCode: SUB, Mnemonic: "SUB", Effect: Arithmetic, UsesOperand: true},
	{OpCode: MUL, Mnemonic: "MUL", Effect: Arithmetic, UsesOperand: true},
	{OpCode: DIV, Mnemonic: "DIV", Effect: Arithmetic, UsesOperand: true},
	{OpCode: AND, Mnemonic: "AND", Effect: Logic, UsesOperand: true},
	{OpCode: OR, Mnemonic: "OR", Effect: Logic, UsesOperand: true},
	{OpCode: NOT, Mnemonic: "NOT", Effect: Logic},
	{OpCode: BWA, Mnemonic: "BWA", Effect: Bitwise, UsesOperand: true},
	{OpCode: BWO, Mnemonic: "BWO", Effect: Bitwise, UsesOperand: true},
	{OpCode: BWX, Mnemonic: "BWX", Effect: Bitwise, UsesOperand: true},
	{OpCode: BWL, Mnemonic: "BWL", Effect: Bitwise, UsesOperand: true},
	{OpCode: BWR, Mnemonic: "BWR", Effect: Bitwise, UsesOperand: true},
	{OpCode: BWN, Mnemonic: "BWN", Effect: Bitwise},
	{OpCode: JMP, Mnemonic: "JMP", Effect: Flow, UsesOperand: true},
	{OpCode: JPZ, Mnemonic: "JPZ", Effect: Flow, UsesOperand: true},
	{OpCode: JPN, Mnemonic: "JPN", Effect: Flow, UsesOperand: true},
	{OpCode: SAV, Mnemonic: "SAV", Effect: Memory, UsesOperand: true},
	{OpCode: LOD, Mnemonic: "LOD", Effect: Memory, UsesOperand: true},
	{OpCode: HLT, Mnemonic: "HLT", Effect: Control},
	{OpCode: ADR, Mnemonic: "ADR", Effect: Control},
}

// Lookup returns the definition for the opcode. The second return value is
// false if the opcode is not defined.
func Lookup(op OpCode) (Definition, bool) {
	if op < 0 || int(op) >= len(definitions) {
		return Definition{}, false
	}
	return definitions[op], true
}

// LookupMnemonic returns the definition for the mnemonic. The comparison is
// not case sensitive.
func LookupMnemonic(mnemonic string) (Definition, bool) {
	mnemonic = strings.ToUpper(strings.TrimSpace(mnemonic))
	for _, defn := range definitions {
		if defn.Mnemonic == mnemonic {
			return defn, true
		}
	}
	return Definition{}, false
}

// GetDefinitions returns a copy of every definition, indexed by opcode.
func GetDefinitions() []Definition {
	d := make([]Definition, len(definitions))
	copy(d, definitions[:])
	return d
}
