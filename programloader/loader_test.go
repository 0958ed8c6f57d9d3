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

package programloader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/hardware/cpu/instructions"
	"github.com/accsim/accsim/programloader"
	"github.com/accsim/accsim/test"
)

const countdown = `# count down from three
1 3
sub 1
JPN 0   # loop

Hlt
`

func TestParse(t *testing.T) {
	program, err := programloader.Parse(strings.NewReader(countdown))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(program), 4)

	test.ExpectEquality(t, program[0], instructions.Instruction{OpCode: instructions.MOV, Operand: 3})
	test.ExpectEquality(t, program[1], instructions.Instruction{OpCode: instructions.SUB, Operand: 1})
	test.ExpectEquality(t, program[2], instructions.Instruction{OpCode: instructions.JPN, Operand: 0})
	test.ExpectEquality(t, program[3], instructions.Instruction{OpCode: instructions.HLT, Operand: 0})
}

func TestParseNegativeOperand(t *testing.T) {
	program, err := programloader.Parse(strings.NewReader("1 -5\n2 -1"))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(program), 2)
	test.ExpectEquality(t, program[0].Operand, -5)
	test.ExpectEquality(t, program[1].Operand, -1)
}

func TestUnknownOpcodeValue(t *testing.T) {
	// the range of integer opcodes is not checked
	program, err := programloader.Parse(strings.NewReader("99 0"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, program[0].OpCode, instructions.OpCode(99))
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"MOV 1\nFOO 2",
		"MOV 1\nMOV x",
		"MOV 1\nMOV 1 2",
		"MOV 1\nMOV 1.5",
	} {
		_, err := programloader.Parse(strings.NewReader(src))
		test.ExpectSuccess(t, curated.Is(err, programloader.ParseError), src)
		test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "programloader: line 2: "), src)
	}
}

func TestEmpty(t *testing.T) {
	program, err := programloader.Parse(strings.NewReader("# nothing here\n\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(program), 0)
}

func TestLoader(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "countdown.acc")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(countdown), 0o600))

	ld := programloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "countdown")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Program), 4)
	test.ExpectEquality(t, len(ld.Hash), 40)

	// the hash is checked on subsequent loads
	hash := ld.Hash
	ld = programloader.NewLoader(fn)
	ld.Hash = hash
	test.ExpectSuccess(t, ld.Load())

	ld = programloader.NewLoader(fn)
	ld.Hash = "0000"
	test.ExpectSuccess(t, curated.Is(ld.Load(), programloader.HashMismatch))

	ld = programloader.NewLoader(filepath.Join(t.TempDir(), "missing.acc"))
	test.ExpectSuccess(t, curated.Is(ld.Load(), programloader.LoadError))
}
