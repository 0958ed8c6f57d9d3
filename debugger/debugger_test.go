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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/debugger"
	"github.com/accsim/accsim/debugger/govern"
	"github.com/accsim/accsim/debugger/terminal/plainterm"
	"github.com/accsim/accsim/hardware"
	"github.com/accsim/accsim/hardware/clocks"
	"github.com/accsim/accsim/hardware/cpu"
	"github.com/accsim/accsim/hardware/cpu/instructions"
	"github.com/accsim/accsim/test"
)

var program = []instructions.Instruction{
	{OpCode: instructions.MOV, Operand: 5},
	{OpCode: instructions.ADD, Operand: 3},
	{OpCode: instructions.SAV, Operand: 0},
	{OpCode: instructions.HLT},
}

func newDebugger(t *testing.T, program []instructions.Instruction, input string) (*debugger.Debugger, *hardware.Processor, *test.Writer) {
	t.Helper()

	prc, err := hardware.NewProcessor(nil, program)
	test.DemandSuccess(t, err)
	prc.SetClock(&clocks.Tally{})

	w := &test.Writer{}
	dbg, err := debugger.NewDebugger(prc, plainterm.NewPlainTerminal(strings.NewReader(input), w))
	test.DemandSuccess(t, err)

	return dbg, prc, w
}

func TestStepping(t *testing.T) {
	dbg, prc, w := newDebugger(t, program, "\n \nl\nc\n")
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectEquality(t, dbg.State(), govern.Ending)

	test.ExpectEquality(t, prc.CPU.PC.Address(), 2)
	test.ExpectEquality(t, prc.CPU.Acc.Value(), 8)

	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "0000 MOV 5 acc=5 miss"))
	test.ExpectSuccess(t, strings.Contains(s, "0001 ADD 3 acc=8 miss"))
	test.ExpectSuccess(t, strings.Contains(s, "cache line: 1"))
	test.ExpectSuccess(t, strings.Contains(s, "fetches=2"))
}

func TestRun(t *testing.T) {
	dbg, prc, w := newDebugger(t, program, "r\nm\n\nq\n")
	test.ExpectSuccess(t, dbg.Start())

	test.ExpectSuccess(t, prc.Halted())
	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "final accumulator value: 8"))
	test.ExpectSuccess(t, strings.Contains(s, "0000  8 0 0"))
	test.ExpectSuccess(t, strings.Contains(s, "program has halted"))
}

func TestReset(t *testing.T) {
	dbg, prc, w := newDebugger(t, program, "r\nx\nl\n")
	test.ExpectSuccess(t, dbg.Start())

	test.ExpectEquality(t, prc.Halted(), false)
	test.ExpectEquality(t, prc.CPU.PC.Address(), 0)
	test.ExpectSuccess(t, strings.Contains(w.String(), "no instruction has been executed"))
}

func TestUnrecognisedKey(t *testing.T) {
	dbg, _, w := newDebugger(t, program, "z\n")
	test.ExpectSuccess(t, dbg.Start())
	test.ExpectSuccess(t, strings.Contains(w.String(), "unrecognised key ('z')"))
}

func TestExecutionError(t *testing.T) {
	dbg, _, w := newDebugger(t, []instructions.Instruction{
		{OpCode: instructions.DIV, Operand: 0},
		{OpCode: instructions.HLT},
	}, "\n\n")

	err := dbg.Start()
	test.ExpectSuccess(t, curated.Has(err, cpu.DivisionByZero))
	test.ExpectSuccess(t, strings.Contains(w.String(), "* hardware: pc 0 (DIV 0): cpu: division by zero"))
}

func TestNewDebugger(t *testing.T) {
	_, err := debugger.NewDebugger(nil, plainterm.NewPlainTerminal(strings.NewReader(""), &test.Writer{}))
	test.ExpectFailure(t, err)
}
