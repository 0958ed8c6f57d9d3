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

package diagram_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/accsim/accsim/diagram"
	"github.com/accsim/accsim/hardware"
	"github.com/accsim/accsim/hardware/clocks"
	"github.com/accsim/accsim/hardware/cpu/instructions"
	"github.com/accsim/accsim/test"
)

func state(t *testing.T) hardware.State {
	t.Helper()

	prc, err := hardware.NewProcessor(nil, []instructions.Instruction{
		{OpCode: instructions.MOV, Operand: 42},
		{OpCode: instructions.SAV, Operand: 3},
		{OpCode: instructions.HLT},
	})
	test.DemandSuccess(t, err)
	prc.SetClock(&clocks.Tally{})
	test.DemandSuccess(t, prc.Run(nil))

	return prc.State()
}

func TestWrite(t *testing.T) {
	w := &test.Writer{}
	diagram.Write(w, state(t))

	s := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "digraph"))
	test.ExpectSuccess(t, strings.Contains(s, "Accumulator"))
}

func TestWriteFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "state.dot")
	test.DemandSuccess(t, diagram.WriteFile(fn, state(t)))

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), "digraph"))

	// directory does not exist
	err = diagram.WriteFile(filepath.Join(t.TempDir(), "missing", "state.dot"), state(t))
	test.ExpectFailure(t, err)
}
