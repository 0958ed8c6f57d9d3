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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/accsim/accsim/hardware"
	"github.com/accsim/accsim/hardware/cpu/instructions"
	"github.com/accsim/accsim/performance"
	"github.com/accsim/accsim/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu, TRACE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)
	test.ExpectEquality(t, p.String(), "CPU,TRACE")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	hdr := filepath.Join(t.TempDir(), "test")

	var called bool
	err := performance.RunProfiler(performance.ProfileMem, hdr, func() error {
		called = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, called)

	_, err = os.Stat(hdr + "_mem.profile")
	test.ExpectSuccess(t, err)

	// errors from the run function are returned unchanged
	sentinal := errors.New("test")
	err = performance.RunProfiler(performance.ProfileNone, hdr, func() error {
		return sentinal
	})
	test.ExpectEquality(t, err, sentinal)
}

func TestCheck(t *testing.T) {
	prc, err := hardware.NewProcessor(nil, []instructions.Instruction{
		{OpCode: instructions.MOV, Operand: 5},
		{OpCode: instructions.ADD, Operand: 3},
		{OpCode: instructions.HLT},
	})
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	m, err := performance.Check(w, performance.ProfileNone, prc, 50*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, m.Instructions > 0)
	test.ExpectSuccess(t, m.Runs > 1)
	test.ExpectEquality(t, m.Duration, 50*time.Millisecond)
	test.ExpectEquality(t, w.String(), m.String()+"\n")

	_, err = performance.Check(nil, performance.ProfileNone, prc, 0)
	test.ExpectFailure(t, err)
}
