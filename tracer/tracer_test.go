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

package tracer_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accsim/accsim/hardware"
	"github.com/accsim/accsim/hardware/clocks"
	"github.com/accsim/accsim/hardware/cpu/instructions"
	"github.com/accsim/accsim/hardware/preferences"
	"github.com/accsim/accsim/tracer"
)

func TestTrace(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	p := preferences.NewDefaults()
	require.NoError(p.Prefetch.Set(true))

	prc, err := hardware.NewProcessor(p, []instructions.Instruction{
		{OpCode: instructions.ADR},
		{OpCode: instructions.MOV, Operand: 0},
		{OpCode: instructions.HLT},
	})
	require.NoError(err)
	prc.SetClock(&clocks.Tally{})

	tr := tracer.NewTracer(log)
	prc.AttachTracer(tr)
	require.NoError(prc.Run(nil))

	assert.Equal(3, tr.Count())

	// three steps and the halt
	entries := hook.AllEntries()
	require.Len(entries, 4)

	first := entries[0]
	assert.Equal(logrus.DebugLevel, first.Level)
	assert.Equal("step", first.Message)
	assert.Equal(0, first.Data["pc"])
	assert.Equal("ADR", first.Data["opcode"])
	assert.Equal(false, first.Data["hit"])
	assert.Equal(true, first.Data["prefetched"])
	assert.Equal(120*time.Millisecond, first.Data["latency"])
	assert.NotContains(first.Data, "resolved")

	second := entries[1]
	assert.Equal("MOV", second.Data["opcode"])
	assert.Equal("Indirect", second.Data["mode"])
	assert.Equal(true, second.Data["hit"])
	assert.Contains(second.Data, "resolved")
	assert.Equal(int64(0), second.Data["resolved"])

	last := hook.LastEntry()
	assert.Equal(logrus.InfoLevel, last.Level)
	assert.Equal("halted", last.Message)
	assert.Equal(3, last.Data["cycle"])
	assert.Equal(2, last.Data["pc"])
}

func TestLevel(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.InfoLevel)

	tr := tracer.NewTracer(log)
	prc, err := hardware.NewProcessor(nil, []instructions.Instruction{
		{OpCode: instructions.NOP},
		{OpCode: instructions.HLT},
	})
	require.NoError(t, err)
	prc.SetClock(&clocks.Tally{})
	prc.AttachTracer(tr)
	require.NoError(t, prc.Run(nil))

	// only the halt is logged at the Info level
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "halted", hook.LastEntry().Message)
}

func TestNewLogger(t *testing.T) {
	var b bytes.Buffer

	tr := tracer.NewTracer(tracer.NewLogger(&b))
	prc, err := hardware.NewProcessor(nil, []instructions.Instruction{
		{OpCode: instructions.MOV, Operand: 7},
		{OpCode: instructions.HLT},
	})
	require.NoError(t, err)
	prc.SetClock(&clocks.Tally{})
	prc.AttachTracer(tr)
	require.NoError(t, prc.Run(nil))

	assert.Contains(t, b.String(), "level=debug msg=step")
	assert.Contains(t, b.String(), "opcode=MOV")
	assert.Contains(t, b.String(), "acc=7")
	assert.Contains(t, b.String(), "level=info msg=halted")
}
