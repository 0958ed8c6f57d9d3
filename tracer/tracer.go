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

package tracer

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/accsim/accsim/hardware/cpu/execution"
)

// Tracer implements the hardware.Tracer interface.
type Tracer struct {
	log logrus.FieldLogger

	// number of cycles traced
	count int
}

// NewTracer is the preferred method of initialisation for the Tracer type. A
// nil logger means the logrus standard logger is used.
func NewTracer(log logrus.FieldLogger) *Tracer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Tracer{
		log: log,
	}
}

// NewLogger returns a logrus logger suitable for the Tracer. Output is written
// as text to the writer at the Debug level.
func NewLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return log
}

// Count returns the number of cycles traced.
func (tr *Tracer) Count() int {
	return tr.count
}

// Trace implements the hardware.Tracer interface.
func (tr *Tracer) Trace(r execution.Result) {
	tr.count++

	fields := logrus.Fields{
		"cycle":      tr.count,
		"pc":         r.Address,
		"opcode":     r.Instruction.OpCode.String(),
		"operand":    r.Instruction.Operand,
		"acc":        r.Accumulator,
		"mode":       r.Mode.String(),
		"hit":        r.CacheHit,
		"prefetched": r.Prefetched,
		"latency":    r.Latency,
	}

	if r.Defn != nil && r.Defn.UsesOperand {
		fields["resolved"] = r.Resolved
	}

	tr.log.WithFields(fields).Debug("step")

	if r.Halted {
		tr.log.WithFields(logrus.Fields{
			"cycle": tr.count,
			"pc":    r.Address,
			"acc":   r.Accumulator,
		}).Info("halted")
	}
}
