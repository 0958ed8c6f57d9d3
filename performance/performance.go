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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/accsim/accsim/debugger/govern"
	"github.com/accsim/accsim/hardware"
	"github.com/accsim/accsim/hardware/clocks"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// only check for the end of the measurement period every brake instructions.
// checking the timer channel is relatively expensive
const brake = 1000

// Measurement is the result of a call to Check().
type Measurement struct {
	Instructions int
	Runs         int
	Duration     time.Duration
}

// PerSecond returns the number of instructions executed per second.
func (m Measurement) PerSecond() float64 {
	if m.Duration <= 0 {
		return 0
	}
	return float64(m.Instructions) / m.Duration.Seconds()
}

func (m Measurement) String() string {
	return fmt.Sprintf("%.2f instructions per second (%d instructions in %.2f seconds, %d runs)",
		m.PerSecond(), m.Instructions, m.Duration.Seconds(), m.Runs)
}

// Check the performance of the processor. The processor is run for the
// specified duration, being reset every time the program halts. Fetch latency
// is counted but not imposed.
//
// A cpu profile, memory profile or trace (or a combination of those) is
// created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, prc *hardware.Processor, duration time.Duration) (Measurement, error) {
	if duration <= 0 {
		return Measurement{}, fmt.Errorf("performance: duration must be positive (%v)", duration)
	}

	prc.SetClock(&clocks.Tally{})
	prc.Reset()

	m := Measurement{
		Duration: duration,
		Runs:     1,
	}

	runner := func() error {
		timer := time.NewTimer(duration)
		defer timer.Stop()

		performanceBrake := 0

		return prc.Run(func() (govern.State, error) {
			if prc.Halted() {
				prc.Reset()
				m.Runs++
			}

			m.Instructions++

			performanceBrake++
			if performanceBrake >= brake {
				performanceBrake = 0
				select {
				case <-timer.C:
					return govern.Ending, timedOut
				default:
				}
			}

			return govern.Running, nil
		})
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return Measurement{}, fmt.Errorf("performance: %w", err)
	}

	if output != nil {
		fmt.Fprintln(output, m)
	}

	return m, nil
}
