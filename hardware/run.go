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

package hardware

import (
	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/debugger/govern"
)

// Run executes instruction cycles until the program halts. The continueCheck()
// function is called after every cycle and can pause or end the run early. A
// nil continueCheck() means the run only ends when the program halts.
//
// Run() returns immediately if the processor is already halted.
func (prc *Processor) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && !prc.CPU.PC.Halted() {
		switch state {
		case govern.Running, govern.Stepping:
			if _, err := prc.Step(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("hardware: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForInstructionCount executes no more than the specified number of
// instruction cycles. It returns the number of cycles executed. The run ends
// early if the program halts.
func (prc *Processor) RunForInstructionCount(count int) (int, error) {
	// the first cycle happens before the first continue check
	if count <= 0 {
		return 0, nil
	}

	var n int
	err := prc.Run(func() (govern.State, error) {
		n++
		if n >= count {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})

	return n, err
}
