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

package registers

import "fmt"

// ProgramCounter holds the address of the next instruction to fetch, or is
// in the halted state.
type ProgramCounter struct {
	address int
	halted  bool
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(address int) ProgramCounter {
	return ProgramCounter{address: address}
}

// Label returns an identifying string for the program counter.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	if pc.halted {
		return "halted"
	}
	return fmt.Sprintf("%d", pc.address)
}

// Address returns the current address. The value is meaningless if the
// program counter is halted.
func (pc ProgramCounter) Address() int {
	return pc.address
}

// Halted returns true if the program counter has been halted.
func (pc ProgramCounter) Halted() bool {
	return pc.halted
}

// Load a new address into the program counter. Clears the halted state.
func (pc *ProgramCounter) Load(address int) {
	pc.address = address
	pc.halted = false
}

// Halt puts the program counter into the halted state. The address is not
// changed.
func (pc *ProgramCounter) Halt() {
	pc.halted = true
}
