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

// Category is used to broadly classify an instruction by its effect.
type Category int

// List of valid Category values.
const (
	// instructions that do not change the accumulator or the flow of the
	// program (excepting HLT, which stops the program)
	Control Category = iota

	Arithmetic
	Logic
	Bitwise

	// instructions that can change the program counter to something other
	// than the next instruction
	Flow

	// instructions that access data memory
	Memory
)

func (e Category) String() string {
	switch e {
	case Control:
		return "Control"
	case Arithmetic:
		return "Arithmetic"
	case Logic:
		return "Logic"
	case Bitwise:
		return "Bitwise"
	case Flow:
		return "Flow"
	case Memory:
		return "Memory"
	}
	return "unknown category"
}
