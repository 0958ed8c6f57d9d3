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

// AddressingMode describes how an operand is interpreted.
type AddressingMode int

const (
	// the operand is the value (or the destination address)
	Direct AddressingMode = iota

	// the operand is the address of a memory cell containing the value (or
	// the destination address)
	Indirect
)

func (m AddressingMode) String() string {
	switch m {
	case Direct:
		return "Direct"
	case Indirect:
		return "Indirect"
	}
	return "unknown addressing mode"
}
