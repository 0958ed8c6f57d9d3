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

package cpu

import (
	"github.com/accsim/accsim/hardware/cpu/instructions"
	"github.com/accsim/accsim/hardware/memory/cpubus"
)

// Addressing resolves operands according to the current addressing mode. The
// mode applies to every instruction that uses its operand, including the
// target of a jump and the address of SAV and LOD.
type Addressing struct {
	mem  cpubus.Memory
	mode instructions.AddressingMode
}

// NewAddressing is the preferred method of initialisation for the Addressing
// type. The initial mode is Direct.
func NewAddressing(mem cpubus.Memory) *Addressing {
	return &Addressing{
		mem:  mem,
		mode: instructions.Direct,
	}
}

// Mode returns the current addressing mode.
func (am *Addressing) Mode() instructions.AddressingMode {
	return am.mode
}

// Indirect returns true if the current mode is Indirect.
func (am *Addressing) Indirect() bool {
	return am.mode == instructions.Indirect
}

// Toggle switches between Direct and Indirect addressing.
func (am *Addressing) Toggle() {
	if am.mode == instructions.Direct {
		am.mode = instructions.Indirect
	} else {
		am.mode = instructions.Direct
	}
}

// Reset returns the addressing mode to Direct.
func (am *Addressing) Reset() {
	am.mode = instructions.Direct
}

// Resolve returns the operand unchanged in Direct mode. In Indirect mode the
// operand is an address and the value at that address is returned.
func (am *Addressing) Resolve(operand int64) (int64, error) {
	if am.mode == instructions.Direct {
		return operand, nil
	}
	return am.mem.Read(operand)
}
