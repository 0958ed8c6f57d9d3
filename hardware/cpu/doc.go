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

// Package cpu emulates a simple accumulator processor. The processor has a
// single working register (the accumulator), a program counter and an
// addressing mode flag. It executes one of 22 instructions, each made of an
// opcode and a single integer operand.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. This is the data memory used
// by the SAV and LOD instructions and by indirect addressing.
//
// The CPU does not fetch instructions. The caller fetches the instruction at
// the current program counter and passes it to ExecuteInstruction():
//
//	mc := cpu.NewCPU(mem)
//
//	for !mc.PC.Halted() {
//		ins := program[mc.PC.Address()]
//		if err := mc.ExecuteInstruction(ins); err != nil {
//			return err
//		}
//	}
//
// In the full emulation the fetching is done by the fetch package, which
// models the latency of an instruction cache. See the hardware package.
//
// Every instruction ends by loading the program counter with the address
// chosen by the instruction plus one. For most instructions the chosen
// address is the address of the instruction itself. For a taken jump it is
// the jump target, which means that a JMP to address k continues execution
// at k+1. This is the defined behaviour of the processor and programs are
// written with it in mind.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package.
package cpu
