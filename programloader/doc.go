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

// Package programloader reads programs for the accumulator processor. A
// program is plain text with one instruction per line:
//
//	# count down from three
//	MOV 3
//	SUB 1
//	JPN 0
//	HLT 0
//
// The opcode is either the integer value of the opcode or its mnemonic. The
// mnemonic is not case sensitive. The operand is an integer and can be omitted,
// in which case it is zero. Blank lines and everything after a # character are
// ignored. Instruction addresses are assigned in the order the instructions
// appear in the file, starting at zero.
//
// The value of an integer opcode is not checked. Executing an instruction with
// an unknown opcode is an error reported by the CPU.
package programloader
