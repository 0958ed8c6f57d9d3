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

// Package hardware is the base package for the accumulator processor. The
// Processor type collects the memory, the CPU and the fetch unit.
//
// A Processor is created with a program and the hardware preferences:
//
//	prc, err := hardware.NewProcessor(prefs, program)
//
// The Step() function executes a single instruction cycle. A cycle fetches
// the instruction at the program counter, performs the optional prefetch and
// then executes the instruction. The Run() function executes cycles until the
// program halts or until the continue check says otherwise.
//
// The architectural result of a program (the accumulator and memory) is the
// same whether prefetching is enabled or not. Only the latency differs.
package hardware
