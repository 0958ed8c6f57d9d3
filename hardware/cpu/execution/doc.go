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

// Package execution records the details of a single instruction cycle. The
// Result type is filled in partly by the CPU (the instruction, its definition,
// the resolved operand and the outcome) and partly by the processor's
// execution loop (cache hit and latency information).
//
// The IsValid() function checks the internal consistency of a Result. It is
// intended for use in tests.
package execution
