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

// Package memory implements the data memory of the processor. The memory is a
// fixed size array of integer cells. Addresses outside of the range
// [0, size) are an error on both read and write and a failed write does not
// change the memory.
//
// The CPU sees the memory through the cpubus.Memory interface.
//
// Note that program memory is not part of this package. Instructions are held
// by the fetch unit and are not addressable by the running program.
package memory
