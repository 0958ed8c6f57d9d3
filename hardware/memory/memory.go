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

package memory

import (
	"fmt"
	"strings"

	"github.com/accsim/accsim/curated"
)

// AccessError is returned when an address is outside of the memory range.
const AccessError = "memory: address %d outside of memory (size %d)"

// SizeError is returned by NewMemory() if the requested size is not positive.
const SizeError = "memory: invalid memory size (%d)"

// Memory is the data memory of the processor. It is a fixed number of integer
// cells, all of which are zero at creation.
//
// Memory implements the cpubus.Memory interface.
type Memory struct {
	data []int64
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Every instance has its own buffer.
func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		return nil, curated.Errorf(SizeError, size)
	}
	return &Memory{
		data: make([]int64, size),
	}, nil
}

// Size returns the number of cells in memory.
func (mem *Memory) Size() int {
	return len(mem.data)
}

func (mem *Memory) inRange(address int64) bool {
	return address >= 0 && address < int64(len(mem.data))
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address int64) (int64, error) {
	if !mem.inRange(address) {
		return 0, curated.Errorf(AccessError, address, len(mem.data))
	}
	return mem.data[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address int64, value int64) error {
	if !mem.inRange(address) {
		return curated.Errorf(AccessError, address, len(mem.data))
	}
	mem.data[address] = value
	return nil
}

// Reset sets every cell to zero.
func (mem *Memory) Reset() {
	clear(mem.data)
}

// Snapshot returns a copy of the memory contents.
func (mem *Memory) Snapshot() []int64 {
	c := make([]int64, len(mem.data))
	copy(c, mem.data)
	return c
}

// String returns the memory contents as rows of ten cells, each row prefixed
// with the address of the first cell.
func (mem *Memory) String() string {
	s := strings.Builder{}
	for i, d := range mem.data {
		if i%10 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04d ", i))
		}
		s.WriteString(fmt.Sprintf(" %d", d))
	}
	return s.String()
}
