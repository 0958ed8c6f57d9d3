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

import (
	"fmt"
)

// Register is an integer register with a label. The value is 64 bits wide and
// arithmetic wraps silently.
type Register struct {
	label string
	value int64
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val int64, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%d", r.value)
}

// Label returns the register's label.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() int64 {
	return r.value
}

// IsZero returns true if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load a value into the register.
func (r *Register) Load(val int64) {
	r.value = val
}
