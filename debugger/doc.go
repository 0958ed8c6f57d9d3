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

// Package debugger implements the interactive stepper for the accumulator
// processor. The user steps through the program one instruction at a time,
// with single key presses if the terminal allows it, and can inspect the
// memory and the cache between steps.
//
// Keys are listed by the help key (h). The stepper ends when the quit key (q)
// is pressed or when the input ends. Execution errors are fatal and end the
// stepper with an error.
package debugger
