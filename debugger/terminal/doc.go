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

// Package terminal defines the operations required for interaction with the
// stepper in the debugger package.
//
// Interaction happens through the Terminal interface. There are two reference
// implementations of this interface: the PlainTerminal and the ColorTerminal,
// found respectively in the plainterm and colorterm sub-packages. The
// PlainTerminal reads whole lines and is suitable for scripted input. The
// ColorTerminal puts the terminal into cbreak mode so that single key presses
// can be read.
package terminal
