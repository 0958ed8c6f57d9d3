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

// Package diagram writes the state of a hardware.Processor as a graphviz dot
// graph. The graph is produced by "github.com/bradleyjkemp/memviz" and shows
// the structure of the state snapshot, including the memory contents and the
// fetch statistics.
//
// The output can be rendered with the dot command:
//
//	dot -Tpng state.dot > state.png
package diagram
