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

// Package fetch models instruction fetch through a single line cache. The
// cache holds at most one instruction, tagged with the address it was read
// from.
//
// Every call to Fetch() incurs the fetch latency. If the cache line is tagged
// with the requested address the cached instruction is returned. Otherwise the
// miss penalty is incurred as well and the instruction is read from the
// program into the cache line.
//
// Prefetch() loads the instruction following the given address into the cache
// line, replacing whatever was there. When the program runs sequentially this
// means the next call to Fetch() is a hit. After a taken jump the next Fetch()
// misses.
//
// Latency is imposed by a clocks.Clock. Prefetching never changes which
// instruction Fetch() returns, only how long it takes to return it.
package fetch
