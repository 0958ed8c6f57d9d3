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

// Package clocks defines the latencies of the fetch unit and the means by
// which those latencies are imposed.
//
// A Clock is asked to Wait() for every latency the fetch unit incurs. The Real
// clock blocks for the duration. The Tally clock only adds the duration to a
// running total, which is useful for tests and for comparing runs without
// waiting for them.
package clocks
