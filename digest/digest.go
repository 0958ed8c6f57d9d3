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

// Package digest contains implementations of the hardware.Tracer interface and
// helper functions such that a cryptographic hash is produced. The hash can be
// used to compare the results of subsequent executions. If a new hash differs
// from a previously recorded value then something has changed.
//
// The Execution type chains a hash over every executed instruction. Only the
// architectural effect of an instruction is included in the hash, so a program
// produces the same hash whether prefetching is enabled or not.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
