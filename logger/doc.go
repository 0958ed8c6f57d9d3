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

// Package logger is the central log repository. Entries have a tag and a
// detail string. Tags are usually the name of the package or sub-system making
// the entry:
//
//	logger.Logf(logger.Allow, "fetch", "cache miss at %d", pc)
//
// Consecutive identical entries are collapsed into one entry with a repeat
// count. The central logger holds a fixed number of entries and the oldest
// entries are discarded as new ones arrive.
//
// The Permission interface allows a caller to gate logging. Use logger.Allow
// when logging should always happen.
package logger
