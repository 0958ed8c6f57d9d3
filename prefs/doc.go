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

// Package prefs facilitates the storage of preferential values in the
// emulation. Preference values are typed (Bool, Int, Duration and String) and
// can have hook functions that are called either side of a new value being
// stored. A pre-hook can reject a value by returning an error.
//
// Values are associated with a Disk instance by a key:
//
//	dsk, _ := prefs.NewDisk(pth)
//
//	var size prefs.Int
//	dsk.Add("hardware.memory.size", &size)
//
//	dsk.Load()
//
// The preferences file is plain text, one key/value pair per line separated
// by " :: ". The first line is always WarningBoilerPlate.
//
// Values can also be given on the command line with PushCommandLineStack().
// Command line values are applied by Load() and take precedence over the
// values in the file. They are not written back to disk unless Save() is
// called explicitly.
package prefs
