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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of defining flags globally, flags are added to
// an instance of the Modes type. Parsing happens through the Parse() function
// of the same instance:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	limit := md.AddInt("limit", 0, "maximum number of instructions")
//	p, err := md.Parse()
//
// Modes are added with AddSubModes(). The first mode added is the default
// mode, selected when the first argument after the flags is not a listed
// mode. Mode comparison is not case sensitive:
//
//	md.AddSubModes("RUN", "STEP", "COMPARE", "VERSION")
//	p, err := md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		prefetch := md.AddBool("prefetch", false, "enable prefetch")
//		p, err = md.Parse()
//		...
//	}
//
// Each call to NewMode() starts a new set of flags and moves the argument
// list on past the mode that has been found. The Path() function returns all
// the modes found so far, separated by a slash.
//
// The -help flag is handled automatically. Parse() returns ParseHelp after
// printing the help message for the current mode to the Output writer.
package modalflag
