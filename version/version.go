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

// Package version reports the version and the vcs revision of the program. The
// version number is set at link time with:
//
//	go build -ldflags "-X github.com/accsim/accsim/version.number=v0.1.0"
//
// The revision is taken from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Accsim"

// set by the linker. empty if the program has been built without the ldflags
var number string

var (
	// "unreleased" if there is vcs information but no version number. "local"
	// if there is neither. the latter can happen with "go run ."
	version string

	// the vcs revision. suffixed with "+dirty" if the source has been modified
	// but not committed
	revision string

	// the version of the Go toolchain used to build the program
	goVersion string
)

// Version returns the version string, the revision string and whether this is
// a numbered release version.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line summary of the version information.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s) %s", ApplicationName, v, r, goVersion)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		goVersion = info.GoVersion
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = fmt.Sprintf("%s+dirty", vcsRevision)
	default:
		revision = vcsRevision
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
