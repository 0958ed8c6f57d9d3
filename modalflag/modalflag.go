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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// Continue with command line processing. If sub-modes were added since the
	// last call to NewMode() then the Mode() function should be checked.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// An error has occurred and is returned as the second return value.
	ParseError
)

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print help messages
	Output io.Writer

	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function and the index
	// of the first argument for the current mode
	args    []string
	argsIdx int

	// sub-modes for the next call to Parse(). the first entry is the default
	subModes []string

	// all modes found by Parse() since the call to NewArgs()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// NewArgs with a string of arguments (from the command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (md *Modes) NewMode() {
	md.subModes = nil
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns a string of all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// AdditionalHelp is displayed after the flags and sub-modes in the help
// message for the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes to list of sub-modes for next parse. The first sub-mode in the
// list is the default sub-mode.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Parse the arguments for the current mode.
//
// Help messages are handled automatically by the function. A return value of
// ParseHelp should be treated similarly to an error but without the need to
// display anything further to the user.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.help()
			return ParseHelp, nil
		}

		// flags not recognised at this level are assumed to be for the
		// default sub-mode, if there is one. the arguments are left for the
		// next call to Parse()
		if len(md.subModes) > 0 {
			md.path = append(md.path, md.subModes[0])
			return ParseContinue, nil
		}

		return ParseError, err
	}

	// flags have been consumed. skip over them so that the next mode starts
	// after them
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// help message for the current mode
func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	s := strings.Builder{}

	if md.Path() == "" {
		s.WriteString("Usage:\n")
	} else {
		s.WriteString(fmt.Sprintf("Usage for %s mode:\n", md.Path()))
	}

	var n int
	md.flags.VisitAll(func(f *flag.Flag) {
		n++
		name, usage := flag.UnquoteUsage(f)
		if name != "" {
			s.WriteString(fmt.Sprintf("  -%s %s\n", f.Name, name))
		} else {
			s.WriteString(fmt.Sprintf("  -%s\n", f.Name))
		}
		s.WriteString(fmt.Sprintf("    \t%s", usage))
		if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
			s.WriteString(fmt.Sprintf(" (default %s)", f.DefValue))
		}
		s.WriteString("\n")
	})

	if len(md.subModes) > 0 {
		if n > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("  available sub-modes: %s\n", strings.Join(md.subModes, ", ")))
		s.WriteString(fmt.Sprintf("    default: %s\n", md.subModes[0]))
		n++
	}

	if n == 0 {
		s.Reset()
		s.WriteString("No help available")
		if md.Path() != "" {
			s.WriteString(fmt.Sprintf(" for %s mode", md.Path()))
		}
		s.WriteString("\n")
	}

	if md.additionalHelp != "" {
		s.WriteString(fmt.Sprintf("\n%s\n", md.additionalHelp))
	}

	io.WriteString(md.Output, s.String())
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags or a
// listed sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument that isn't a flag or listed sub-mode.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for each flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
