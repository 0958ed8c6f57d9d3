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

// Package plainterm implements the Terminal interface for the stepper. It's as
// simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/debugger/terminal"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. Input is read one
// line at a time.
type PlainTerminal struct {
	input       *bufio.Reader
	output      io.Writer
	interactive bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type. Nil arguments mean that os.Stdin and os.Stdout are used.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}

	pt := &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}

	if f, ok := input.(*os.File); ok {
		pt.interactive = term.IsTerminal(int(f.Fd()))
	}

	return pt
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// IsInteractive implements the terminal.Input interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.interactive
}

// TermPrintLine implements the terminal.Output interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}
	fmt.Fprintln(pt.output, s)
}

// TermReadKey implements the terminal.Input interface. The first character of
// the line is returned. An empty line is returned as a newline character.
func (pt *PlainTerminal) TermReadKey() (byte, error) {
	s, err := pt.input.ReadString('\n')
	if err != nil && (err != io.EOF || len(s) == 0) {
		if err == io.EOF {
			return 0, curated.Errorf(terminal.UserAbort)
		}
		return 0, err
	}

	for _, c := range []byte(s) {
		if c != ' ' && c != '\t' {
			if c == '\r' {
				return '\n', nil
			}
			return c, nil
		}
	}

	// a line containing only whitespace and no newline is the end of input
	return '\n', nil
}
