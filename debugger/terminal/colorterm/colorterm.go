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

// Package colorterm implements the Terminal interface for the stepper. It puts
// the terminal into cbreak mode so that single key presses can be read and
// prints output in color using ANSI escape sequences.
package colorterm

import (
	"io"
	"os"
	"strings"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/debugger/terminal"
	"github.com/accsim/accsim/debugger/terminal/colorterm/easyterm"
)

// ANSI control sequences
const (
	penNormal   = "\033[0m"
	penRed      = "\033[31;1m"
	penYellow   = "\033[33m"
	penDimWhite = "\033[2m"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	ct.CBreakMode()
	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.TermPrint(penNormal)
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	var pen string

	switch style {
	case terminal.StyleFeedback:
		pen = penYellow
	case terminal.StyleHelp:
		pen = penDimWhite
	case terminal.StyleError:
		pen = penRed
		s = "* " + s
	}

	s = strings.TrimRight(s, "\n")
	if pen != "" {
		ct.TermPrint("%s%s%s\n", pen, s, penNormal)
	} else {
		ct.TermPrint("%s\n", s)
	}
}

// TermReadKey implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadKey() (byte, error) {
	b, err := ct.ReadByte()
	if err != nil {
		if err == io.EOF {
			return 0, curated.Errorf(terminal.UserAbort)
		}
		return 0, err
	}

	switch b {
	case easyterm.KeyInterrupt:
		return 0, curated.Errorf(terminal.UserInterrupt)
	case easyterm.KeyEndOfTransmit, easyterm.KeySuspend:
		return 0, curated.Errorf(terminal.UserAbort)
	case easyterm.KeyCarriageReturn:
		return easyterm.KeyLineFeed, nil
	}

	return b, nil
}
