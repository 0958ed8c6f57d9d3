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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal).
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	mu sync.Mutex
}

// Initialise the fields in the EasyTerm struct. The terminal is not changed
// until one of the mode functions is called.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	// cbreak and raw modes are derived from the canonical attributes
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	// interrupt and suspend keys are delivered as input in cbreak mode
	et.cbreakAttr.Lflag &^= unix.ISIG

	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	return et.UpdateGeometry()
}

// CleanUp returns the terminal to canonical mode.
func (et *EasyTerm) CleanUp() {
	et.CanonicalMode()
}

// TermPrint writes the formatted string to the output file.
func (et *EasyTerm) TermPrint(s string, a ...interface{}) {
	et.mu.Lock()
	defer et.mu.Unlock()
	fmt.Fprintf(et.output, s, a...)
	_ = et.output.Sync()
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	et.mu.Lock()
	defer et.mu.Unlock()

	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		// output is not a terminal. geometry is unknown
		et.Geometry = TermGeometry{}
		return nil
	}

	et.Geometry = TermGeometry{
		Rows: ws.Row,
		Cols: ws.Col,
	}

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (et *EasyTerm) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCIFLUSH, &et.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}

// ReadByte reads a single byte from the input file. In cbreak mode this is a
// single key press.
func (et *EasyTerm) ReadByte() (byte, error) {
	b := make([]byte, 1)
	if _, err := et.input.Read(b); err != nil {
		return 0, err
	}
	return b[0], nil
}
