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

package terminal

// Sentinal errors. Returned by TermReadKey() if caught whilst waiting for
// input.
const (
	UserInterrupt = "terminal: user interrupt"
	UserAbort     = "terminal: user abort"
)

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit. The most likely treatment is to print different
// styles in different colours.
type Style int

// List of terminal styles.
const (
	// the state of the processor after a step
	StyleNormal Style = iota

	// information about the stepper itself
	StyleFeedback

	// help text
	StyleHelp

	// errors are always printed
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermReadKey returns a single key press. An implementation that cannot
	// read single keys will return the first key of a line of input.
	TermReadKey() (byte, error)

	// IsInteractive() should return true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string)
}

// Terminal defines the operations required by the stepper's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. Not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()
}
