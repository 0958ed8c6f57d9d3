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

package debugger

import (
	"fmt"
	"strings"

	"github.com/accsim/accsim/curated"
	"github.com/accsim/accsim/debugger/govern"
	"github.com/accsim/accsim/debugger/terminal"
	"github.com/accsim/accsim/hardware"
)

// list of keys recognised by the stepper
const (
	keyStep      = ' '
	keyStepAlt   = '\n'
	keyRun       = 'r'
	keyLast      = 'l'
	keyMemory    = 'm'
	keyCache     = 'c'
	keyReset     = 'x'
	keyHelp      = 'h'
	keyHelpAlt   = '?'
	keyQuit      = 'q'
	keyQuitAlt   = 'Q'
	keyUndefined = 0
)

// help text in the order it is printed
var help = []struct {
	key  string
	help string
}{
	{"space/enter", "execute the next instruction"},
	{"r", "run until the program halts"},
	{"l", "print the result of the last instruction"},
	{"m", "print the contents of memory"},
	{"c", "print the cache line and fetch statistics"},
	{"x", "reset the processor"},
	{"h", "print this help"},
	{"q", "quit"},
}

// Debugger is the interactive stepper.
type Debugger struct {
	prc  *hardware.Processor
	term terminal.Terminal

	// only ever Paused, Stepping, Running or Ending once Start() has been
	// called
	state govern.State
}

// NewDebugger is the preferred method of initialisation for the Debugger type.
func NewDebugger(prc *hardware.Processor, term terminal.Terminal) (*Debugger, error) {
	if prc == nil {
		return nil, fmt.Errorf("debugger: no processor")
	}
	if term == nil {
		return nil, fmt.Errorf("debugger: no terminal")
	}

	return &Debugger{
		prc:   prc,
		term:  term,
		state: govern.Initialising,
	}, nil
}

// State returns the current state of the stepper.
func (dbg *Debugger) State() govern.State {
	return dbg.state
}

// Start the stepper. The function returns when the user quits, when input
// ends or when there is an execution error.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	dbg.state = govern.Paused
	dbg.printHelp()

	return dbg.inputLoop()
}

func (dbg *Debugger) prompt() string {
	if dbg.prc.Halted() {
		return fmt.Sprintf("[%s] halted >", dbg.prc)
	}
	return fmt.Sprintf("[%s] >", dbg.prc)
}

func (dbg *Debugger) inputLoop() error {
	for dbg.state != govern.Ending {
		if dbg.term.IsInteractive() {
			dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.prompt())
		}

		key, err := dbg.term.TermReadKey()
		if err != nil {
			if curated.Is(err, terminal.UserAbort) || curated.Is(err, terminal.UserInterrupt) {
				dbg.state = govern.Ending
				continue
			}
			return fmt.Errorf("debugger: %w", err)
		}

		if err := dbg.handleKey(key); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
			dbg.state = govern.Ending
			return err
		}
	}

	return nil
}

func (dbg *Debugger) handleKey(key byte) error {
	switch key {
	case keyStep, keyStepAlt:
		if dbg.prc.Halted() {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "program has halted")
			return nil
		}

		dbg.state = govern.Stepping
		r, err := dbg.prc.Step()
		dbg.state = govern.Paused
		if err != nil {
			return err
		}

		dbg.term.TermPrintLine(terminal.StyleNormal, r.String())
		if r.Halted {
			dbg.printFinal()
		}

	case keyRun:
		if dbg.prc.Halted() {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "program has halted")
			return nil
		}

		dbg.state = govern.Running
		err := dbg.prc.Run(func() (govern.State, error) {
			return dbg.state, nil
		})
		dbg.state = govern.Paused
		if err != nil {
			return err
		}

		dbg.printFinal()

	case keyLast:
		if !dbg.prc.CPU.LastResult.Final {
			dbg.term.TermPrintLine(terminal.StyleFeedback, "no instruction has been executed")
			return nil
		}
		dbg.term.TermPrintLine(terminal.StyleNormal, dbg.prc.CPU.LastResult.String())

	case keyMemory:
		dbg.term.TermPrintLine(terminal.StyleNormal, dbg.prc.Mem.String())

	case keyCache:
		s := dbg.prc.State()
		if s.CacheValid {
			dbg.term.TermPrintLine(terminal.StyleNormal, fmt.Sprintf("cache line: %d", s.CachedAddress))
		} else {
			dbg.term.TermPrintLine(terminal.StyleNormal, "cache line: empty")
		}
		dbg.term.TermPrintLine(terminal.StyleNormal, s.Stats.String())

	case keyReset:
		dbg.prc.Reset()
		dbg.term.TermPrintLine(terminal.StyleFeedback, "processor reset")

	case keyHelp, keyHelpAlt:
		dbg.printHelp()

	case keyQuit, keyQuitAlt:
		dbg.state = govern.Ending

	default:
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("unrecognised key (%q). h for help", key))
	}

	return nil
}

func (dbg *Debugger) printFinal() {
	s := dbg.prc.State()
	dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("halted. final accumulator value: %d", s.Accumulator))
}

func (dbg *Debugger) printHelp() {
	s := strings.Builder{}
	for i, h := range help {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("%-12s %s", h.key, h.help))
	}
	dbg.term.TermPrintLine(terminal.StyleHelp, s.String())
}
