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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/accsim/accsim/debugger"
	"github.com/accsim/accsim/debugger/govern"
	"github.com/accsim/accsim/debugger/terminal"
	"github.com/accsim/accsim/debugger/terminal/colorterm"
	"github.com/accsim/accsim/debugger/terminal/plainterm"
	"github.com/accsim/accsim/diagram"
	"github.com/accsim/accsim/digest"
	"github.com/accsim/accsim/hardware"
	"github.com/accsim/accsim/hardware/clocks"
	"github.com/accsim/accsim/hardware/preferences"
	"github.com/accsim/accsim/logger"
	"github.com/accsim/accsim/modalflag"
	"github.com/accsim/accsim/performance"
	"github.com/accsim/accsim/prefs"
	"github.com/accsim/accsim/programloader"
	"github.com/accsim/accsim/statsview"
	"github.com/accsim/accsim/tracer"
	"github.com/accsim/accsim/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
	exitInterrupt  = 30
)

func main() {
	// ctrl-c handler. the STEP mode reads ctrl-c as a key press in cbreak mode
	// so this only applies to the other modes
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan int)
	go func() {
		done <- launch(os.Args[1:], os.Stdout)
	}()

	select {
	case <-intChan:
		fmt.Println("\r")
		os.Exit(exitInterrupt)
	case exitVal := <-done:
		os.Exit(exitVal)
	}
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "COMPARE", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "STEP":
		err = step(md, output)
	case "COMPARE":
		err = compare(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// flags common to the RUN, STEP and COMPARE modes
type processorFlags struct {
	file      *string
	memsize   *int
	prefetch  *bool
	noLatency *bool
	prefs     *string
	savePrefs *bool
	log       *bool
}

func addProcessorFlags(md *modalflag.Modes) processorFlags {
	return processorFlags{
		file:      md.AddString("file", "", "program `filename` to run (can also be given as an argument)"),
		memsize:   md.AddInt("memsize", 0, "number of memory `cells` (overrides preferences)"),
		prefetch:  md.AddBool("prefetch", false, "enable instruction prefetch (overrides preferences)"),
		noLatency: md.AddBool("nolatency", false, "do not impose fetch latency. latency is still reported"),
		prefs:     md.AddString("prefs", "", "preferences to override (key::value; key::value)"),
		savePrefs: md.AddBool("saveprefs", false, "save preferences, including any overrides, for future runs"),
		log:       md.AddBool("log", false, "echo debugging log to output"),
	}
}

// filename of the program from the -file flag or from the remaining arguments
func (pf processorFlags) filename(md *modalflag.Modes) (string, error) {
	if *pf.file != "" {
		if len(md.RemainingArgs()) > 0 {
			return "", fmt.Errorf("too many arguments for %s mode", md)
		}
		return *pf.file, nil
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("program file required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}

	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// preferences with the command line flags applied
func (pf processorFlags) preferences() (*preferences.Preferences, error) {
	var cl []string
	if *pf.prefs != "" {
		cl = append(cl, *pf.prefs)
	}
	if *pf.memsize != 0 {
		cl = append(cl, fmt.Sprintf("hardware.memory.size::%d", *pf.memsize))
	}
	if *pf.prefetch {
		cl = append(cl, "hardware.fetch.prefetch::true")
	}

	prefs.PushCommandLineStack(strings.Join(cl, "; "))
	p, err := preferences.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	if *pf.savePrefs {
		if err := p.Save(); err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "prefs", "saved preferences: %s", strings.ReplaceAll(strings.TrimSpace(p.String()), "\n", "; "))
	}

	return p, nil
}

// newProcessor loads the program and creates the processor
func (pf processorFlags) newProcessor(md *modalflag.Modes, output io.Writer) (*hardware.Processor, error) {
	if *pf.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	filename, err := pf.filename(md)
	if err != nil {
		return nil, err
	}

	p, err := pf.preferences()
	if err != nil {
		return nil, err
	}

	ld := programloader.NewLoader(filename)
	if err := ld.Load(); err != nil {
		return nil, err
	}
	logger.Logf(logger.Allow, "accsim", "loaded %s (%s)", ld.ShortName(), ld.Hash)

	prc, err := hardware.NewProcessor(p, ld.Program)
	if err != nil {
		return nil, err
	}

	if *pf.noLatency {
		prc.SetClock(&clocks.Tally{})
	}

	return prc, nil
}

// printResult prints the final state in the same format for all modes
func printResult(output io.Writer, s hardware.State) {
	m := make([]string, len(s.Memory))
	for i, v := range s.Memory {
		m[i] = fmt.Sprintf("%d", v)
	}
	fmt.Fprintf(output, "Final accumulator value: %d\n", s.Accumulator)
	fmt.Fprintf(output, "CPU Memory data: [%s]\n", strings.Join(m, ", "))
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pf := addProcessorFlags(md)
	limit := md.AddInt("limit", 0, "maximum number of instructions to execute. zero for no limit")
	trace := md.AddBool("trace", false, "trace every instruction cycle")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server on %s", statsview.Address))
	memviz := md.AddString("memviz", "", "write final processor state as a graphviz dot `file`")
	dgst := md.AddBool("digest", false, "print execution and state digests")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prc, err := pf.newProcessor(md, output)
	if err != nil {
		return err
	}

	if *stats {
		stop := statsview.Launch(output)
		defer stop()
	}

	if *trace {
		prc.AttachTracer(tracer.NewTracer(tracer.NewLogger(output)))
	}

	var exec *digest.Execution
	if *dgst {
		exec = digest.NewExecution(prc)
	}

	var n int
	err = prc.Run(func() (govern.State, error) {
		n++
		if *limit > 0 && n >= *limit {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	s := prc.State()
	printResult(output, s)
	fmt.Fprintln(output, s.Stats)

	if exec != nil {
		fmt.Fprintf(output, "execution digest: %s (%d instructions)\n", exec.Hash(), exec.Count())
		fmt.Fprintf(output, "state digest: %s\n", digest.State(s))
	}

	if *memviz != "" {
		if err := diagram.WriteFile(*memviz, s); err != nil {
			return err
		}
	}

	if !prc.Halted() {
		return fmt.Errorf("instruction limit (%d) reached before halt", *limit)
	}

	return nil
}

func step(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pf := addProcessorFlags(md)
	plain := md.AddBool("plain", false, "use plain terminal even if stdin is a terminal")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prc, err := pf.newProcessor(md, output)
	if err != nil {
		return err
	}

	var trm terminal.Terminal
	if !*plain && term.IsTerminal(int(os.Stdin.Fd())) {
		signal.Reset(os.Interrupt)
		trm = &colorterm.ColorTerminal{}
	} else {
		trm = plainterm.NewPlainTerminal(os.Stdin, output)
	}

	dbg, err := debugger.NewDebugger(prc, trm)
	if err != nil {
		return err
	}

	return dbg.Start()
}

func compare(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pf := addProcessorFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var states [2]hardware.State
	var digests [2]*digest.Execution

	for i, prefetch := range []bool{false, true} {
		prc, err := pf.newProcessor(md, output)
		if err != nil {
			return err
		}

		// latency is always counted but never imposed
		prc.SetClock(&clocks.Tally{})
		if err := prc.Prefs.Prefetch.Set(prefetch); err != nil {
			return err
		}

		digests[i] = digest.NewExecution(prc)
		if err := prc.Run(nil); err != nil {
			return err
		}

		states[i] = prc.State()
	}

	fmt.Fprintf(output, "without prefetch: %s\n", states[0].Stats)
	fmt.Fprintf(output, "with prefetch:    %s\n", states[1].Stats)

	if digests[0].Hash() != digests[1].Hash() {
		return fmt.Errorf("execution traces differ after %d and %d instructions", digests[0].Count(), digests[1].Count())
	}
	if digest.State(states[0]) != digest.State(states[1]) {
		return fmt.Errorf("architectural results differ")
	}

	printResult(output, states[1])

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pf := addProcessorFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run program for `duration`")
	profile := md.AddString("profile", "none", "create profile for emulator: CPU, MEM, TRACE or NONE (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	prc, err := pf.newProcessor(md, output)
	if err != nil {
		return err
	}

	_, err = performance.Check(output, prf, prc, *duration)
	return err
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("v", false, "display revision information (if available)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
