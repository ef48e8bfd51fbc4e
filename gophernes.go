// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/gophernes/gophernes/cartridgeloader"
	"github.com/gophernes/gophernes/curated"
	"github.com/gophernes/gophernes/debugger"
	"github.com/gophernes/gophernes/debugger/terminal/easyterm"
	"github.com/gophernes/gophernes/hardware"
	"github.com/gophernes/gophernes/hardware/clocks"
	"github.com/gophernes/gophernes/logger"
	"github.com/gophernes/gophernes/modalflag"
	"github.com/gophernes/gophernes/prefs"
	"github.com/gophernes/gophernes/statsview"
	"github.com/gophernes/gophernes/version"
)

// exit values returned by launch().
const (
	exitOK    = 0
	exitLoad  = 10
	exitFault = 20
)

// sentinal error patterns used by the modes. the exit value depends on the
// pattern.
const (
	badArgCount  = "a single cartridge is required"
	prefsFailed  = "cannot apply preferences: %v"
	loadFailed   = "cannot load cartridge: %v"
	runFailed    = "emulation stopped: %v"
	outputFailed = "cannot write output: %v"
	termFailed   = "cannot prepare terminal: %v"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch parses the arguments and runs the selected mode. the return value
// is the exit value for the process.
func launch(args []string, input io.Reader, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitLoad
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "STEP":
		err = step(md, input, output)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		if curated.Is(err, badArgCount) || curated.Is(err, prefsFailed) || curated.Is(err, loadFailed) {
			return exitLoad
		}
		return exitFault
	}

	return exitOK
}

// echoLog sets the central logger to echo to the output. terminal output is
// colorized.
func echoLog(echo bool, output io.Writer) {
	if !echo {
		logger.SetEcho(nil)
		return
	}

	if f, ok := output.(*os.File); ok && easyterm.IsTerminal(f) {
		logger.SetEcho(logger.NewColorizer(output))
		return
	}

	logger.SetEcho(output)
}

// createNES creates the NES and loads the cartridge. the prefs argument is
// pushed onto the prefs command line stack while the NES is being created.
func createNES(md *modalflag.Modes, prefsArg string, output io.Writer) (*hardware.NES, error) {
	if len(md.RemainingArgs()) != 1 {
		return nil, curated.Errorf(badArgCount)
	}

	prefs.PushCommandLineStack(prefsArg)
	nes, err := hardware.NewNES(nil)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(output, "* unused preferences: %s\n", unused)
	}
	if err != nil {
		return nil, curated.Errorf(prefsFailed, err)
	}

	path := md.GetArg(0)
	if !cartridgeloader.NewLoader(path).HasExtension() {
		fmt.Fprintf(output, "* %s does not have a recognised file extension\n", path)
	}

	err = nes.LoadROM(path)
	if err != nil {
		return nil, curated.Errorf(loadFailed, err)
	}

	return nes, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	frames := md.AddInt("frames", 60, "number of frames to run")
	prefsArg := md.AddString("prefs", "", "preferences to apply (key::value; key::value)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	memvizFile := md.AddString("memviz", "", "write graphviz dump of the emulation to file")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	echoLog(*log, output)

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	nes, err := createNES(md, *prefsArg, output)
	if err != nil {
		return err
	}

	runErr := nes.RunForFrameCount(*frames, nil)

	fmt.Fprintf(output, "%s\n", nes.Cartridge())
	fmt.Fprintf(output, "%s\n", nes)
	fmt.Fprintf(output, "%d frames (last frame %s)\n", nes.FrameNum, nes.LastFrame)
	fmt.Fprintf(output, "emulated time %s\n", clocks.Duration(nes.FrameNum).Round(time.Millisecond))

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf(outputFailed, err)
		}
		memviz.Map(f, nes)
		if err := f.Close(); err != nil {
			return curated.Errorf(outputFailed, err)
		}
	}

	if runErr != nil {
		return curated.Errorf(runFailed, runErr)
	}

	return nil
}

func step(md *modalflag.Modes, input io.Reader, output io.Writer) error {
	md.NewMode()

	prefsArg := md.AddString("prefs", "", "preferences to apply (key::value; key::value)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	md.AdditionalHelp("Keys: space/enter steps one frame, r resets, l shows the log, q quits")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	echoLog(*log, output)

	nes, err := createNES(md, *prefsArg, output)
	if err != nil {
		return err
	}

	if f, ok := input.(*os.File); ok && easyterm.IsTerminal(f) {
		term, err := easyterm.Open(easyterm.DefaultDevice)
		if err != nil {
			return curated.Errorf(termFailed, err)
		}
		defer term.CleanUp()

		err = term.CBreakMode()
		if err != nil {
			return curated.Errorf(termFailed, err)
		}

		// ctrl-c must restore the terminal before the process ends
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Stop(intChan)

		done := make(chan struct{})
		defer close(done)

		go func() {
			select {
			case <-intChan:
				_ = term.CleanUp()
				fmt.Fprint(output, "\r\n")
				os.Exit(exitOK)
			case <-done:
			}
		}()

		input = term
	}

	err = debugger.NewDebugger(nes, input, output).Start()
	if err != nil {
		return curated.Errorf(runFailed, err)
	}

	return nil
}
