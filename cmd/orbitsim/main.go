// Command orbitsim propagates the trajectories of debris and spacecraft
// under the combined gravity of the Sun, Earth, and Moon, using Cowell's
// method with symplectic-Euler integration. Usage:
//
//	orbitsim [options] INPUT
//
// INPUT is the initial-state JSON file (spec.md §6). Output, by default,
// is written as tab-separated rows to stdout; -o/--out redirects it to
// a directory of three CSV files instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/soniakeys/exit"

	"orbitsim/internal/environment"
	"orbitsim/internal/output"
	"orbitsim/internal/propagator"
	"orbitsim/internal/simerr"
	"orbitsim/internal/simio"
)

// commandLine mirrors internal/d2prog/main.go's commandLine/
// parseCommandLine pattern: one struct populated entirely by flag,
// validated once, then handed off.
type commandLine struct {
	input         string
	outDir        string
	stepSeconds   float64
	solarRefreshS float64
	durationS     float64
	summaryOnly   bool
}

func parseCommandLine() commandLine {
	var cl commandLine
	flag.StringVar(&cl.outDir, "o", "", "directory for CSV output (default: tab-separated rows on stdout)")
	flag.StringVar(&cl.outDir, "out", "", "directory for CSV output (default: tab-separated rows on stdout)")
	flag.Float64Var(&cl.stepSeconds, "s", 1, "simulation step, in seconds")
	flag.Float64Var(&cl.stepSeconds, "step", 1, "simulation step, in seconds")
	flag.Float64Var(&cl.solarRefreshS, "solar-refresh", 0, "ephemeris refresh interval, in seconds (default: same as -step)")
	flag.Float64Var(&cl.durationS, "duration", 0, "bounded run length, in simulated seconds (default: run until interrupted)")
	flag.BoolVar(&cl.summaryOnly, "summary-only", false, "emit one combined perturbation record per body per tick instead of one per solar object")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: orbitsim [options] INPUT")
		flag.PrintDefaults()
		os.Exit(simerr.BadArgument.ExitCode())
	}
	cl.input = flag.Arg(0)

	if cl.stepSeconds <= 0 {
		fmt.Fprintln(os.Stderr, "orbitsim: -step must be positive")
		os.Exit(simerr.BadArgument.ExitCode())
	}
	if cl.solarRefreshS <= 0 {
		cl.solarRefreshS = cl.stepSeconds
	}
	return cl
}

func main() {
	defer exit.Handler()

	cl := parseCommandLine()

	day, bodies, err := simio.Load(cl.input)
	if err != nil {
		fail(err)
	}

	env := environment.New(day)

	var sink output.Sink
	if cl.outDir != "" {
		sink, err = output.NewCSVSink(cl.outDir)
		if err != nil {
			fail(err)
		}
	} else {
		sink = output.NewStdoutSink()
	}
	defer sink.Close()

	cfg := propagator.Config{
		StepSeconds:         cl.stepSeconds,
		SolarRefreshSeconds: cl.solarRefreshS,
		EndSeconds:          cl.durationS,
		SummaryOnly:         cl.summaryOnly,
	}
	prop := propagator.New(env, bodies, cfg, sink)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := prop.Run(ctx); err != nil {
		fail(err)
	}
}

// fail maps a typed simulation error to the exit code spec.md §7
// assigns it and terminates. An error that isn't a *simerr.Error
// shouldn't happen, but main is the last line of defense, so it falls
// through to exit.Log -- log and exit 1.
func fail(err error) {
	var serr *simerr.Error
	if errors.As(err, &serr) {
		fmt.Fprintln(os.Stderr, "orbitsim:", serr)
		os.Exit(serr.Kind.ExitCode())
	}
	exit.Log(err)
}
