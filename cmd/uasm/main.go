// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"

	"github.com/ezrec/uasm/asm"
	"github.com/ezrec/uasm/interp"
	"github.com/ezrec/uasm/script"
)

// stringList collects repeatable flag values.
type stringList []string

func (sl *stringList) String() string {
	return strings.Join(*sl, ",")
}

func (sl *stringList) Set(value string) error {
	*sl = append(*sl, value)
	return nil
}

// createLogger creates a logger with appropriate settings.
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func main() {
	var listing bool
	var dump bool
	var trace bool
	var join string
	var steps int
	var suites stringList
	var output string
	var verbose bool
	var quiet bool

	flag.BoolVar(&listing, "i", false, "Print the parsed instruction listing")
	flag.BoolVar(&dump, "d", false, "Dump final machine state")
	flag.BoolVar(&trace, "t", false, "Trace each executed instruction")
	flag.StringVar(&join, "join", "concat", "Output join mode: concat, last, or lines")
	flag.IntVar(&steps, "steps", 0, "Executed instruction limit, 0 for no limit")
	flag.Var(&suites, "suite", "Starlark scenario suite to run (repeatable)")
	flag.StringVar(&output, "o", "-", "Output destination")
	flag.BoolVar(&verbose, "v", false, "Verbose (debug) logging")
	flag.BoolVar(&quiet, "q", false, "Error-only logging")

	flag.Parse()

	logger := createLogger(verbose, quiet)
	ctx := app.Context()

	if len(suites) != 0 {
		if flag.NArg() != 0 {
			logger.Fatal("Unexpected arguments with -suite", log.String("args", strings.Join(flag.Args(), " ")))
		}
		runSuites(ctx, logger, suites)
		return
	}

	mode, err := asm.ParseJoinMode(join)
	if err != nil {
		logger.Fatal("Bad join mode", log.String("join", join))
	}

	if flag.NArg() != 1 {
		logger.Fatal("Expected a single source file argument ('-' for stdin)")
	}

	source := flag.Arg(0)
	var input io.Reader
	if source == "-" {
		input = os.Stdin
	} else {
		inf, err := os.Open(source)
		if err != nil {
			logger.Fatal("Opening source", log.String("file", source), log.Err(err))
		}
		defer inf.Close()
		input = inf
	}

	p := &asm.Parser{}
	prog, err := p.Parse(input)
	if err != nil {
		logger.Fatal("Parsing failed", log.String("file", source), log.Err(err))
	}

	out := os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			logger.Fatal("Creating output", log.String("file", output), log.Err(err))
		}
		defer ouf.Close()
		out = ouf
	}

	if listing {
		for _, line := range prog.Listing() {
			fmt.Fprintln(out, line)
		}
	}

	in := interp.NewInterp(prog)
	in.Join = mode
	in.MaxSteps = steps
	if trace {
		in.Trace = func(snap asm.Snapshot, inst asm.Inst) {
			logger.Info("step",
				log.Int("ip", snap.Ip),
				log.String("inst", inst.String()),
				log.String("flags", snap.Flags.String()),
				log.Int("depth", len(snap.Stack)))
		}
	}

	err = in.Run()

	if dump {
		fmt.Fprint(os.Stderr, in.Machine.String())
	}

	if err != nil {
		logger.Fatal("Run failed", log.Err(err))
	}

	res := in.Result()
	if res.Completed {
		fmt.Fprintln(out, res.Output)
	} else {
		// Terminated without end: the conventional default marker.
		fmt.Fprintln(out, "-1")
	}
}

// runSuites loads, merges, and runs the scenario suites.
func runSuites(ctx context.Context, logger *log.Logger, filenames []string) {
	loaded := make([]*script.Suite, 0, len(filenames))
	for _, filename := range filenames {
		suite, err := script.Load(filename)
		if err != nil {
			logger.Fatal("Loading suite", log.String("file", filename), log.Err(err))
		}
		loaded = append(loaded, suite)
	}

	suite := script.Merge(loaded...)
	failed, err := suite.Run(ctx, logger)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			os.Exit(1)
		}
		logger.Fatal("Suite run failed", log.Err(err))
	}
	if len(failed) != 0 {
		logger.Fatal("Suite cases failed",
			log.Int("count", len(failed)),
			log.String("cases", strings.Join(failed, ", ")))
	}
	logger.Info("Suite passed", log.Int("cases", len(suite.Cases)))
}
